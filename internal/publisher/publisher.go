// Package publisher pushes daily usage summaries to MQTT and Home Assistant.
package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"peakplot/internal/analysis"
	"peakplot/internal/config"
)

// Publisher handles publishing to MQTT and Home Assistant
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	haConfig    config.HAConfig
	httpClient  *http.Client
}

// New creates a new publisher (supports both MQTT and HA HTTP API)
func New(mqttCfg config.MQTTConfig, haCfg config.HAConfig) (*Publisher, error) {
	// Validate HA config if enabled
	if haCfg.Enabled {
		if haCfg.URL == "" {
			return nil, fmt.Errorf("Home Assistant URL is required when enabled")
		}
		if haCfg.Token == "" {
			return nil, fmt.Errorf("Home Assistant token is required when enabled")
		}
		if haCfg.EntityID == "" {
			return nil, fmt.Errorf("Home Assistant entity_id is required when enabled")
		}
	}

	var client mqtt.Client
	if mqttCfg.Enabled {
		if mqttCfg.Broker == "" {
			return nil, fmt.Errorf("MQTT broker address is required when enabled")
		}

		opts := mqtt.NewClientOptions()
		opts.AddBroker(fmt.Sprintf("tcp://%s", mqttCfg.Broker))
		opts.SetClientID("peakplot")
		opts.SetAutoReconnect(true)
		opts.SetConnectRetry(true)
		opts.SetConnectTimeout(10 * time.Second)

		if mqttCfg.Username != "" {
			opts.SetUsername(mqttCfg.Username)
		}
		if mqttCfg.Password != "" {
			opts.SetPassword(mqttCfg.Password)
		}

		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
		}
	}

	return &Publisher{
		client:      client,
		topicPrefix: mqttCfg.GetTopicPrefix(),
		haConfig:    haCfg,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Close disconnects the MQTT client if one is connected
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}

// PublishSummary publishes one daily summary to every enabled target
func (p *Publisher) PublishSummary(s analysis.DaySummary) error {
	if p.client != nil {
		if err := p.publishMQTT(s); err != nil {
			return err
		}
	}
	if p.haConfig.Enabled {
		if err := p.publishHA(s); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) publishMQTT(s analysis.DaySummary) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	topic := fmt.Sprintf("%s/daily/%s", p.topicPrefix, s.Date.Format("2006-01-02"))
	token := p.client.Publish(topic, 0, true, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}

	return nil
}

// publishHA posts the summary as a sensor state to Home Assistant's HTTP API
func (p *Publisher) publishHA(s analysis.DaySummary) error {
	body := map[string]interface{}{
		"state": fmt.Sprintf("%.2f", s.TotalKWh),
		"attributes": map[string]interface{}{
			"unit_of_measurement": "kWh",
			"device_class":        "energy",
			"date":                s.Date.Format("2006-01-02"),
			"peak_kwh":            s.PeakKWh,
			"off_peak_kwh":        s.OffPeakKWh,
			"weekend":             s.Weekend,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	apiURL := fmt.Sprintf("%s/api/states/%s", p.haConfig.URL, p.haConfig.EntityID)
	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.haConfig.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error: status %d, response: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
