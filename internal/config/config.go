package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Chart         ChartConfig `yaml:"chart,omitempty"`
	MQTT          MQTTConfig  `yaml:"mqtt,omitempty"`
	HomeAssistant HAConfig    `yaml:"home_assistant,omitempty"`
}

// ChartConfig holds chart rendering options
type ChartConfig struct {
	AxisMode string  `yaml:"axis_mode,omitempty"` // "time" (default) or "index"
	Width    int     `yaml:"width,omitempty"`     // Pixels (fallback: 1280)
	Height   int     `yaml:"height,omitempty"`    // Pixels (fallback: 720)
	YMaxKW   float64 `yaml:"y_max_kw,omitempty"`  // Top of the y axis (fallback: 10)
	Title    string  `yaml:"title,omitempty"`
}

// MQTTConfig holds MQTT broker settings for publishing daily summaries
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // e.g., "192.168.1.5:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // e.g., "energy_usage"
}

// HAConfig holds Home Assistant HTTP API configuration
type HAConfig struct {
	Enabled  bool   `yaml:"enabled"`
	URL      string `yaml:"url"`       // e.g., "http://yourdomain.local:8123"
	Token    string `yaml:"token"`     // Long-lived access token
	EntityID string `yaml:"entity_id"` // e.g., "sensor.household_energy_usage"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetAxisMode returns the configured x-axis mode with a default of "time"
func (c *ChartConfig) GetAxisMode() string {
	if c.AxisMode == "" {
		return "time"
	}
	return c.AxisMode
}

// GetWidth returns the chart width with a default of 1280
func (c *ChartConfig) GetWidth() int {
	if c.Width <= 0 {
		return 1280
	}
	return c.Width
}

// GetHeight returns the chart height with a default of 720
func (c *ChartConfig) GetHeight() int {
	if c.Height <= 0 {
		return 720
	}
	return c.Height
}

// GetYMaxKW returns the top of the y axis with a default of 10 kW
func (c *ChartConfig) GetYMaxKW() float64 {
	if c.YMaxKW <= 0 {
		return 10
	}
	return c.YMaxKW
}

// GetTopicPrefix returns the MQTT topic prefix with a default of "energy_usage"
func (c *MQTTConfig) GetTopicPrefix() string {
	if c.TopicPrefix == "" {
		return "energy_usage"
	}
	return c.TopicPrefix
}
