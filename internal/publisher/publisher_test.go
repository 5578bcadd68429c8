package publisher

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peakplot/internal/analysis"
	"peakplot/internal/config"
)

func TestNewValidatesHAConfig(t *testing.T) {
	tests := []struct {
		name string
		ha   config.HAConfig
	}{
		{name: "missing url", ha: config.HAConfig{Enabled: true, Token: "t", EntityID: "sensor.x"}},
		{name: "missing token", ha: config.HAConfig{Enabled: true, URL: "http://ha", EntityID: "sensor.x"}},
		{name: "missing entity", ha: config.HAConfig{Enabled: true, URL: "http://ha", Token: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(config.MQTTConfig{}, tt.ha)
			assert.Error(t, err)
		})
	}
}

func TestNewRequiresBrokerWhenMQTTEnabled(t *testing.T) {
	_, err := New(config.MQTTConfig{Enabled: true}, config.HAConfig{})
	assert.Error(t, err)
}

func TestPublishSummaryToHomeAssistant(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	pub, err := New(config.MQTTConfig{}, config.HAConfig{
		Enabled:  true,
		URL:      srv.URL,
		Token:    "secret",
		EntityID: "sensor.household_energy_usage",
	})
	require.NoError(t, err)
	defer pub.Close()

	summary := analysis.DaySummary{
		Date:       time.Date(2013, time.September, 18, 0, 0, 0, 0, time.UTC),
		TotalKWh:   48.5,
		PeakKWh:    10.25,
		OffPeakKWh: 38.25,
		Samples:    24,
	}
	require.NoError(t, pub.PublishSummary(summary))

	assert.Equal(t, "/api/states/sensor.household_energy_usage", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "48.50", gotBody["state"])

	attrs, ok := gotBody["attributes"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "kWh", attrs["unit_of_measurement"])
	assert.Equal(t, "2013-09-18", attrs["date"])
	assert.Equal(t, 10.25, attrs["peak_kwh"])
}

func TestPublishHAErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	pub, err := New(config.MQTTConfig{}, config.HAConfig{
		Enabled:  true,
		URL:      srv.URL,
		Token:    "bad",
		EntityID: "sensor.x",
	})
	require.NoError(t, err)
	defer pub.Close()

	err = pub.PublishSummary(analysis.DaySummary{Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
