package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SAIRAJ_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:8081/api", cfg.Backend.BaseURL)
	assert.Equal(t, "https://router.project-osrm.org", cfg.Routing.OSRMURL)
	assert.Equal(t, 7*24*time.Hour, cfg.Quote.ValidFor)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "trip-enquiries", cfg.Kafka.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SAIRAJ_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SAIRAJ_HTTP_ADDR", ":9090")
	t.Setenv("SAIRAJ_KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SAIRAJ_ROUTING_TIMEOUT", "3s")
	t.Setenv("SAIRAJ_BACKEND_BASE_URL", "http://api.local/api/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Routing.Timeout)
	assert.Equal(t, "http://api.local/api", cfg.Backend.BaseURL)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList(" a ,"))
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SAIRAJ_COMPANY_PHONE=\"+91 90000 00000\"\nSAIRAJ_HTTP_ADDR=:7070\n"), 0o600))
	t.Setenv("SAIRAJ_ENV_FILE", path)
	// Process env wins over the file.
	t.Setenv("SAIRAJ_HTTP_ADDR", ":6060")
	t.Cleanup(func() { _ = os.Unsetenv("SAIRAJ_COMPANY_PHONE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "+91 90000 00000", cfg.Company.Phone)
	assert.Equal(t, ":6060", cfg.HTTP.Addr)
}
