// README: Config loader with defaults for HTTP, backend API, DB, Redis, Kafka, routing and quote settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type RoutingConfig struct {
	GoogleAPIKey string
	OSRMURL      string
	MapboxURL    string
	MapboxToken  string
	Timeout      time.Duration
	CacheTTL     time.Duration
}

type CompanyConfig struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
}

type Config struct {
	App struct {
		Env string
	}
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	Backend struct {
		BaseURL string
		Timeout time.Duration
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Kafka struct {
		Brokers []string
		Topic   string
	}
	Routing RoutingConfig
	Geocode struct {
		NominatimURL string
		CountryCodes string
		UserAgent    string
	}
	Company CompanyConfig
	Enquiry struct {
		Recipient       string
		MaxMailtoLength int
	}
	Quote struct {
		ValidFor time.Duration
	}
}

// Load resolves SAIRAJ_* settings from the process environment, then an
// optional .env file, then built-in defaults.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	envFile := os.Getenv("SAIRAJ_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	v.SetEnvPrefix("SAIRAJ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Variables already present in the environment are not overridden.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("backend.base_url", "http://localhost:8081/api")
	v.SetDefault("backend.timeout", 8*time.Second)
	v.SetDefault("db.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "trip-enquiries")
	v.SetDefault("routing.google_api_key", "")
	v.SetDefault("routing.osrm_url", "https://router.project-osrm.org")
	v.SetDefault("routing.mapbox_url", "https://api.mapbox.com")
	v.SetDefault("routing.mapbox_token", "")
	v.SetDefault("routing.timeout", 10*time.Second)
	v.SetDefault("routing.cache_ttl", 6*time.Hour)
	v.SetDefault("geocode.nominatim_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocode.country_codes", "in")
	v.SetDefault("geocode.user_agent", "sairaj-travels-quote/1.0 (info@sairaj-travels.com)")
	v.SetDefault("company.name", "SAIRAJ TRAVELS")
	v.SetDefault("company.tagline", "Your Trusted Travel Partner")
	v.SetDefault("company.phone", "+91 98507 48273")
	v.SetDefault("company.email", "info@sairaj-travels.com")
	v.SetDefault("enquiry.recipient", "info@sairaj-travels.com")
	v.SetDefault("enquiry.max_mailto_length", 8000)
	v.SetDefault("quote.valid_for", 7*24*time.Hour)
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.App.Env = v.GetString("app.env")
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.ShutdownTimeout = v.GetDuration("http.shutdown_timeout")
	cfg.Backend.BaseURL = strings.TrimRight(v.GetString("backend.base_url"), "/")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Kafka.Brokers = splitList(v.GetString("kafka.brokers"))
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Routing = RoutingConfig{
		GoogleAPIKey: v.GetString("routing.google_api_key"),
		OSRMURL:      strings.TrimRight(v.GetString("routing.osrm_url"), "/"),
		MapboxURL:    strings.TrimRight(v.GetString("routing.mapbox_url"), "/"),
		MapboxToken:  v.GetString("routing.mapbox_token"),
		Timeout:      v.GetDuration("routing.timeout"),
		CacheTTL:     v.GetDuration("routing.cache_ttl"),
	}
	cfg.Geocode.NominatimURL = strings.TrimRight(v.GetString("geocode.nominatim_url"), "/")
	cfg.Geocode.CountryCodes = v.GetString("geocode.country_codes")
	cfg.Geocode.UserAgent = v.GetString("geocode.user_agent")
	cfg.Company = CompanyConfig{
		Name:    v.GetString("company.name"),
		Tagline: v.GetString("company.tagline"),
		Phone:   v.GetString("company.phone"),
		Email:   v.GetString("company.email"),
	}
	cfg.Enquiry.Recipient = v.GetString("enquiry.recipient")
	cfg.Enquiry.MaxMailtoLength = v.GetInt("enquiry.max_mailto_length")
	cfg.Quote.ValidFor = v.GetDuration("quote.valid_for")

	if cfg.Backend.BaseURL == "" && cfg.DB.DSN == "" {
		return Config{}, errors.New("one of SAIRAJ_BACKEND_BASE_URL or SAIRAJ_DB_DSN is required")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
