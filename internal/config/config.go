package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`

	PlacesAPIKey   string        `mapstructure:"GOOGLE_PLACES_API_KEY"`
	PlacesBaseURL  string        `mapstructure:"PLACES_BASE_URL"`
	PlacesReferer  string        `mapstructure:"PLACES_REFERER"`
	PlacesLanguage string        `mapstructure:"PLACES_LANGUAGE"`
	PhotoBaseURL   string        `mapstructure:"PHOTO_BASE_URL"`
	PageDelay      time.Duration `mapstructure:"PAGE_DELAY"`
	PlacesCacheTTL time.Duration `mapstructure:"PLACES_CACHE_TTL"`
	LiveTimeout    time.Duration `mapstructure:"LIVE_TIMEOUT"`

	CenterLat          float64 `mapstructure:"SERVICE_CENTER_LAT"`
	CenterLng          float64 `mapstructure:"SERVICE_CENTER_LNG"`
	SearchRadiusMeters int     `mapstructure:"SEARCH_RADIUS_M"`

	QuotaPerCategory  int     `mapstructure:"QUOTA_PER_CATEGORY"`
	NameSimilarity    float64 `mapstructure:"NAME_SIMILARITY"`
	AddressSimilarity float64 `mapstructure:"ADDRESS_SIMILARITY"`
	CoordinateEpsilon float64 `mapstructure:"COORDINATE_EPSILON"`
	GeneratorSeed     int64   `mapstructure:"GENERATOR_SEED"`

	CatalogTTL           time.Duration `mapstructure:"CATALOG_TTL"`
	RefreshInterval      time.Duration `mapstructure:"REFRESH_INTERVAL"`
	RefreshCheckInterval time.Duration `mapstructure:"REFRESH_CHECK_INTERVAL"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("GOOGLE_PLACES_API_KEY", "")
	viper.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("PLACES_REFERER", "http://localhost:8080")
	viper.SetDefault("PLACES_LANGUAGE", "en")
	viper.SetDefault("PHOTO_BASE_URL", "/api/places")
	viper.SetDefault("PAGE_DELAY", "2s")
	viper.SetDefault("PLACES_CACHE_TTL", "24h")
	viper.SetDefault("LIVE_TIMEOUT", "20s")

	viper.SetDefault("SERVICE_CENTER_LAT", 33.3062)
	viper.SetDefault("SERVICE_CENTER_LNG", -111.8413)
	viper.SetDefault("SEARCH_RADIUS_M", 20000)

	viper.SetDefault("QUOTA_PER_CATEGORY", 50)
	viper.SetDefault("NAME_SIMILARITY", 0.9)
	viper.SetDefault("ADDRESS_SIMILARITY", 0.9)
	viper.SetDefault("COORDINATE_EPSILON", 0.0001)
	viper.SetDefault("GENERATOR_SEED", 42)

	viper.SetDefault("CATALOG_TTL", "24h")
	viper.SetDefault("REFRESH_INTERVAL", "168h")
	viper.SetDefault("REFRESH_CHECK_INTERVAL", "1h")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
