package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	Env        string `mapstructure:"ENV"`

	// ProfilesPath points at the analyzer's JSON output; when absent the
	// engine runs on embedded fallback tables.
	ProfilesPath string `mapstructure:"PROFILES_PATH"`

	// PricingBackend selects the demand model: "v1" (single-dimension
	// blend) or "v2" (cross-dimensional matrices).
	PricingBackend string `mapstructure:"PRICING_BACKEND"`

	// DBUrl is only needed by the analyzer when reading booking history
	// from Postgres.
	DBUrl string `mapstructure:"DB_URL"`

	// RedisURL enables the quote cache when set.
	RedisURL             string `mapstructure:"REDIS_URL"`
	QuoteCacheTTLSeconds int    `mapstructure:"QUOTE_CACHE_TTL_SECONDS"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("PROFILES_PATH", "data/demand_profiles.json")
	viper.SetDefault("PRICING_BACKEND", "v1")
	viper.SetDefault("QUOTE_CACHE_TTL_SECONDS", 300)

	if err := viper.ReadInConfig(); err != nil {
	}

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
