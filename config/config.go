package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Planner business constants. Promoted to configuration so scenario work
	// does not require a rebuild.
	LaborCostCeiling  float64 `mapstructure:"LABOR_COST_CEILING"` // fraction of slot revenue
	ShiftHandoffTime  string  `mapstructure:"SHIFT_HANDOFF_TIME"` // "HH:MM", splits the day into two packing halves
	MinShiftQuarters  int     `mapstructure:"MIN_SHIFT_QUARTERS"` // minimum shift length in quarter-hours
	MaxShiftQuarters  int     `mapstructure:"MAX_SHIFT_QUARTERS"` // 0 = no maximum
	StandbyAfternoon  string  `mapstructure:"STANDBY_AFTERNOON"`  // "HH:MM-HH:MM"
	StandbyEvening    string  `mapstructure:"STANDBY_EVENING"`    // "HH:MM-HH:MM"
	PlanCacheTTLHours int     `mapstructure:"PLAN_CACHE_TTL_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "staffplan")
	viper.SetDefault("LABOR_COST_CEILING", 0.23)
	viper.SetDefault("SHIFT_HANDOFF_TIME", "17:30")
	viper.SetDefault("MIN_SHIFT_QUARTERS", 12)
	viper.SetDefault("MAX_SHIFT_QUARTERS", 0)
	viper.SetDefault("STANDBY_AFTERNOON", "13:00-17:30")
	viper.SetDefault("STANDBY_EVENING", "17:30-21:30")
	viper.SetDefault("PLAN_CACHE_TTL_HOURS", 6)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
