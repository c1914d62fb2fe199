package config

import "github.com/spf13/viper"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	RabbitMQURL   string
	SessionSecret string
	UploadDir     string
	SwaggerHost   string
	SeedDB        bool
	ResetDB       bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/xfood?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_SECRET", "change-me")
	viper.SetDefault("UPLOAD_DIR", "wwwroot/uploads")
	viper.AutomaticEnv()

	return &Config{
		ServerPort:    viper.GetString("SERVER_PORT"),
		MySQLDSN:      viper.GetString("MYSQL_DSN"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisDB:       viper.GetInt("REDIS_DB"),
		RedisPass:     viper.GetString("REDIS_PASSWORD"),
		RabbitMQURL:   viper.GetString("RABBITMQ_URL"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		UploadDir:     viper.GetString("UPLOAD_DIR"),
		SwaggerHost:   viper.GetString("SWAGGER_HOST"),
		SeedDB:        viper.GetBool("SEED_DB"),
		ResetDB:       viper.GetBool("RESET_DB"),
	}
}
