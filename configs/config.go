package configs

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values
type Config struct {
	Port      string
	JWTSecret string
	JWTExpire time.Duration

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDB       string

	MongoURI string
	MongoDB  string

	RedisURL string

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
}

var (
	instance *Config
	once     sync.Once
)

// Load loads configuration from .env file and the environment.
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		viper.SetDefault("TECHBLOG_PORT", "8080")
		viper.SetDefault("TECHBLOG_JWT_SECRET", "secret")
		viper.SetDefault("TECHBLOG_JWT_EXPIRE", "24h")
		viper.SetDefault("MYSQL_USER", "techblog")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "techblog")
		viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
		viper.SetDefault("MONGO_DB", "techblog")
		viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
		viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
		viper.SetDefault("KAFKA_TOPIC", "vote-transitions")
		viper.SetDefault("KAFKA_GROUP_ID", "reputation-worker")
		viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
		viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
		viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
		viper.SetDefault("MINIO_BUCKET", "techblog-avatars")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			log.Printf("Warning: Error reading .env file: %v", err)
			log.Printf("Using environment variables and defaults")
		}

		expire, err := time.ParseDuration(viper.GetString("TECHBLOG_JWT_EXPIRE"))
		if err != nil {
			log.Fatal("Invalid TECHBLOG_JWT_EXPIRE format")
		}

		instance = &Config{
			Port:           viper.GetString("TECHBLOG_PORT"),
			JWTSecret:      viper.GetString("TECHBLOG_JWT_SECRET"),
			JWTExpire:      expire,
			MySQLUser:      viper.GetString("MYSQL_USER"),
			MySQLPassword:  viper.GetString("MYSQL_PASSWORD"),
			MySQLHost:      viper.GetString("MYSQL_HOST"),
			MySQLPort:      viper.GetString("MYSQL_PORT"),
			MySQLDB:        viper.GetString("MYSQL_DB"),
			MongoURI:       viper.GetString("MONGO_URI"),
			MongoDB:        viper.GetString("MONGO_DB"),
			RedisURL:       viper.GetString("REDIS_URL"),
			KafkaBrokers:   strings.Split(viper.GetString("KAFKA_BROKERS"), ","),
			KafkaTopic:     viper.GetString("KAFKA_TOPIC"),
			KafkaGroupID:   viper.GetString("KAFKA_GROUP_ID"),
			MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
			MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
			MinioBucket:    viper.GetString("MINIO_BUCKET"),
		}
	})
	return instance
}
