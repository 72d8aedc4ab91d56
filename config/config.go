package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers       []string
	TopicShipment string
	ConsumerGroup string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

type BusinessConfig struct {
	MaxPackageWeightG int64
	CatalogSeedPath   string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxWeight, _ := strconv.ParseInt(getEnv("MAX_PACKAGE_WEIGHT_G", "1800"), 10, 64)

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", ""), ","),
			TopicShipment: getEnv("KAFKA_TOPIC_SHIPMENTS", "shipment-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "fulfillment-service-group"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Business: BusinessConfig{
			MaxPackageWeightG: maxWeight,
			CatalogSeedPath:   getEnv("CATALOG_SEED_PATH", ""),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, max_package_weight_g=%d",
		cfg.Server.Env, cfg.Server.Port, cfg.Business.MaxPackageWeightG)
	return cfg
}

// KafkaEnabled reports whether a broker address is configured. Without one
// the service runs with log-only shipment notifications.
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0 && c.Kafka.Brokers[0] != ""
}

// RedisEnabled reports whether the inventory mirror is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
