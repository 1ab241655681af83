package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	Gateway      GatewayConfig
	Email        EmailConfig
	Messaging    MessagingConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Notification NotificationConfig
	Features     FeatureFlags
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ImageDir     string
}

type StoreConfig struct {
	OrdersFile string
}

// GatewayConfig holds payment-gateway credentials. The gateway client is
// constructed at startup but the COD flow never charges through it; the
// credentials are reserved for the online-payment path.
type GatewayConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
}

type EmailConfig struct {
	BaseURL  string
	Sender   string
	Password string
	Timeout  time.Duration
}

type MessagingConfig struct {
	BaseURL     string
	AccountSID  string
	AuthToken   string
	SellerPhone string
	Timeout     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type KafkaConfig struct {
	Brokers     []string
	OrdersTopic string
}

type NotificationConfig struct {
	QueueSize int
}

type FeatureFlags struct {
	EnableOrderCaching bool
	EnableOrderEvents  bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("PORT", 5000),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
			ImageDir:     getEnvString("IMAGE_DIR", "./image"),
		},
		Store: StoreConfig{
			OrdersFile: getEnvString("ORDERS_FILE", "orders.json"),
		},
		Gateway: GatewayConfig{
			BaseURL:   getEnvString("GATEWAY_URL", "https://api.razorpay.com"),
			KeyID:     getEnvString("GATEWAY_KEY_ID", ""),
			KeySecret: getEnvString("GATEWAY_KEY_SECRET", ""),
			Timeout:   time.Duration(getEnvInt("GATEWAY_TIMEOUT", 30)) * time.Second,
		},
		Email: EmailConfig{
			BaseURL:  getEnvString("EMAIL_SERVICE_URL", "http://localhost:8025"),
			Sender:   getEnvString("CONTACT_EMAIL", ""),
			Password: getEnvString("EMAIL_PASSWORD", ""),
			Timeout:  time.Duration(getEnvInt("EMAIL_TIMEOUT", 30)) * time.Second,
		},
		Messaging: MessagingConfig{
			BaseURL:     getEnvString("MESSAGING_SERVICE_URL", "https://api.twilio.com"),
			AccountSID:  getEnvString("MESSAGING_SID", ""),
			AuthToken:   getEnvString("MESSAGING_AUTH", ""),
			SellerPhone: getEnvString("SELLER_PHONE", ""),
			Timeout:     time.Duration(getEnvInt("MESSAGING_TIMEOUT", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("REDIS_TTL", 300)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:     getEnvStringSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			OrdersTopic: getEnvString("KAFKA_ORDERS_TOPIC", "orders.events"),
		},
		Notification: NotificationConfig{
			QueueSize: getEnvInt("NOTIFICATION_QUEUE_SIZE", 64),
		},
		Features: FeatureFlags{
			EnableOrderCaching: getEnvBool("ENABLE_ORDER_CACHING", false),
			EnableOrderEvents:  getEnvBool("ENABLE_ORDER_EVENTS", false),
		},
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
