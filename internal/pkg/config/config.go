package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// InitConfig loads configPath into the environment when running locally and
// reads every setting from the environment
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "local")

	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return Load(v)
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]interface{}{
		"APP_NAME":    "transit",
		"APP_ENV":     "local",
		"APP_DEBUG":   true,
		"APP_VERSION": "dev",

		"SERVER_HOST":             "0.0.0.0",
		"SERVER_PORT":             8080,
		"SERVER_READ_TIMEOUT":     10,
		"SERVER_WRITE_TIMEOUT":    10,
		"SERVER_SHUTDOWN_TIMEOUT": 10,

		"DB_DRIVER":     "pgx",
		"DB_HOST":       "localhost",
		"DB_PORT":       5432,
		"DB_USERNAME":   "postgres",
		"DB_PASSWORD":   "",
		"DB_DATABASE":   "transit",
		"DB_SSL_MODE":   "disable",
		"DB_MAX_CONNS":  10,
		"DB_IDLE_CONNS": 5,

		"REDIS_HOST":      "localhost",
		"REDIS_PORT":      6379,
		"REDIS_PASSWORD":  "",
		"REDIS_DB":        0,
		"REDIS_POOL_SIZE": 10,

		"BROKER_DRIVER":          models.BrokerDriverNATS,
		"BROKER_URL":             "nats://localhost:4222",
		"BROKER_KAFKA_BROKERS":   "localhost:9092",
		"BROKER_NSQD_ADDRESS":    "localhost:4150",
		"BROKER_NSQ_LOOKUPD":     "",
		"BROKER_CONSUMER_GROUP":  constants.DefaultConsumerGroup,
		"BROKER_POLL_BATCH_SIZE": 10,
		"BROKER_POLL_WAIT":       "1s",
		"TOPIC_SCHEDULE_UPDATES": constants.TopicScheduleUpdates,
		"TOPIC_TICKET_VALIDATED": constants.TopicTicketValidated,
		"TOPIC_TICKET_CREATED":   constants.TopicTicketCreated,

		"JWT_SECRET":     "",
		"JWT_EXPIRATION": 60,
		"JWT_ISSUER":     "transit-passenger",

		"PASSENGER_SERVICE_URL":     "http://localhost:9001",
		"TRANSPORT_SERVICE_URL":     "http://localhost:9002",
		"PAYMENT_SERVICE_URL":       "http://localhost:9004",
		"SERVICES_REQUEST_TIMEOUT":  "10s",
		"API_KEY_PASSENGER_SERVICE": "",
		"API_KEY_TRANSPORT_SERVICE": "",
		"API_KEY_TICKETING_SERVICE": "",
		"API_KEY_PAYMENT_SERVICE":   "",

		"TICKET_VALIDITY_WINDOW":     "24h",
		"TICKET_SWEEP_INTERVAL":      "5m",
		"TICKET_QR_SECRET":           "",
		"TICKET_PASSENGER_CACHE_TTL": "30s",
		"PAYMENT_SUCCESS_RATE":       0.95,
		"PAYMENT_LATENCY":            "2s",
		"PAYMENT_CURRENCY":           "NAD",
		"NOTIFICATION_CONSOLE":       true,
		"NOTIFICATION_STORAGE":       true,
		"NOTIFICATION_DEDUPE_TTL":    "24h",

		"NEW_RELIC_ENABLED":      false,
		"NEW_RELIC_LICENSE_KEY":  "",
		"NEW_RELIC_APP_NAME":     "",
		"NEW_RELIC_FORWARD_LOGS": false,

		"LOG_LEVEL":     "info",
		"LOG_FILE_PATH": "",

		"METRICS_ENABLED": true,
		"METRICS_PATH":    "/metrics",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Load builds the configuration from v, registering defaults for every key
func Load(v *viper.Viper) *models.Config {
	setDefaults(v)
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Broker config
	configs.Broker.Driver = strings.ToLower(v.GetString("BROKER_DRIVER"))
	configs.Broker.URL = v.GetString("BROKER_URL")
	configs.Broker.Brokers = splitList(v.GetString("BROKER_KAFKA_BROKERS"))
	configs.Broker.NSQDAddress = v.GetString("BROKER_NSQD_ADDRESS")
	configs.Broker.NSQLookupd = splitList(v.GetString("BROKER_NSQ_LOOKUPD"))
	configs.Broker.ConsumerGroup = v.GetString("BROKER_CONSUMER_GROUP")
	configs.Broker.PollBatchSize = v.GetInt("BROKER_POLL_BATCH_SIZE")
	configs.Broker.PollWait = v.GetDuration("BROKER_POLL_WAIT")
	configs.Broker.Topics.ScheduleUpdates = v.GetString("TOPIC_SCHEDULE_UPDATES")
	configs.Broker.Topics.TicketValidated = v.GetString("TOPIC_TICKET_VALIDATED")
	configs.Broker.Topics.TicketCreated = v.GetString("TOPIC_TICKET_CREATED")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// API keys
	configs.APIKey.PassengerService = v.GetString("API_KEY_PASSENGER_SERVICE")
	configs.APIKey.TransportService = v.GetString("API_KEY_TRANSPORT_SERVICE")
	configs.APIKey.TicketingService = v.GetString("API_KEY_TICKETING_SERVICE")
	configs.APIKey.PaymentService = v.GetString("API_KEY_PAYMENT_SERVICE")

	// Services config
	configs.Services.PassengerServiceURL = v.GetString("PASSENGER_SERVICE_URL")
	configs.Services.TransportServiceURL = v.GetString("TRANSPORT_SERVICE_URL")
	configs.Services.PaymentServiceURL = v.GetString("PAYMENT_SERVICE_URL")
	configs.Services.RequestTimeout = v.GetDuration("SERVICES_REQUEST_TIMEOUT")

	// Ticketing config
	configs.Ticketing.ValidityWindow = v.GetDuration("TICKET_VALIDITY_WINDOW")
	configs.Ticketing.SweepInterval = v.GetDuration("TICKET_SWEEP_INTERVAL")
	configs.Ticketing.QRSecret = v.GetString("TICKET_QR_SECRET")
	configs.Ticketing.PassengerCacheTTL = v.GetDuration("TICKET_PASSENGER_CACHE_TTL")

	// Payment config
	configs.Payment.SuccessRate = v.GetFloat64("PAYMENT_SUCCESS_RATE")
	configs.Payment.Latency = v.GetDuration("PAYMENT_LATENCY")
	configs.Payment.Currency = v.GetString("PAYMENT_CURRENCY")

	// Notification config
	configs.Notification.ConsoleEnabled = v.GetBool("NOTIFICATION_CONSOLE")
	configs.Notification.StorageEnabled = v.GetBool("NOTIFICATION_STORAGE")
	configs.Notification.DedupeTTL = v.GetDuration("NOTIFICATION_DEDUPE_TTL")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Metrics config
	configs.Metrics.Enabled = v.GetBool("METRICS_ENABLED")
	configs.Metrics.Path = v.GetString("METRICS_PATH")

	return configs
}

// splitList parses a comma separated env value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RequestTimeout falls back to ten seconds when unset
func RequestTimeout(cfg *models.Config) time.Duration {
	if cfg.Services.RequestTimeout <= 0 {
		return 10 * time.Second
	}
	return cfg.Services.RequestTimeout
}
