package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Broker       BrokerConfig
	JWT          JWTConfig
	APIKey       APIKeyConfig
	Services     ServicesConfig
	Ticketing    TicketingConfig
	Payment      PaymentConfig
	Notification NotificationConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
	Metrics      MetricsConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Broker drivers
const (
	BrokerDriverNATS     = "nats"
	BrokerDriverKafka    = "kafka"
	BrokerDriverNSQ      = "nsq"
	BrokerDriverRabbitMQ = "rabbitmq"
	BrokerDriverMemory   = "memory"
)

// BrokerConfig contains message bus configuration shared by every driver
type BrokerConfig struct {
	Driver        string
	URL           string   // NATS / AMQP url
	Brokers       []string // Kafka bootstrap brokers
	NSQDAddress   string
	NSQLookupd    []string
	ConsumerGroup string
	PollBatchSize int
	PollWait      time.Duration
	Topics        TopicsConfig
}

// TopicsConfig names the logical topics on the bus
type TopicsConfig struct {
	ScheduleUpdates string
	TicketValidated string
	TicketCreated   string
}

// All returns every configured topic in subscription order
func (t TopicsConfig) All() []string {
	return []string{t.ScheduleUpdates, t.TicketValidated, t.TicketCreated}
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains the keys services present to each other
type APIKeyConfig struct {
	PassengerService string
	TransportService string
	TicketingService string
	PaymentService   string
}

// ServicesConfig contains URLs for other microservices
type ServicesConfig struct {
	PassengerServiceURL string
	TransportServiceURL string
	PaymentServiceURL   string
	RequestTimeout      time.Duration
}

// TicketingConfig contains ticket lifecycle settings
type TicketingConfig struct {
	ValidityWindow    time.Duration
	SweepInterval     time.Duration
	QRSecret          string
	PassengerCacheTTL time.Duration
}

// PaymentConfig contains payment simulator knobs
type PaymentConfig struct {
	SuccessRate float64
	Latency     time.Duration
	Currency    string
}

// NotificationConfig contains notifier sink switches
type NotificationConfig struct {
	ConsoleEnabled bool
	StorageEnabled bool
	DedupeTTL      time.Duration
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool
	Path    string
}
