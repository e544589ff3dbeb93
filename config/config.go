package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Redis     RedisConfig     `yaml:"redis"`
	Dispatch  DispatchConfig  `yaml:"dispatch"`
	Pathao    PathaoConfig    `yaml:"pathao"`
	Steadfast SteadfastConfig `yaml:"steadfast"`
	Worker    WorkerConfig    `yaml:"worker"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DSN returns the pgx connection string; ssl_mode defaults to "disable".
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.Username, d.Password, d.Host, d.Port, d.DBName, sslMode)
}

type KafkaConfig struct {
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	PaymentSucceededTopic string `yaml:"payment_succeeded_topic"`
	ShipmentStatusTopic   string `yaml:"shipment_status_topic"`
	OTPNotificationTopic  string `yaml:"otp_notification_topic"`
	ConsumerGroup         string `yaml:"consumer_group"`
}

type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DispatchConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
	HTTPAddr string `yaml:"http_addr"`

	// AutoDispatchEnabled включает автоматическую отправку после оплаты.
	AutoDispatchEnabled bool   `yaml:"auto_dispatch_enabled"`
	DefaultVendor       string `yaml:"default_vendor"`
	MerchantRefPrefix   string `yaml:"merchant_ref_prefix"`

	// PhonePolicy: "strict" | "placeholder".
	PhonePolicy      string `yaml:"phone_policy"`
	PhonePlaceholder string `yaml:"phone_placeholder"`

	OperationTimeoutSeconds int `yaml:"operation_timeout_seconds"`
	IdempotencyTTLSeconds   int `yaml:"idempotency_ttl_seconds"`
	LocationCacheTTLSeconds int `yaml:"location_cache_ttl_seconds"`
	TrackingCacheTTLSeconds int `yaml:"tracking_cache_ttl_seconds"`
	OTPMaxAttempts          int `yaml:"otp_max_attempts"`
	OTPAttemptWindowSeconds int `yaml:"otp_attempt_window_seconds"`

	Retry RetryConfig `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int `yaml:"max_attempts"`
	BaseDelayMS    int `yaml:"base_delay_ms"`
	MaxDelayMS     int `yaml:"max_delay_ms"`
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type PathaoConfig struct {
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	StoreID      int64  `yaml:"store_id"`

	DefaultCityID int64 `yaml:"default_city_id"`
	DefaultZoneID int64 `yaml:"default_zone_id"`
	// GeoPolicy: "first" | "name_match".
	GeoPolicy string `yaml:"geo_policy"`
}

type SteadfastConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	SecretKey string `yaml:"secret_key"`
}

type WorkerConfig struct {
	HTTPAddr string `yaml:"http_addr"`

	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	BatchSize           int `yaml:"batch_size"`
	Concurrency         int `yaml:"concurrency"`
	LeaseSeconds        int `yaml:"lease_seconds"`
	RateLimitPerMinute  int `yaml:"rate_limit_per_minute"`

	// Vendor-specific overrides; 0 means "use rate_limit_per_minute".
	RateLimitPathaoPerMinute    int `yaml:"rate_limit_pathao_per_minute"`
	RateLimitSteadfastPerMinute int `yaml:"rate_limit_steadfast_per_minute"`

	// Picked/in-transit parcels are polled at a random delay in [active, active_max].
	NextCheckActiveSeconds    int `yaml:"next_check_active_seconds"`
	NextCheckActiveMaxSeconds int `yaml:"next_check_active_max_seconds"`
	NextCheckPendingSeconds   int `yaml:"next_check_pending_seconds"`
	Backoff1Seconds           int `yaml:"backoff_1_seconds"`
	Backoff2Seconds           int `yaml:"backoff_2_seconds"`
	Backoff3Seconds           int `yaml:"backoff_3_seconds"`
	Backoff4Seconds           int `yaml:"backoff_4_seconds"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return &config, nil
}
