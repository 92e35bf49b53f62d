// Package config loads server configuration.
//
// A YAML file named by --config (or WIKI_CONFIG) is read first; flags set
// explicitly on the command line override it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "WIKI_CONFIG"

type Config struct {
	GRPC     GRPCConfig     `yaml:"grpc"`
	Admin    AdminConfig    `yaml:"admin"`
	Postgres PostgresConfig `yaml:"postgres"`
	Auth     AuthConfig     `yaml:"auth"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Redis    RedisConfig    `yaml:"redis"`
	Resync   ResyncConfig   `yaml:"resync"`
	Sync     SyncConfig     `yaml:"sync"`
	Events   EventsConfig   `yaml:"events"`
	Log      LogConfig      `yaml:"log"`
}

type GRPCConfig struct {
	Addr       string `yaml:"addr"`
	TLSCert    string `yaml:"tls_cert"`
	TLSKey     string `yaml:"tls_key"`
	Reflection bool   `yaml:"reflection"`
}

type AdminConfig struct {
	Addr string `yaml:"addr"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type AuthConfig struct {
	JWTKey string `yaml:"jwt_key"`
}

// KafkaConfig enables project sync and notifications when Brokers is set.
type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	Group             string   `yaml:"group"`
	ProjectTopic      string   `yaml:"project_topic"`
	ResyncTopic       string   `yaml:"resync_topic"`
	NotificationTopic string   `yaml:"notification_topic"`
}

// RedisConfig selects the Redis resync throttle when URL is set; the
// Postgres one is used otherwise.
type RedisConfig struct {
	URL string `yaml:"url"`
}

type ResyncConfig struct {
	Window time.Duration `yaml:"window"`
}

type SyncConfig struct {
	Attempts  int           `yaml:"attempts"`
	BaseDelay time.Duration `yaml:"base_delay"`
	MaxDelay  time.Duration `yaml:"max_delay"`
}

type EventsConfig struct {
	// CompressThreshold is the payload size in bytes above which payloads
	// are stored zstd-compressed. Zero disables compression.
	CompressThreshold int `yaml:"compress_threshold"`
}

type LogConfig struct {
	Development bool `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GRPC:  GRPCConfig{Addr: ":8443"},
		Admin: AdminConfig{Addr: ":9090"},
		Kafka: KafkaConfig{
			Group:             "wiki-service",
			ProjectTopic:      "projects",
			ResyncTopic:       "project-sync-requests",
			NotificationTopic: "notifications",
		},
		Resync: ResyncConfig{Window: 30 * time.Second},
		Sync:   SyncConfig{Attempts: 6, BaseDelay: 250 * time.Millisecond, MaxDelay: 2 * time.Second},
		Events: EventsConfig{CompressThreshold: 4096},
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// args. pflag.ErrHelp is returned unchanged when --help is given.
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := pflag.NewFlagSet("wiki-server", pflag.ContinueOnError)
	path := fs.String("config", os.Getenv(EnvConfig), "path to YAML config file")
	var (
		grpcAddr   = fs.String("grpc.addr", cfg.GRPC.Addr, "gRPC listen address")
		tlsCert    = fs.String("grpc.tls_cert", "", "TLS certificate (PEM); plaintext when empty")
		tlsKey     = fs.String("grpc.tls_key", "", "TLS private key (PEM)")
		reflect    = fs.Bool("grpc.reflection", false, "enable server reflection")
		adminAddr  = fs.String("admin.addr", cfg.Admin.Addr, "admin HTTP listen address")
		dsn        = fs.String("postgres.dsn", "", "PostgreSQL DSN")
		jwtKey     = fs.String("auth.jwt_key", "", "HS256 key used to verify bearer tokens")
		brokers    = fs.StringSlice("kafka.brokers", nil, "Kafka seed brokers")
		group      = fs.String("kafka.group", cfg.Kafka.Group, "consumer group")
		projTopic  = fs.String("kafka.project_topic", cfg.Kafka.ProjectTopic, "project message topic")
		resyncTop  = fs.String("kafka.resync_topic", cfg.Kafka.ResyncTopic, "resync request topic")
		notifTopic = fs.String("kafka.notification_topic", cfg.Kafka.NotificationTopic, "notification topic")
		redisURL   = fs.String("redis.url", "", "Redis URL for the resync throttle")
		window     = fs.Duration("resync.window", cfg.Resync.Window, "resync throttle window")
		attempts   = fs.Int("sync.attempts", cfg.Sync.Attempts, "attempts per project message and resync burst")
		baseDelay  = fs.Duration("sync.base_delay", cfg.Sync.BaseDelay, "first retry delay")
		maxDelay   = fs.Duration("sync.max_delay", cfg.Sync.MaxDelay, "retry delay cap")
		threshold  = fs.Int("events.compress_threshold", cfg.Events.CompressThreshold, "compress payloads above this size; 0 disables")
		dev        = fs.Bool("log.development", false, "development logger")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *path != "" {
		if err := loadFile(*path, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "grpc.addr":
			cfg.GRPC.Addr = *grpcAddr
		case "grpc.tls_cert":
			cfg.GRPC.TLSCert = *tlsCert
		case "grpc.tls_key":
			cfg.GRPC.TLSKey = *tlsKey
		case "grpc.reflection":
			cfg.GRPC.Reflection = *reflect
		case "admin.addr":
			cfg.Admin.Addr = *adminAddr
		case "postgres.dsn":
			cfg.Postgres.DSN = *dsn
		case "auth.jwt_key":
			cfg.Auth.JWTKey = *jwtKey
		case "kafka.brokers":
			cfg.Kafka.Brokers = *brokers
		case "kafka.group":
			cfg.Kafka.Group = *group
		case "kafka.project_topic":
			cfg.Kafka.ProjectTopic = *projTopic
		case "kafka.resync_topic":
			cfg.Kafka.ResyncTopic = *resyncTop
		case "kafka.notification_topic":
			cfg.Kafka.NotificationTopic = *notifTopic
		case "redis.url":
			cfg.Redis.URL = *redisURL
		case "resync.window":
			cfg.Resync.Window = *window
		case "sync.attempts":
			cfg.Sync.Attempts = *attempts
		case "sync.base_delay":
			cfg.Sync.BaseDelay = *baseDelay
		case "sync.max_delay":
			cfg.Sync.MaxDelay = *maxDelay
		case "events.compress_threshold":
			cfg.Events.CompressThreshold = *threshold
		case "log.development":
			cfg.Log.Development = *dev
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error
	if c.Postgres.DSN == "" {
		problems = append(problems, errors.New("postgres.dsn is required"))
	}
	if c.Auth.JWTKey == "" {
		problems = append(problems, errors.New("auth.jwt_key is required"))
	}
	if (c.GRPC.TLSCert == "") != (c.GRPC.TLSKey == "") {
		problems = append(problems, errors.New("grpc.tls_cert and grpc.tls_key must be set together"))
	}
	if c.Sync.Attempts < 1 {
		problems = append(problems, errors.New("sync.attempts must be at least 1"))
	}
	if c.Sync.BaseDelay <= 0 || c.Sync.MaxDelay <= 0 {
		problems = append(problems, errors.New("sync delays must be positive"))
	}
	if c.Resync.Window <= 0 {
		problems = append(problems, errors.New("resync.window must be positive"))
	}
	if c.Events.CompressThreshold < 0 {
		problems = append(problems, errors.New("events.compress_threshold must not be negative"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.ProjectTopic == "" {
		problems = append(problems, errors.New("kafka.project_topic is required with kafka.brokers"))
	}
	return errors.Join(problems...)
}
