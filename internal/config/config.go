package config

import (
	"io/fs"
	"strings"

	"github.com/doitintl/vmswitch/internal/types"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	DefaultNatsSubject = "vmswitch.directives"
	DefaultPort        = "8080"
	envFile            = ".env"
)

type Config struct {
	// Project is the GCP project ID or the AWS account ID or the OCI compartment OCID
	Project string `json:"project"`
	// Instances is the comma separated list of instance:zone pairs
	Instances string `json:"instances"`
	// Cloud is the cloud provider hosting the instances
	Cloud types.CloudProvider `json:"cloud"`
	// ForceStop forces instances to stop without a graceful shutdown (AWS, OCI)
	ForceStop bool `json:"force-stop"`
	// DiscardLocalSsd discards local SSD data when stopping an instance (GCP)
	DiscardLocalSsd bool `json:"discard-local-ssd"`
	// DryRun logs the calls instead of issuing them
	DryRun bool `json:"dry-run"`
	// DevelopMode mode
	DevelopMode bool `json:"develop-mode"`
	// NatsURL is the NATS server URL for the subscribe command
	NatsURL string `json:"nats-url"`
	// NatsSubject is the subject directives are published to
	NatsSubject string `json:"nats-subject"`
	// NatsQueue is the optional queue group shared by subscribers
	NatsQueue string `json:"nats-queue"`
	// Port is the local port the function is served on
	Port string `json:"port"`
	// LogLevel is the logging level
	LogLevel string `json:"log-level"`
	// LogJSON enables JSON log output
	LogJSON bool `json:"json"`
}

func NewConfig(c *cli.Context) *Config {
	var cfg Config
	cfg.Project = c.String("project")
	cfg.Instances = c.String("instances")
	cfg.Cloud = types.CloudProvider(strings.ToLower(c.String("cloud")))
	cfg.ForceStop = c.Bool("force-stop")
	cfg.DiscardLocalSsd = c.Bool("discard-local-ssd")
	cfg.DryRun = c.Bool("dry-run")
	cfg.DevelopMode = c.Bool("develop-mode")
	cfg.NatsURL = c.String("nats-url")
	cfg.NatsSubject = c.String("nats-subject")
	cfg.NatsQueue = c.String("nats-queue")
	cfg.Port = c.String("port")
	cfg.LogLevel = c.String("log-level")
	cfg.LogJSON = c.Bool("json")
	return &cfg
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("GCP_PROJECT", "")
	v.SetDefault("INSTANCES_ZONES", "")
	v.SetDefault("CLOUD_PROVIDER", string(types.CloudProviderGCP))
	v.SetDefault("FORCE_STOP", false)
	v.SetDefault("DISCARD_LOCAL_SSD", false)
	v.SetDefault("DRY_RUN", false)
	v.SetDefault("DEVELOP_MODE", false)
	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_SUBJECT", DefaultNatsSubject)
	v.SetDefault("NATS_QUEUE", "")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", true)
}

// FromEnv reads the configuration from the process environment.
// Variables found in a .env file in the working directory are used when not set in the environment.
func FromEnv() (*Config, error) {
	return fromViper(envFile)
}

func fromViper(file string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setConfigDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read %s", file)
		}
	}

	return &Config{
		Project:         v.GetString("GCP_PROJECT"),
		Instances:       v.GetString("INSTANCES_ZONES"),
		Cloud:           types.CloudProvider(strings.ToLower(v.GetString("CLOUD_PROVIDER"))),
		ForceStop:       v.GetBool("FORCE_STOP"),
		DiscardLocalSsd: v.GetBool("DISCARD_LOCAL_SSD"),
		DryRun:          v.GetBool("DRY_RUN"),
		DevelopMode:     v.GetBool("DEVELOP_MODE"),
		NatsURL:         v.GetString("NATS_URL"),
		NatsSubject:     v.GetString("NATS_SUBJECT"),
		NatsQueue:       v.GetString("NATS_QUEUE"),
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogJSON:         v.GetBool("LOG_JSON"),
	}, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
