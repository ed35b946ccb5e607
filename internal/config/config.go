package config

import "fmt"

// Default configuration values.
const (
	defaultServiceName  = "status-service"
	defaultServicePort  = 5000
	defaultVersion      = "0.0.1-dev"
	defaultEnvironment  = EnvDevelopment
	defaultSecretKey    = "dev-secret-key-change-me"
	defaultLoggingLevel = "info"
	defaultLoggingFmt   = "json"
)

// EnvDevelopment is the environment in which the placeholder secret key
// is acceptable and debug mode defaults to on.
const EnvDevelopment = "development"

// Config holds the application configuration. It is constructed once at
// process start and never mutated afterwards, so it is safe to share
// across request handlers without locking.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `env:"FLASK_ENV"   yaml:"environment"`
	Version     string `env:"APP_VERSION" yaml:"version"`
	Port        int    `env:"APP_PORT"    yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"   yaml:"debug"`
	SecretKey   string `env:"SECRET_KEY"  yaml:"secret_key"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path. A missing file is not
// an error; the service runs from environment variables and defaults alone.
func Load(path string) (*Config, error) {
	return load(path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
}

// setServiceDefaults applies default values to ServiceConfig. The debug
// flag follows the environment: on in development, off elsewhere. APP_DEBUG
// overrides it because env overrides are re-applied after defaults.
func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Environment == "" {
		svc.Environment = defaultEnvironment
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
	if svc.SecretKey == "" {
		svc.SecretKey = defaultSecretKey
	}
	svc.Debug = svc.Environment == EnvDevelopment
}

// setLoggingDefaults applies default values to LoggingConfig.
func setLoggingDefaults(log *LoggingConfig) {
	if log.Level == "" {
		log.Level = defaultLoggingLevel
	}
	if log.Format == "" {
		log.Format = defaultLoggingFmt
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validatePort checks that a port number is usable.
func validatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// Validate validates the configuration. The placeholder secret key is
// rejected outside of development.
func (c *Config) Validate() error {
	if err := validatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if c.Service.Environment != EnvDevelopment && c.Service.SecretKey == defaultSecretKey {
		return &ValidationError{
			Field:   "service.secret_key",
			Message: "must not use the development placeholder outside development",
		}
	}
	return nil
}
