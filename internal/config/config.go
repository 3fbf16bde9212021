package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Content ContentConfig `mapstructure:"content" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// ContentConfig locates the catalog content on disk.
type ContentConfig struct {
	// Dir is the root holding the categories/ and patterns/ directories.
	Dir string `mapstructure:"dir" validate:"required"`
	// Watch reloads content when files under Dir change.
	Watch bool `mapstructure:"watch"`
}
