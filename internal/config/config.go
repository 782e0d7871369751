package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// StoreConfig contains settings for the in-memory record store.
type StoreConfig struct {
	// SeedDemoData controls whether the store starts populated with the
	// demo classroom fixture (accounts, projects, the sample test, and
	// materials). Disable it to start from an empty store.
	SeedDemoData bool `mapstructure:"seed_demo_data"`
}
