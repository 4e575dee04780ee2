package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/splitgrid/internal/logging"
)

// Config represents the complete configuration for splitgrid.
type Config struct {
	// Layout holds pane geometry in device pixels.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout"`
	// Terminal controls how the terminal host maps cells to pixels.
	Terminal    TerminalConfig    `mapstructure:"terminal" toml:"terminal"`
	Persistence PersistenceConfig `mapstructure:"persistence" toml:"persistence"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging"`
	Tracing     TracingConfig     `mapstructure:"tracing" toml:"tracing"`
}

// LayoutConfig holds the pane geometry.
type LayoutConfig struct {
	MinWidth    float64 `mapstructure:"min_width" toml:"min_width" jsonschema:"exclusiveMinimum=0,default=80"`
	MinHeight   float64 `mapstructure:"min_height" toml:"min_height" jsonschema:"exclusiveMinimum=0,default=100"`
	HandleSize  float64 `mapstructure:"handle_size" toml:"handle_size" jsonschema:"exclusiveMinimum=0,default=4"`
	DividerSize float64 `mapstructure:"divider_size" toml:"divider_size" jsonschema:"exclusiveMinimum=0,default=1"`
}

// TerminalConfig holds terminal host settings.
type TerminalConfig struct {
	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth  int  `mapstructure:"cell_width" toml:"cell_width" jsonschema:"minimum=1,default=8"`
	CellHeight int  `mapstructure:"cell_height" toml:"cell_height" jsonschema:"minimum=1,default=16"`
	Mouse      bool `mapstructure:"mouse" toml:"mouse" jsonschema:"default=true"`
}

// PersistenceConfig controls layout snapshots.
type PersistenceConfig struct {
	Enabled      bool   `mapstructure:"enabled" toml:"enabled" jsonschema:"default=true"`
	DatabasePath string `mapstructure:"database_path" toml:"database_path"`
	// DebounceMs is how long the layout must stay unchanged before it is written.
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" jsonschema:"minimum=0,default=500"`
	// Workspace is the name the layout is saved under.
	Workspace string `mapstructure:"workspace" toml:"workspace" jsonschema:"default=main"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" jsonschema:"minimum=0"`
}

// LogFile returns the path of the active log file.
func (c LoggingConfig) LogFile() string {
	if c.LogDir == "" {
		return ""
	}
	return filepath.Join(c.LogDir, logFileName)
}

// TracingConfig selects the OTLP trace exporter. Tracing is off while
// Endpoint is empty.
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint" toml:"endpoint"`
	ServiceName string `mapstructure:"service_name" toml:"service_name"`
	Insecure    bool   `mapstructure:"insecure" toml:"insecure"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// SPLITGRID_LAYOUT_MIN_WIDTH and friends
	v.SetEnvPrefix("SPLITGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same variables the bootstrap logger reads
	if err := v.BindEnv("logging.level", "SPLITGRID_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITGRID_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SPLITGRID_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITGRID_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("tracing.endpoint", "SPLITGRID_TRACING_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind tracing endpoint: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := m.finish(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// finish fills derived paths, normalizes and validates a freshly read config.
func (m *Manager) finish(config *Config) error {
	if config.Persistence.DatabasePath == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Persistence.DatabasePath = dbPath
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
	config.Persistence.Workspace = strings.TrimSpace(config.Persistence.Workspace)
	if config.Persistence.Workspace == "" {
		config.Persistence.Workspace = defaultWorkspace
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and their JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")

	if schemaFile, err := GenerateSchemaFile(); err != nil {
		log.Warn().Err(err).Msg("failed to generate config schema")
	} else {
		log.Debug().Str("path", schemaFile).Msg("generated config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.min_width", defaults.Layout.MinWidth)
	m.viper.SetDefault("layout.min_height", defaults.Layout.MinHeight)
	m.viper.SetDefault("layout.handle_size", defaults.Layout.HandleSize)
	m.viper.SetDefault("layout.divider_size", defaults.Layout.DividerSize)

	m.viper.SetDefault("terminal.cell_width", defaults.Terminal.CellWidth)
	m.viper.SetDefault("terminal.cell_height", defaults.Terminal.CellHeight)
	m.viper.SetDefault("terminal.mouse", defaults.Terminal.Mouse)

	// Note: persistence.database_path is resolved in Load
	m.viper.SetDefault("persistence.enabled", defaults.Persistence.Enabled)
	m.viper.SetDefault("persistence.debounce_ms", defaults.Persistence.DebounceMs)
	m.viper.SetDefault("persistence.workspace", defaults.Persistence.Workspace)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)

	m.viper.SetDefault("tracing.endpoint", defaults.Tracing.Endpoint)
	m.viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	m.viper.SetDefault("tracing.insecure", defaults.Tracing.Insecure)
}
