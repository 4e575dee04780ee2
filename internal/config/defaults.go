package config

// Default configuration constants
const (
	// Layout defaults, in device pixels
	defaultMinWidth    = 80.0
	defaultMinHeight   = 100.0
	defaultHandleSize  = 4.0
	defaultDividerSize = 1.0

	// Terminal defaults
	defaultCellWidth  = 8  // px per column
	defaultCellHeight = 16 // px per row

	// Persistence defaults
	defaultDebounceMs = 500
	defaultWorkspace  = "main"

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7

	defaultServiceName = "splitgrid"
)

// getDefaultLogDir returns the default log directory, or "" on error.
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for splitgrid.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MinWidth:    defaultMinWidth,
			MinHeight:   defaultMinHeight,
			HandleSize:  defaultHandleSize,
			DividerSize: defaultDividerSize,
		},
		Terminal: TerminalConfig{
			CellWidth:  defaultCellWidth,
			CellHeight: defaultCellHeight,
			Mouse:      true,
		},
		Persistence: PersistenceConfig{
			Enabled: true,
			// DatabasePath is set dynamically in Load()
			DebounceMs: defaultDebounceMs,
			Workspace:  defaultWorkspace,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			// The terminal is owned by the UI, so logs go to a file by default.
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
		},
		Tracing: TracingConfig{
			ServiceName: defaultServiceName,
		},
	}
}
