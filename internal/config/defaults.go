package config

const (
	DefaultFolder   = "docs"
	DefaultTitle    = "MKPY"
	DefaultTheme    = ThemeLight
	DefaultHost     = "127.0.0.1"
	DefaultPort     = 8000
	DefaultOutput   = "project"
	DefaultLogLevel = "info"

	// DefaultConfigFile is picked up automatically when present in the working directory.
	DefaultConfigFile = "mkpy.yaml"
)

// Default returns a configuration populated with every default value.
func Default() Config {
	return Config{
		Folder:   DefaultFolder,
		Title:    DefaultTitle,
		Theme:    DefaultTheme,
		Host:     DefaultHost,
		Port:     DefaultPort,
		ShowNav:  true,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// applyDefaults fills zero values that an explicit YAML key may have blanked.
func (c *Config) applyDefaults() {
	if c.Folder == "" {
		c.Folder = DefaultFolder
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
