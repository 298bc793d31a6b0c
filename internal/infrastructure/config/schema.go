package config

// Config represents the complete configuration for netguard.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	// Privacy holds the per-session request policy switches.
	Privacy PrivacyConfig `mapstructure:"privacy" toml:"privacy"`
	// ContentFiltering controls the ad/tracker blocklist.
	ContentFiltering ContentFilteringConfig `mapstructure:"content_filtering" toml:"content_filtering"`
	// SafeBrowsing extends the built-in URL reputation signatures.
	SafeBrowsing SafeBrowsingConfig `mapstructure:"safe_browsing" toml:"safe_browsing"`
	Stats        StatsConfig        `mapstructure:"stats" toml:"stats"`
	// Proxy configures the forward-proxy engine started by `netguard proxy`.
	Proxy ProxyConfig `mapstructure:"proxy" toml:"proxy"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age"`
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}

// PrivacyConfig holds the switches copied into every session's policy snapshot.
type PrivacyConfig struct {
	HTTPSUpgrade           bool `mapstructure:"https_upgrade" toml:"https_upgrade"`
	DoNotTrack             bool `mapstructure:"do_not_track" toml:"do_not_track"`
	FingerprintProtection  bool `mapstructure:"fingerprint_protection" toml:"fingerprint_protection"`
	BlockThirdPartyCookies bool `mapstructure:"block_third_party_cookies" toml:"block_third_party_cookies"`
	// UserAgent replaces the engine's User-Agent header when non-empty.
	UserAgent string `mapstructure:"user_agent" toml:"user_agent"`
	// ClientHints are extra Sec-CH-UA* headers sent with the user agent override.
	ClientHints map[string]string `mapstructure:"client_hints" toml:"client_hints"`
}

// ContentFilteringConfig holds ad blocking preferences.
type ContentFilteringConfig struct {
	// Enabled controls whether ad blocking is active (default: true)
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	// KeywordFallback also blocks URLs containing a tracker keyword anywhere (default: true)
	KeywordFallback bool `mapstructure:"keyword_fallback" toml:"keyword_fallback"`
	// ExtraDomains are appended to the built-in blocklist.
	ExtraDomains []string `mapstructure:"extra_domains" toml:"extra_domains"`
}

// SafeBrowsingConfig holds additional unsafe URL signatures.
type SafeBrowsingConfig struct {
	// ExtraPatterns are case-insensitive regular expressions.
	ExtraPatterns []string `mapstructure:"extra_patterns" toml:"extra_patterns"`
}

// StatsConfig controls how often the lifetime block counter is written.
type StatsConfig struct {
	FlushIntervalMs int `mapstructure:"flush_interval_ms" toml:"flush_interval_ms"`
}

// ProxyConfig holds the forward proxy listener settings.
type ProxyConfig struct {
	Listen string `mapstructure:"listen" toml:"listen"`
	// MetricsListen serves Prometheus metrics when non-empty.
	MetricsListen string `mapstructure:"metrics_listen" toml:"metrics_listen"`
	// Partition is the session the proxy's traffic is attributed to.
	Partition string `mapstructure:"partition" toml:"partition"`
}
