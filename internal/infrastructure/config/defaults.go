package config

import "path/filepath"

// Default configuration constants
const (
	defaultLogMaxSizeMB    = 10
	defaultLogMaxBackups   = 3
	defaultLogMaxAgeDays   = 7
	defaultFlushIntervalMs = 5000
	defaultProxyListen     = "127.0.0.1:8118"
	defaultMetricsListen   = "127.0.0.1:9118"
	defaultProxyPartition  = "persist:netguard"
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultLogMaxAgeDays,
			Compress:      true,
		},
		Privacy: PrivacyConfig{
			HTTPSUpgrade:           true,
			DoNotTrack:             true,
			FingerprintProtection:  true,
			BlockThirdPartyCookies: true,
			UserAgent:              "",
			ClientHints:            map[string]string{},
		},
		ContentFiltering: ContentFilteringConfig{
			Enabled:         true,
			KeywordFallback: true,
			ExtraDomains:    []string{},
		},
		SafeBrowsing: SafeBrowsingConfig{
			ExtraPatterns: []string{},
		},
		Stats: StatsConfig{
			FlushIntervalMs: defaultFlushIntervalMs,
		},
		Proxy: ProxyConfig{
			Listen:        defaultProxyListen,
			MetricsListen: defaultMetricsListen,
			Partition:     defaultProxyPartition,
		},
	}
}

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return filepath.Clean(dir)
}
