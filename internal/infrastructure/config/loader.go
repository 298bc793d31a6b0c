package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and saving.
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

	// NETGUARD_PRIVACY_DO_NOT_TRACK=false overrides privacy.do_not_track, and so on.
	v.SetEnvPrefix("NETGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names the logging package reads before config is loaded.
	if err := v.BindEnv("logging.level", "NETGUARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind NETGUARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "NETGUARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind NETGUARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
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

	return m.reload()
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

	if err := m.createDefaultConfig(); err != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// reload re-reads viper state into m.config. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Privacy.UserAgent = strings.TrimSpace(config.Privacy.UserAgent)
	if config.Privacy.ClientHints == nil {
		config.Privacy.ClientHints = map[string]string{}
	}

	config.ContentFiltering.ExtraDomains = normalizeDomains(config.ContentFiltering.ExtraDomains)

	config.Proxy.Listen = strings.TrimSpace(config.Proxy.Listen)
	config.Proxy.MetricsListen = strings.TrimSpace(config.Proxy.MetricsListen)
	config.Proxy.Partition = strings.TrimSpace(config.Proxy.Partition)
	if config.Proxy.Partition == "" {
		config.Proxy.Partition = defaultProxyPartition
	}
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d != "" && !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}

// Get returns a copy of the current configuration (thread-safe).
// Defaults are returned when Load has not run.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return cloneConfig(m.config)
}

func cloneConfig(cfg *Config) *Config {
	c := *cfg
	c.Privacy.ClientHints = maps.Clone(cfg.Privacy.ClientHints)
	c.ContentFiltering.ExtraDomains = slices.Clone(cfg.ContentFiltering.ExtraDomains)
	c.SafeBrowsing.ExtraPatterns = slices.Clone(cfg.SafeBrowsing.ExtraPatterns)
	return &c
}

// Save validates cfg and writes it to the config file. The new values are
// applied and callbacks notified before Save returns. When the file is watched
// viper re-reads it through the watcher, which reloads the same values again.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	m.mu.Lock()

	next := cloneConfig(cfg)
	if err := ensureDatabasePath(next); err != nil {
		m.mu.Unlock()
		return err
	}
	normalizeConfig(next)
	if err := validateConfig(next); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			m.mu.Unlock()
			return err
		}
	}
	if err := WriteConfigOrdered(next, path); err != nil {
		m.mu.Unlock()
		return err
	}

	if m.watching {
		m.config = next
		m.notifyCallbacksLocked()
		return nil
	}

	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is resolved in reload(), no default needed

	m.setLoggingDefaults(defaults)
	m.setPrivacyDefaults(defaults)
	m.setContentFilteringDefaults(defaults)
	m.viper.SetDefault("safe_browsing.extra_patterns", defaults.SafeBrowsing.ExtraPatterns)
	m.viper.SetDefault("stats.flush_interval_ms", defaults.Stats.FlushIntervalMs)
	m.setProxyDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setPrivacyDefaults(defaults *Config) {
	m.viper.SetDefault("privacy.https_upgrade", defaults.Privacy.HTTPSUpgrade)
	m.viper.SetDefault("privacy.do_not_track", defaults.Privacy.DoNotTrack)
	m.viper.SetDefault("privacy.fingerprint_protection", defaults.Privacy.FingerprintProtection)
	m.viper.SetDefault("privacy.block_third_party_cookies", defaults.Privacy.BlockThirdPartyCookies)
	m.viper.SetDefault("privacy.user_agent", defaults.Privacy.UserAgent)
	m.viper.SetDefault("privacy.client_hints", defaults.Privacy.ClientHints)
}

func (m *Manager) setContentFilteringDefaults(defaults *Config) {
	m.viper.SetDefault("content_filtering.enabled", defaults.ContentFiltering.Enabled)
	m.viper.SetDefault("content_filtering.keyword_fallback", defaults.ContentFiltering.KeywordFallback)
	m.viper.SetDefault("content_filtering.extra_domains", defaults.ContentFiltering.ExtraDomains)
}

func (m *Manager) setProxyDefaults(defaults *Config) {
	m.viper.SetDefault("proxy.listen", defaults.Proxy.Listen)
	m.viper.SetDefault("proxy.metrics_listen", defaults.Proxy.MetricsListen)
	m.viper.SetDefault("proxy.partition", defaults.Proxy.Partition)
}
