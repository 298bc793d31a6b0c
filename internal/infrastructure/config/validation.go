package config

import (
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/rs/zerolog"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePrivacy(config)...)
	validationErrors = append(validationErrors, validateContentFiltering(config)...)
	validationErrors = append(validationErrors, validateSafeBrowsing(config)...)
	validationErrors = append(validationErrors, validateStats(config)...)
	validationErrors = append(validationErrors, validateProxy(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validatePrivacy(config *Config) []string {
	var validationErrors []string
	for name, value := range config.Privacy.ClientHints {
		if !strings.HasPrefix(strings.ToLower(name), "sec-ch-ua") {
			validationErrors = append(validationErrors, fmt.Sprintf("privacy.client_hints key %q must be a Sec-CH-UA header", name))
		}
		if strings.ContainsAny(value, "\r\n") {
			validationErrors = append(validationErrors, fmt.Sprintf("privacy.client_hints %q contains a line break", name))
		}
	}
	if strings.ContainsAny(config.Privacy.UserAgent, "\r\n") {
		validationErrors = append(validationErrors, "privacy.user_agent contains a line break")
	}
	return validationErrors
}

func validateContentFiltering(config *Config) []string {
	var validationErrors []string
	for _, d := range config.ContentFiltering.ExtraDomains {
		if strings.Contains(d, "://") || strings.ContainsAny(d, "/ ") {
			validationErrors = append(validationErrors, fmt.Sprintf("content_filtering.extra_domains entry %q must be a bare host name", d))
		}
	}
	return validationErrors
}

func validateSafeBrowsing(config *Config) []string {
	var validationErrors []string
	for _, p := range config.SafeBrowsing.ExtraPatterns {
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("safe_browsing.extra_patterns entry %q: %v", p, err))
		}
	}
	return validationErrors
}

func validateStats(config *Config) []string {
	if config.Stats.FlushIntervalMs <= 0 {
		return []string{"stats.flush_interval_ms must be positive"}
	}
	return nil
}

func validateProxy(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Proxy.Listen); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("proxy.listen %q must be host:port", config.Proxy.Listen))
	}
	if config.Proxy.MetricsListen != "" {
		if _, _, err := net.SplitHostPort(config.Proxy.MetricsListen); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("proxy.metrics_listen %q must be host:port", config.Proxy.MetricsListen))
		}
	}
	if err := entity.ValidatePartition(config.Proxy.Partition); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("proxy.partition %q: %v", config.Proxy.Partition, err))
	}
	return validationErrors
}
