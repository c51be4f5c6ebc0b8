package module

import (
	"time"

	"winback/internal/platform/config"
)

// Options configures the records module
type Options struct {
	QueryTimeout time.Duration
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_RECORDS_")
	return Options{
		QueryTimeout: rf.MayDuration("QUERY_TIMEOUT", 30*time.Second),
	}
}
