package module

import (
	"winback/internal/core/segment"
	"winback/internal/platform/config"
)

// Options holds configuration settings for the winback module
type Options struct {
	WindowMonths int
	Workers      int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	wf := cfg.Prefix("CORE_WINBACK_")
	return Options{
		WindowMonths: wf.MayInt("WINDOW_MONTHS", segment.DefaultWindowMonths),
		Workers:      wf.MayInt("WORKERS", 1),
	}
}
