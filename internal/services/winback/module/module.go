// Package module implements the winback module
package module

import (
	"winback/internal/modkit"
	"winback/internal/services/winback/domain"
	"winback/internal/services/winback/service"
)

// Ports exposed by the winback module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new winback module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("winback"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("winback module: expected WithPorts(winback/domain.Ports)")
	}
	if ports.Records == nil {
		panic("winback module: Ports missing Records")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.WindowMonths != 0 {
		cfg.WindowMonths = overrides.WindowMonths
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}

	runner := service.New(ports.Records, service.Config{
		WindowMonths: cfg.WindowMonths,
		Workers:      cfg.Workers,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "winback" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
