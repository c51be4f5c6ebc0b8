// Package module provides the records module
package module

import (
	"winback/internal/modkit"
	"winback/internal/modkit/repokit"
	"winback/internal/services/records/domain"
	"winback/internal/services/records/repo"
	"winback/internal/services/records/service"
)

// Ports exposed by the records module
type Ports struct {
	Reader domain.ReaderPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new records module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.MustBind(binder, deps.PG), service.Config{
		QueryTimeout: opts.QueryTimeout,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "records" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
