package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"winback/internal/modkit"
	"winback/internal/modkit/module"
	"winback/internal/platform/config"
	"winback/internal/platform/logger"
	"winback/internal/platform/store"

	recmod "winback/internal/services/records/module"
	wbdom "winback/internal/services/winback/domain"
	wbmod "winback/internal/services/winback/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	var (
		refStr  = flag.String("ref", "", "reference date, RFC3339 or YYYY-MM-DD (default: today UTC)")
		months  = flag.Int("window-months", 0, "recency window in calendar months (default 6)")
		workers = flag.Int("workers", 0, "aggregation shards (>=1)")
		outDir  = flag.String("output", "reports/", "output folder for the JSON report")
	)
	flag.Parse()

	ref := time.Now().UTC().Truncate(24 * time.Hour)
	if *refStr != "" {
		t, err := config.ParseTime(*refStr)
		if err != nil {
			l.Fatal().Err(err).Str("value", *refStr).Msg("bad -ref")
		}
		ref = t
	}

	st, err := store.Open(context.Background(), store.Config{
		AppName: "winback-report",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// Build dependency modules first
	rm := recmod.New(deps)

	// Build winback module with ports injected from deps modules
	wm := wbmod.New(
		deps,
		wbmod.Options{
			WindowMonths: *months,
			Workers:      *workers,
		},
		modkit.WithPorts(wbdom.Ports{
			Records: module.MustPortsOf[recmod.Ports](rm).Reader,
		}),
	)

	// Register ports
	module.Register(rm.Name(), rm.Ports())
	module.Register(wm.Name(), wm.Ports())

	// Kick the runner
	ports := wm.Ports().(wbmod.Ports)
	report, err := ports.Runner.Run(context.Background(), wbdom.RunInput{
		ReferenceDate: ref,
		WindowMonths:  *months,
		Workers:       *workers,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("segmentation failed")
	}

	path := timestampedFilename(*outDir, "high_value_lapsed")
	if err := writeJSON(path, report); err != nil {
		l.Fatal().Err(err).Str("path", path).Msg("export failed")
	}

	p := message.NewPrinter(language.English)
	l.Info().
		Str("run_id", report.RunID).
		Str("path", path).
		Str("rows", p.Sprintf("%d", len(report.Rows))).
		Msg("report written")
}

// writeJSON exports the report as indented JSON, creating the folder if needed
func writeJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func timestampedFilename(baseDir, name string) string {
	ts := time.Now().UTC().Format("20060102_150405")
	return filepath.Join(baseDir, fmt.Sprintf("%s_%s.json", name, ts))
}
