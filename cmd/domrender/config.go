package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
)

// Color modes for diff output.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type config struct {
	Root           string // CSS selector for the live root
	Trace          string // trace level for all livedom tracers
	SyncAttributes bool
	Color          string
}

type fileConfig struct {
	Root           string `toml:"root"`
	Trace          string `toml:"trace"`
	SyncAttributes bool   `toml:"sync_attributes"`
	Color          string `toml:"color"`
}

func defaultConfig() config {
	return config{
		Root:           "body",
		Trace:          "error",
		SyncAttributes: true,
		Color:          colorAuto,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load domrender config: %w", err)
	}

	if meta.IsDefined("root") {
		if root := strings.TrimSpace(raw.Root); root != "" {
			cfg.Root = root
		}
	}

	if meta.IsDefined("trace") {
		cfg.Trace = strings.TrimSpace(raw.Trace)
	}

	if meta.IsDefined("sync_attributes") {
		cfg.SyncAttributes = raw.SyncAttributes
	}

	if meta.IsDefined("color") {
		cfg.Color = strings.ToLower(strings.TrimSpace(raw.Color))
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load domrender config: unknown key %q", undecoded[0].String())
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	if _, err := traceLevel(cfg.Trace); err != nil {
		return err
	}
	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q", cfg.Color)
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level %q", s)
}
