package kynto

import (
	"log/slog"

	"github.com/Mattiemus/Kynto2-sub008/material"
	"github.com/Mattiemus/Kynto2-sub008/window"
)

// Option configures an Engine during creation. Options are applied in
// order and win over the resolved config.
type Option func(*engineOptions)

type engineOptions struct {
	cfg       Config
	cfgFile   string
	backend   string
	win       window.Window
	headless  bool
	logger    *slog.Logger
	loggerSet bool
	bindings  *material.BindingRegistry
}

func defaultEngineOptions() engineOptions {
	return engineOptions{cfg: DefaultConfig()}
}

// WithConfig supplies a full configuration, replacing the defaults.
func WithConfig(cfg Config) Option {
	return func(o *engineOptions) { o.cfg = cfg }
}

// WithConfigFile loads the configuration from a TOML file during New.
func WithConfigFile(path string) Option {
	return func(o *engineOptions) { o.cfgFile = path }
}

// WithBackend forces a specific graphics backend by registry name,
// overriding the config.
func WithBackend(name string) Option {
	return func(o *engineOptions) { o.backend = name }
}

// WithWindow injects an already-created window. The engine will not
// open its own, but still drains events from and presents to this one.
// The window remains owned by the engine and is destroyed on Close.
func WithWindow(w window.Window) Option {
	return func(o *engineOptions) { o.win = w }
}

// Headless creates the engine without any window, context still
// included when the backend supports one. Useful for tests and
// offscreen work.
func Headless() Option {
	return func(o *engineOptions) { o.headless = true }
}

// WithLogger enables engine-wide logging, equivalent to calling
// SetLogger before New.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
		o.loggerSet = true
	}
}

// WithBindings supplies the semantic binding registry. The engine adds
// its built-in semantics to it, skipping any the caller already
// registered.
func WithBindings(reg *material.BindingRegistry) Option {
	return func(o *engineOptions) { o.bindings = reg }
}
