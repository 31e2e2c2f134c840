package gologger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Config selects the go-logger backend.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	// Focus lists logger name prefixes. "portfolio.content" also focuses
	// "portfolio.content.audit".
	Focus []string
}

// Provider hands out go-logger child loggers named after portfolio modules.
type Provider struct {
	root *glog.BaseLogger

	mu      sync.Mutex
	prefix  []string
	focused map[string]struct{}
}

// NewProvider builds the root go-logger from cfg.
func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}
	if level := levelName(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", glog.LoggerTypeJSON:
		options = append(options, glog.WithLoggerTypeJSON())
	case glog.LoggerTypeConsole:
		options = append(options, glog.WithLoggerTypeConsole())
	case glog.LoggerTypePretty:
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	p := &Provider{
		root:    glog.NewLogger(options...),
		focused: map[string]struct{}{},
	}
	for _, name := range cfg.Focus {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			p.prefix = append(p.prefix, trimmed)
		}
	}
	if len(p.prefix) > 0 {
		p.refocus()
	}
	return p, nil
}

// GetLogger returns the child logger for a module name such as
// "portfolio.content". An empty name returns the root logger.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return wrap(p.root)
	}
	child := p.root.GetLogger(name)
	p.track(name)
	return wrap(child)
}

// track adds name to the focus set when it falls under a configured prefix.
// go-logger matches focus by exact name, so every child is registered as it
// is handed out.
func (p *Provider) track(name string) {
	if len(p.prefix) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.focused[name]; ok || !hasPrefix(name, p.prefix) {
		return
	}
	p.focused[name] = struct{}{}
	p.refocusLocked()
}

func (p *Provider) refocus() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refocusLocked()
}

func (p *Provider) refocusLocked() {
	names := append([]string{}, p.prefix...)
	for name := range p.focused {
		names = append(names, name)
	}
	p.root.Focus(names...)
}

func hasPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if name == prefix || strings.HasPrefix(name, prefix+".") {
			return true
		}
	}
	return false
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

var (
	_ interfaces.Logger       = (*adapter)(nil)
	_ interfaces.FieldsLogger = (*adapter)(nil)
)

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	with, ok := l.inner.(glog.FieldsLogger)
	if !ok {
		return l
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return wrap(with.WithFields(copied))
}

// WithContext binds ctx and lifts fields stored with logging.ContextWithFields,
// such as the request id, onto the logger.
func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	next := &adapter{inner: l.inner.WithContext(ctx)}
	if fields := logging.ContextFields(ctx); len(fields) > 0 {
		return next.WithFields(fields)
	}
	return next
}

func levelName(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}
