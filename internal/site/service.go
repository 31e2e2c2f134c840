package site

import (
	"context"
	"io/fs"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/settings"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/google/uuid"
)

// Config customises a Service.
type Config struct {
	Logger interfaces.Logger
	// ContentLogger and SettingsLogger default to Logger.
	ContentLogger  interfaces.Logger
	SettingsLogger interfaces.Logger
	// Now is the clock used for documents without a date. Defaults to time.Now.
	Now func() time.Time
}

// Service opens Sessions over one content tree. It keeps no parsed content
// itself; all caching lives in the Session.
type Service struct {
	projects *content.Repository
	settings *settings.Loader
	logger   interfaces.Logger
}

// NewService builds a Service reading from the content root filesystem.
func NewService(filesystem fs.FS, cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	contentLogger := cfg.ContentLogger
	if contentLogger == nil {
		contentLogger = logger
	}
	settingsLogger := cfg.SettingsLogger
	if settingsLogger == nil {
		settingsLogger = logger
	}
	return &Service{
		projects: content.NewRepository(filesystem,
			content.WithLogger(contentLogger),
			content.WithClock(cfg.Now),
		),
		settings: settings.NewLoader(filesystem, settingsLogger),
		logger:   logger,
	}
}

// Repository exposes the uncached repository for build time tooling.
func (s *Service) Repository() *content.Repository {
	return s.projects
}

// Settings exposes the settings loader for build time checks.
func (s *Service) Settings() *settings.Loader {
	return s.settings
}

// NewSession starts a request scoped session. An empty id is replaced by a
// random one. The session must not outlive the request behind ctx.
func (s *Service) NewSession(ctx context.Context, id string) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	logger := logging.WithRequestID(s.logger, id).WithContext(ctx)
	return &Session{
		id:       id,
		ctx:      ctx,
		projects: s.projects,
		settings: s.settings,
		logger:   logger,
		byCat:    map[string][]content.Project{},
	}
}
