package site

import (
	"context"
	"slices"
	"sync"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/settings"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Session memoizes everything read during one request. Repeated calls return
// the same computed values without touching the filesystem; a new Session
// always reads fresh content. A Session is safe for concurrent use.
//
// Slice results are copies of the cached slices, so callers may sort or
// edit them. The records inside still share their Tags and Tools slices with
// the cache and those must be treated as read-only.
type Session struct {
	id       string
	ctx      context.Context
	projects *content.Repository
	settings *settings.Loader
	logger   interfaces.Logger

	mu       sync.Mutex
	byCat    map[string][]content.Project
	all      memo[[]content.Project]
	articles memo[[]content.Article]
	site     memo[settings.Site]
	hero     memo[settings.Hero]
	nav      memo[[]settings.NavigationLink]
	skills   memo[settings.Skills]
	about    memo[settings.Page]
	profile  memo[settings.Page]
}

type memo[T any] struct {
	loaded bool
	value  T
}

func (m *memo[T]) get(load func() T) T {
	if !m.loaded {
		m.value = load()
		m.loaded = true
	}
	return m.value
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Projects returns the published projects of category in canonical order.
// Unknown categories and read failures yield an empty list.
func (s *Session) Projects(category domain.Category) []content.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projectsLocked(category))
}

func (s *Session) projectsLocked(category domain.Category) []content.Project {
	if cached, ok := s.byCat[category.String()]; ok {
		return cached
	}
	projects, err := s.projects.Projects(s.ctx, category)
	if err != nil {
		s.logger.Debug("site.projects.unavailable", "category", category.String(), "error", err)
		return []content.Project{}
	}
	s.byCat[category.String()] = projects
	return projects
}

// Articles returns the published articles, newest first.
func (s *Session) Articles() []content.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.articles.get(func() []content.Article {
		articles, err := s.projects.Articles(s.ctx)
		if err != nil {
			s.logger.Debug("site.articles.unavailable", "error", err)
			return []content.Article{}
		}
		return articles
	}))
}

func (s *Session) Site() settings.Site {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.site.get(func() settings.Site { return s.settings.Site(s.ctx) })
}

func (s *Session) Hero() settings.Hero {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero.get(func() settings.Hero { return s.settings.Hero(s.ctx) })
}

func (s *Session) Navigation() []settings.NavigationLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.nav.get(func() []settings.NavigationLink { return s.settings.Navigation(s.ctx) }))
}

func (s *Session) Skills() settings.Skills {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skills.get(func() settings.Skills { return s.settings.Skills(s.ctx) })
}

func (s *Session) About() settings.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.about.get(func() settings.Page { return s.settings.About(s.ctx) })
}

func (s *Session) Profile() settings.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.get(func() settings.Page { return s.settings.Profile(s.ctx) })
}

type sessionKey struct{}

// WithSession stores session in ctx.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	session, ok := ctx.Value(sessionKey{}).(*Session)
	return session, ok && session != nil
}
