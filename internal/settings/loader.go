package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Dir is the settings directory relative to the content root.
const Dir = "settings"

const (
	FileGeneral    = "general.json"
	FileHero       = "hero.json"
	FileNavigation = "navigation.json"
	FileSkills     = "skills.json"
	FileAbout      = "about.md"
	FileProfile    = "profile.md"
)

var errSettingsMissing = errors.New("settings: file not found")

// Loader reads the singleton settings documents. Every method returns a
// usable value: missing files yield the documented defaults, unusable files
// yield the same defaults and a warning.
type Loader struct {
	files  *markdown.Loader
	logger interfaces.Logger
}

// NewLoader returns a Loader reading from the content root filesystem.
func NewLoader(filesystem fs.FS, logger interfaces.Logger) *Loader {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{
		files:  markdown.NewLoader(filesystem, markdown.LoaderConfig{}),
		logger: logger,
	}
}

type siteDocument struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	Role        *string `json:"role"`
	Email       *string `json:"email"`
	LinkedIn    *string `json:"linkedin"`
	GitHub      *string `json:"github"`
	Site        *struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	} `json:"site"`
	Personal *struct {
		Author *string `json:"author"`
		Role   *string `json:"role"`
	} `json:"personal"`
	Contact *struct {
		Email    *string `json:"email"`
		LinkedIn *string `json:"linkedin"`
		GitHub   *string `json:"github"`
	} `json:"contact"`
}

// Site resolves each field from the nested groups first, the flat keys
// second and the defaults last.
func (l *Loader) Site(ctx context.Context) Site {
	var doc siteDocument
	if !l.loadJSON(ctx, FileGeneral, validation.SchemaSite, &doc) {
		return DefaultSite()
	}

	var nestedTitle, nestedDescription, nestedAuthor, nestedRole *string
	var nestedEmail, nestedLinkedIn, nestedGitHub *string
	if doc.Site != nil {
		nestedTitle, nestedDescription = doc.Site.Title, doc.Site.Description
	}
	if doc.Personal != nil {
		nestedAuthor, nestedRole = doc.Personal.Author, doc.Personal.Role
	}
	if doc.Contact != nil {
		nestedEmail, nestedLinkedIn, nestedGitHub = doc.Contact.Email, doc.Contact.LinkedIn, doc.Contact.GitHub
	}

	return Site{
		Title:       firstNonEmpty(defaultSiteTitle, nestedTitle, doc.Title),
		Description: firstNonEmpty(defaultSiteDescription, nestedDescription, doc.Description),
		Author:      firstNonEmpty(defaultSiteAuthor, nestedAuthor, doc.Author),
		Role:        firstNonEmpty(defaultSiteRole, nestedRole, doc.Role),
		Email:       firstNonEmpty("", nestedEmail, doc.Email),
		LinkedIn:    firstNonEmpty("", nestedLinkedIn, doc.LinkedIn),
		GitHub:      firstNonEmpty("", nestedGitHub, doc.GitHub),
	}
}

type heroDocument struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	Statement *string `json:"statement"`
	Hero      *struct {
		Title     *string `json:"title"`
		Subtitle  *string `json:"subtitle"`
		Statement *string `json:"statement"`
	} `json:"hero"`
	Stats []HeroStat `json:"stats"`
}

// Hero reads hero.json, accepting both the nested "hero" group and flat keys.
func (l *Loader) Hero(ctx context.Context) Hero {
	var doc heroDocument
	if !l.loadJSON(ctx, FileHero, validation.SchemaHero, &doc) {
		return DefaultHero()
	}

	defaults := DefaultHero()
	var nestedTitle, nestedSubtitle, nestedStatement *string
	if doc.Hero != nil {
		nestedTitle, nestedSubtitle, nestedStatement = doc.Hero.Title, doc.Hero.Subtitle, doc.Hero.Statement
	}
	hero := Hero{
		Hero: HeroCopy{
			Title:     firstNonEmpty(defaults.Hero.Title, nestedTitle, doc.Title),
			Subtitle:  firstNonEmpty(defaults.Hero.Subtitle, nestedSubtitle, doc.Subtitle),
			Statement: firstNonEmpty(defaults.Hero.Statement, nestedStatement, doc.Statement),
		},
		Stats: defaults.Stats,
	}
	if doc.Stats != nil {
		hero.Stats = doc.Stats
	}
	return hero
}

// Navigation returns the links ordered by ascending order. Links sharing an
// order keep their file order.
func (l *Loader) Navigation(ctx context.Context) []NavigationLink {
	var doc struct {
		Links []NavigationLink `json:"links"`
	}
	if !l.loadJSON(ctx, FileNavigation, validation.SchemaNavigation, &doc) {
		return DefaultNavigation()
	}

	links := append([]NavigationLink{}, doc.Links...)
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Order < links[j].Order
	})
	return links
}

func (l *Loader) Skills(ctx context.Context) Skills {
	var doc Skills
	if !l.loadJSON(ctx, FileSkills, validation.SchemaSkills, &doc) {
		return DefaultSkills()
	}
	if doc.Primary == nil {
		doc.Primary = []Skill{}
	}
	if doc.Supporting == nil {
		doc.Supporting = []Skill{}
	}
	if doc.Familiar == nil {
		doc.Familiar = []FamiliarSkill{}
	}
	return doc
}

func (l *Loader) About(ctx context.Context) Page {
	return l.loadPage(ctx, FileAbout, DefaultAbout())
}

func (l *Loader) Profile(ctx context.Context) Page {
	return l.loadPage(ctx, FileProfile, DefaultProfile())
}

// loadJSON decodes name into target after validating it against schema. It
// reports false when the caller should use its defaults.
func (l *Loader) loadJSON(ctx context.Context, name, schema string, target any) bool {
	if err := l.decodeJSON(ctx, name, schema, target); err != nil {
		l.fallback(ctx, name, err)
		return false
	}
	return true
}

func (l *Loader) decodeJSON(ctx context.Context, name, schema string, target any) error {
	data, err := l.read(ctx, name)
	if err != nil {
		return err
	}

	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := validation.Validate(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func (l *Loader) loadPage(ctx context.Context, name string, defaults Page) Page {
	page, err := l.decodePage(ctx, name, defaults)
	if err != nil {
		l.fallback(ctx, name, err)
		return defaults
	}
	return page
}

func (l *Loader) decodePage(ctx context.Context, name string, defaults Page) (Page, error) {
	data, err := l.read(ctx, name)
	if err != nil {
		return defaults, err
	}

	meta, body, err := markdown.ParseFrontMatter(data)
	if err != nil {
		return defaults, err
	}
	if err := validation.Validate(validation.SchemaPage, meta.Map()); err != nil {
		return defaults, err
	}

	page := Page{Title: defaults.Title, Content: string(body)}
	if value, ok := meta.Get("title"); ok {
		if title, ok := value.(string); ok && strings.TrimSpace(title) != "" {
			page.Title = title
		}
	}
	return page, nil
}

// Check decodes every settings document that exists and returns one
// *CheckError per unusable file. Missing files are not problems.
func (l *Loader) Check(ctx context.Context) ([]error, error) {
	checks := []struct {
		name   string
		schema string
	}{
		{FileGeneral, validation.SchemaSite},
		{FileHero, validation.SchemaHero},
		{FileNavigation, validation.SchemaNavigation},
		{FileSkills, validation.SchemaSkills},
	}

	var problems []error
	record := func(name string, err error) {
		if err == nil || errors.Is(err, errSettingsMissing) {
			return
		}
		problems = append(problems, &CheckError{File: path.Join(Dir, name), Err: err})
	}
	for _, check := range checks {
		var target any
		record(check.name, l.decodeJSON(ctx, check.name, check.schema, &target))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	for _, name := range []string{FileAbout, FileProfile} {
		_, err := l.decodePage(ctx, name, Page{})
		record(name, err)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return problems, nil
}

// CheckError reports a settings document that would be replaced by its
// defaults at runtime.
type CheckError struct {
	File string
	Err  error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("settings: %s: %v", e.File, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	filePath := path.Join(Dir, name)
	if !l.files.Exists(filePath) {
		return nil, errSettingsMissing
	}
	doc, err := l.files.LoadFile(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return doc.Source, nil
}

// fallback logs why a document was replaced by its defaults. Missing files
// and cancelled requests are expected and stay quiet.
func (l *Loader) fallback(ctx context.Context, name string, err error) {
	if errors.Is(err, errSettingsMissing) || ctx.Err() != nil {
		return
	}
	logging.WithContentContext(l.logger, path.Join(Dir, name), "").
		Warn("settings.load.fallback", "file", name, "error", err)
}

func firstNonEmpty(fallback string, candidates ...*string) string {
	for _, candidate := range candidates {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return fallback
}
