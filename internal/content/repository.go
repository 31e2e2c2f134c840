package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ArticlesDir is the directory, relative to the content root, holding articles.
const ArticlesDir = "articles"

// RepositoryOption customises a Repository.
type RepositoryOption func(*Repository)

// WithLogger routes parse warnings to logger.
func WithLogger(logger interfaces.Logger) RepositoryOption {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the clock used for documents without a date.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// Repository reads projects and articles from a content tree. It holds no
// cache: every call reads the filesystem again.
type Repository struct {
	loader *markdown.Loader
	logger interfaces.Logger
	now    func() time.Time
}

// NewRepository returns a repository rooted at filesystem.
func NewRepository(filesystem fs.FS, opts ...RepositoryOption) *Repository {
	repo := &Repository{
		loader: markdown.NewLoader(filesystem, markdown.LoaderConfig{Extension: markdownExtension}),
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}
	return repo
}

// Projects returns the published projects of category in canonical order.
// Missing, unreadable or malformed content degrades to fewer results and is
// logged; only context cancellation and unknown categories are errors.
func (r *Repository) Projects(ctx context.Context, category domain.Category) ([]Project, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	logger := logging.WithContentContext(r.logger, category.String(), category.String())
	published, problems, err := r.scanProjects(ctx, category, Project.published)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Error("content.projects.read_failed", "error", err)
		return []Project{}, nil
	}
	logProblems(logger, problems)

	SortCanonical(published)
	logger.Debug("content.projects.loaded", "count", len(published))
	return published, nil
}

// Articles returns the published articles, newest first, with the same
// degradation rules as Projects.
func (r *Repository) Articles(ctx context.Context) ([]Article, error) {
	logger := logging.WithContentContext(r.logger, ArticlesDir, "")
	published, problems, err := r.scanArticles(ctx, Article.published)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Error("content.articles.read_failed", "error", err)
		return []Article{}, nil
	}
	logProblems(logger, problems)

	SortArticles(published)
	return published, nil
}

// AuditReport summarises a full read of the content tree, drafts included.
type AuditReport struct {
	Projects  map[domain.Category]int
	Articles  int
	Published int
	Problems  []error
}

// Err returns nil when the audit found nothing wrong, and otherwise a
// validation-category error joining every problem.
func (a *AuditReport) Err() error {
	if a == nil || len(a.Problems) == 0 {
		return nil
	}
	wrapped := goerrors.Wrap(errors.Join(a.Problems...), goerrors.CategoryValidation,
		fmt.Sprintf("content audit found %d problem(s)", len(a.Problems))).
		WithTextCode("CONTENT_INVALID")
	wrapped.ValidationErrors = a.fieldErrors()
	return wrapped
}

func (a *AuditReport) fieldErrors() goerrors.ValidationErrors {
	var out goerrors.ValidationErrors
	for _, problem := range a.Problems {
		var parseErr *ParseError
		var dupErr *DuplicateSlugError
		switch {
		case errors.As(problem, &parseErr):
			if parseErr.Cause != nil {
				out = append(out, goerrors.FieldError{Field: parseErr.File, Message: parseErr.Cause.Error()})
			}
			for _, issue := range parseErr.Issues {
				out = append(out, goerrors.FieldError{Field: parseErr.File + issue.Location, Message: issue.Message})
			}
		case errors.As(problem, &dupErr):
			out = append(out, goerrors.FieldError{Field: dupErr.Dir + "/" + dupErr.Dropped, Message: dupErr.Error(), Value: dupErr.Slug})
		default:
			out = append(out, goerrors.FieldError{Field: "content", Message: problem.Error()})
		}
	}
	return out
}

// Audit reads every category and the articles directory and collects every
// problem instead of degrading. Read failures are reported as problems too.
func (r *Repository) Audit(ctx context.Context) (*AuditReport, error) {
	report := &AuditReport{Projects: map[domain.Category]int{}}
	for _, category := range domain.Categories() {
		projects, problems, err := r.scanProjects(ctx, category, nil)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			report.Problems = append(report.Problems, err)
			continue
		}
		report.Projects[category] = len(projects)
		report.Problems = append(report.Problems, problems...)
		for _, project := range projects {
			if project.Status.IsPublished() {
				report.Published++
			}
		}
	}

	articles, problems, err := r.scanArticles(ctx, nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		report.Problems = append(report.Problems, err)
		return report, nil
	}
	report.Articles = len(articles)
	report.Problems = append(report.Problems, problems...)
	for _, article := range articles {
		if article.Status.IsPublished() {
			report.Published++
		}
	}
	return report, nil
}

func (r *Repository) scanProjects(ctx context.Context, category domain.Category, keep func(Project) bool) ([]Project, []error, error) {
	return scanDirectory(ctx, r.loader, category.String(),
		func(doc *markdown.DocumentResult) (Project, error) {
			return ParseProject(doc.Source, doc.Name, category, WithNow(r.now))
		},
		func(p Project) string { return p.Slug },
		keep,
	)
}

func (r *Repository) scanArticles(ctx context.Context, keep func(Article) bool) ([]Article, []error, error) {
	return scanDirectory(ctx, r.loader, ArticlesDir,
		func(doc *markdown.DocumentResult) (Article, error) {
			return ParseArticle(doc.Source, doc.Name, WithNow(r.now))
		},
		func(a Article) string { return a.Slug },
		keep,
	)
}

// scanDirectory parses every document in dir in file name order. Records
// rejected by keep are dropped before slugs are compared, so only kept
// records can shadow each other. When two kept files share a slug the first
// one wins and the other is reported. A nil keep retains every record.
func scanDirectory[T any](
	ctx context.Context,
	loader *markdown.Loader,
	dir string,
	parse func(*markdown.DocumentResult) (T, error),
	slugOf func(T) string,
	keep func(T) bool,
) ([]T, []error, error) {
	docs, err := loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, nil, err
	}

	var problems []error
	seen := make(map[string]string, len(docs))
	records := make([]T, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		record, parseErr := parse(doc)
		if parseErr != nil {
			var typed *ParseError
			if errors.As(parseErr, &typed) {
				typed.File = doc.Path
			}
			problems = append(problems, parseErr)
		}
		if keep != nil && !keep(record) {
			continue
		}
		slug := slugOf(record)
		if kept, exists := seen[slug]; exists {
			problems = append(problems, &DuplicateSlugError{Dir: dir, Slug: slug, Kept: kept, Dropped: doc.Name})
			continue
		}
		seen[slug] = doc.Name
		records = append(records, record)
	}
	return records, problems, nil
}

func logProblems(logger interfaces.Logger, problems []error) {
	for _, problem := range problems {
		var parseErr *ParseError
		var dupErr *DuplicateSlugError
		switch {
		case errors.As(problem, &parseErr):
			logger.Warn("content.parse.issues", "file", parseErr.File, "error", parseErr.Error())
		case errors.As(problem, &dupErr):
			logger.Warn("content.slug.duplicate", "slug", dupErr.Slug, "kept", dupErr.Kept, "dropped", dupErr.Dropped)
		default:
			logger.Warn("content.problem", "error", problem)
		}
	}
}
