package site

import (
	"sort"

	"github.com/goliatone/go-portfolio/internal/content"
)

const (
	sharedTagWeight    = 3
	sharedToolWeight   = 2
	sameCategoryWeight = 1
)

type scoredProject struct {
	project content.Project
	score   int
}

// RelatedProjects ranks the other published projects by similarity to
// project: shared tags weigh most, then shared tools, then the category.
// Projects with no similarity are left out. At most n are returned.
func (s *Session) RelatedProjects(project content.Project, n int) []content.Project {
	if n <= 0 {
		n = DefaultRelatedCount
	}

	var candidates []scoredProject
	for _, other := range s.AllProjects() {
		if other.Category == project.Category && other.Slug == project.Slug {
			continue
		}
		score := RelatedScore(project, other)
		if score == 0 {
			continue
		}
		candidates = append(candidates, scoredProject{project: other, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].project.Date.After(candidates[j].project.Date)
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	related := make([]content.Project, 0, len(candidates))
	for _, candidate := range candidates {
		related = append(related, candidate.project)
	}
	return related
}

// RelatedScore computes the similarity of two projects.
func RelatedScore(a, b content.Project) int {
	score := sharedTagWeight*countShared(a.Tags, b.Tags) + sharedToolWeight*countShared(a.Tools, b.Tools)
	if a.Category == b.Category {
		score += sameCategoryWeight
	}
	return score
}

func countShared(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(b))
	for _, value := range b {
		set[value] = struct{}{}
	}
	shared := 0
	counted := map[string]struct{}{}
	for _, value := range a {
		if _, ok := set[value]; !ok {
			continue
		}
		if _, dup := counted[value]; dup {
			continue
		}
		counted[value] = struct{}{}
		shared++
	}
	return shared
}
