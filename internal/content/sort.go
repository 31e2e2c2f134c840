package content

import "sort"

// SortCanonical orders projects of one category by ascending order, newest
// first on ties. The sort is stable so equal keys keep file name order.
func SortCanonical(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Order != projects[j].Order {
			return projects[i].Order < projects[j].Order
		}
		return projects[i].Date.After(projects[j].Date)
	})
}

// SortByDate orders projects newest first. The order key is ignored because
// it only has meaning inside one category.
func SortByDate(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Date.After(projects[j].Date)
	})
}

// SortArticles orders articles newest first.
func SortArticles(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})
}
