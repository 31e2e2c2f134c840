package content

import "github.com/goliatone/go-portfolio/internal/domain"

// CategoryInfo describes how a category is presented.
type CategoryInfo struct {
	ID          domain.Category `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Href        string          `json:"href"`
}

var categoryInfo = map[domain.Category]CategoryInfo{
	domain.CategoryPowerBI: {
		ID:          domain.CategoryPowerBI,
		Name:        "Power BI",
		Description: "Interactive dashboards and business intelligence solutions",
		Icon:        "📊",
		Color:       "from-amber-500 to-orange-600",
		Href:        "/powerbi",
	},
	domain.CategoryTableau: {
		ID:          domain.CategoryTableau,
		Name:        "Tableau",
		Description: "Data visualizations and analytical dashboards",
		Icon:        "📈",
		Color:       "from-blue-500 to-indigo-600",
		Href:        "/tableau",
	},
	domain.CategoryExcel: {
		ID:          domain.CategoryExcel,
		Name:        "Excel",
		Description: "Financial models, templates, and automation",
		Icon:        "📑",
		Color:       "from-emerald-500 to-teal-600",
		Href:        "/excel",
	},
}

// Categories returns the descriptor of every category in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categoryInfo))
	for _, category := range domain.Categories() {
		out = append(out, categoryInfo[category])
	}
	return out
}

// CategoryInfoFor returns the descriptor of category.
func CategoryInfoFor(category domain.Category) (CategoryInfo, bool) {
	info, ok := categoryInfo[category]
	return info, ok
}
