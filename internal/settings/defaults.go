package settings

const (
	defaultSiteTitle       = "Analytics Platform"
	defaultSiteDescription = "Enterprise analytics knowledge platform"
	defaultSiteAuthor      = "Data Analyst"
	defaultSiteRole        = "Senior Analytics Consultant"
)

// DefaultSite is returned when general.json is missing or unusable.
func DefaultSite() Site {
	return Site{
		Title:       defaultSiteTitle,
		Description: defaultSiteDescription,
		Author:      defaultSiteAuthor,
		Role:        defaultSiteRole,
	}
}

// DefaultHero is returned when hero.json is missing or unusable.
func DefaultHero() Hero {
	return Hero{
		Hero: HeroCopy{
			Title:     "Analytics Platform",
			Subtitle:  "Enterprise Analytics Knowledge System",
			Statement: "Documenting analytical methodologies and data-driven insights.",
		},
		Stats: []HeroStat{
			{Value: "5+", Label: "Years in Analytics"},
			{Value: "50+", Label: "Case Studies"},
			{Value: "20+", Label: "Enterprise Clients"},
		},
	}
}

func DefaultNavigation() []NavigationLink {
	return []NavigationLink{
		{Label: "Home", Href: "/", Order: 1},
		{Label: "Power BI", Href: "/powerbi", Order: 2},
		{Label: "Tableau", Href: "/tableau", Order: 3},
		{Label: "Excel", Href: "/excel", Order: 4},
	}
}

func DefaultSkills() Skills {
	return Skills{
		Primary:    []Skill{},
		Supporting: []Skill{},
		Familiar:   []FamiliarSkill{},
	}
}

func DefaultAbout() Page {
	return Page{Title: "About"}
}

func DefaultProfile() Page {
	return Page{Title: "Professional Profile"}
}
