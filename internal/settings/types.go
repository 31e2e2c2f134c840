package settings

// Site carries the site wide metadata shown in headers and footers.
type Site struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	GitHub      string `json:"github,omitempty"`
}

// HeroCopy is the headline block of the home page.
type HeroCopy struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Statement string `json:"statement"`
}

// HeroStat is one counter shown under the hero copy.
type HeroStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Hero struct {
	Hero  HeroCopy   `json:"hero"`
	Stats []HeroStat `json:"stats"`
}

type NavigationLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Order int    `json:"order"`
}

// Skill is an entry of the primary or supporting skill lists.
type Skill struct {
	Name     string `json:"name"`
	Context  string `json:"context"`
	Problems string `json:"problems,omitempty"`
}

// FamiliarSkill is a lighter entry without the problems narrative.
type FamiliarSkill struct {
	Name    string `json:"name"`
	Context string `json:"context"`
}

type Skills struct {
	Primary    []Skill         `json:"primary"`
	Supporting []Skill         `json:"supporting"`
	Familiar   []FamiliarSkill `json:"familiar"`
}

// Page is a narrative settings document such as about.md.
type Page struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
