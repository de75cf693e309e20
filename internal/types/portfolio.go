package types

// Portfolio is the static content rendered on the page.
type Portfolio struct {
	Profile  Profile      `json:"profile"`
	Projects []Project    `json:"projects"`
	Skills   Skills       `json:"skills"`
	Social   []SocialLink `json:"social"`
}

// Profile holds the hero and about section text.
type Profile struct {
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Tagline string   `json:"tagline"`
	Bio     []string `json:"bio"`
	Email   string   `json:"email,omitempty"`
}

// Project is a single entry in the project gallery.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	LiveURL     string   `json:"live_url"`
	RepoURL     string   `json:"repo_url,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// HasRepo reports whether the project links to a real repository.
func (p Project) HasRepo() bool {
	return p.RepoURL != "" && p.RepoURL != "#"
}

// Skills groups skills by area.
type Skills struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Tools    []string `json:"tools"`
}

// SkillGroup is a titled list of skills, in display order.
type SkillGroup struct {
	Title  string
	Skills []string
}

// Groups returns the skill areas in display order, skipping empty ones.
func (s Skills) Groups() []SkillGroup {
	groups := []SkillGroup{
		{Title: "Frontend", Skills: s.Frontend},
		{Title: "Backend", Skills: s.Backend},
		{Title: "Tools & Others", Skills: s.Tools},
	}

	out := make([]SkillGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Skills) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// SocialLink is an external profile link.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
