package models

type BusinessInfo struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Hours        string `json:"hours"`
	ServiceAreas string `json:"serviceAreas"`
}

type HomepageContent struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

type CompanyValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AboutContent struct {
	// Paragraphs are Markdown.
	Paragraphs  []string       `json:"paragraphs"`
	Values      []CompanyValue `json:"values"`
	ServiceArea []string       `json:"serviceArea"`
}

// SiteContent is the editable text of the site, stored as one object.
type SiteContent struct {
	Business BusinessInfo    `json:"business"`
	Homepage HomepageContent `json:"homepage"`
	About    AboutContent    `json:"about"`
}
