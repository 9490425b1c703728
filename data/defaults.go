// Package data holds the bundled default content used when nothing has been
// stored yet. Seeds are JSON with comments.
package data

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"github.com/tommytoyou/bost-lawn-care/models"
)

//go:embed *.jsonc
var seeds embed.FS

// Defaults is the full bundled dataset. Each call to LoadDefaults returns
// fresh values, so callers may modify them.
type Defaults struct {
	Services     []models.Service
	Testimonials []models.Testimonial
	Gallery      []models.GalleryImage
	SiteContent  models.SiteContent
	Invoices     []models.Invoice
}

func LoadDefaults() (*Defaults, error) {
	d := &Defaults{}
	files := []struct {
		name string
		into any
	}{
		{"services.jsonc", &d.Services},
		{"testimonials.jsonc", &d.Testimonials},
		{"gallery.jsonc", &d.Gallery},
		{"site_content.jsonc", &d.SiteContent},
		{"invoices.jsonc", &d.Invoices},
	}
	for _, f := range files {
		if err := decode(f.name, f.into); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decode(name string, into any) error {
	raw, err := seeds.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(raw), into); err != nil {
		return fmt.Errorf("parse seed %s: %w", name, err)
	}
	return nil
}
