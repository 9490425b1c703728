package data

import (
	"testing"

	"github.com/tommytoyou/bost-lawn-care/models"
)

func TestLoadDefaults(t *testing.T) {
	d, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if len(d.Services) != 6 {
		t.Fatalf("got %d services, want 6", len(d.Services))
	}
	if d.SiteContent.Business.Name == "" || len(d.SiteContent.About.Paragraphs) == 0 {
		t.Fatalf("site content not populated: %+v", d.SiteContent)
	}
	if len(d.Invoices) != 3 {
		t.Fatalf("got %d invoices, want 3", len(d.Invoices))
	}
}

func TestDefaultsHaveUniqueIDsAndValidValues(t *testing.T) {
	d, err := LoadDefaults()
	if err != nil {
		t.Fatal(err)
	}
	seen := map[int]bool{}
	for _, s := range d.Services {
		if seen[s.ID] {
			t.Fatalf("duplicate service id %d", s.ID)
		}
		seen[s.ID] = true
		if models.ServiceIcon(s.Icon).Key() != s.Icon {
			t.Fatalf("service %d has unknown icon %q", s.ID, s.Icon)
		}
	}
	for _, tm := range d.Testimonials {
		if !models.ValidRating(tm.Rating) {
			t.Fatalf("testimonial %d rating %d out of range", tm.ID, tm.Rating)
		}
	}
	for _, g := range d.Gallery {
		if !models.ValidCategory(g.Category) {
			t.Fatalf("gallery image %d has category %q", g.ID, g.Category)
		}
	}
}

func TestLoadDefaultsReturnsFreshValues(t *testing.T) {
	a, _ := LoadDefaults()
	b, _ := LoadDefaults()
	a.Services[0].Name = "changed"
	if b.Services[0].Name == "changed" {
		t.Fatal("defaults share backing storage between calls")
	}
}
