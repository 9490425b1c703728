package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tommytoyou/bost-lawn-care/models"
)

// ServiceEdit changes a service's display text. Nil fields are left alone.
type ServiceEdit struct {
	Name        *string
	Description *string
}

// UpdateService edits a service in place. Services are never added or
// removed by the editor.
func (s *ContentStore) UpdateService(ctx context.Context, id int, edit ServiceEdit) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load(ctx, s, KeyServices, slices.Clone(s.defaults.Services))
	if err != nil {
		return models.Service{}, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if edit.Name != nil {
			if strings.TrimSpace(*edit.Name) == "" {
				errs := ValidationErrors{}
				errs.add("name", MissingField, "Service name is required")
				return models.Service{}, errs
			}
			list[i].Name = *edit.Name
		}
		if edit.Description != nil {
			list[i].Description = *edit.Description
		}
		if err := s.SetServices(ctx, list); err != nil {
			return models.Service{}, err
		}
		return list[i], nil
	}
	return models.Service{}, fmt.Errorf("service %d: %w", id, ErrNotFound)
}

// TestimonialInput is the editable part of a testimonial. Nil fields are
// left alone on update; on add a nil rating defaults to 5.
type TestimonialInput struct {
	Name     *string
	Location *string
	Rating   *int
	Quote    *string
}

func (in TestimonialInput) validate() error {
	errs := ValidationErrors{}
	if in.Rating != nil && !models.ValidRating(*in.Rating) {
		errs.add("rating", InvalidFormat, fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs.add("name", MissingField, "Name is required")
	}
	if in.Quote != nil && strings.TrimSpace(*in.Quote) == "" {
		errs.add("quote", MissingField, "Quote is required")
	}
	return errs.orNil()
}

func (in TestimonialInput) apply(t *models.Testimonial) {
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Location != nil {
		t.Location = *in.Location
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	if in.Quote != nil {
		t.Quote = *in.Quote
	}
}

// AddTestimonial appends a testimonial with id = max existing id + 1.
func (s *ContentStore) AddTestimonial(ctx context.Context, in TestimonialInput) (models.Testimonial, error) {
	if in.Name == nil || in.Quote == nil {
		errs := ValidationErrors{}
		if in.Name == nil {
			errs.add("name", MissingField, "Name is required")
		}
		if in.Quote == nil {
			errs.add("quote", MissingField, "Quote is required")
		}
		return models.Testimonial{}, errs
	}
	if err := in.validate(); err != nil {
		return models.Testimonial{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load(ctx, s, KeyTestimonials, slices.Clone(s.defaults.Testimonials))
	if err != nil {
		return models.Testimonial{}, err
	}
	t := models.Testimonial{ID: models.NextTestimonialID(list), Rating: models.MaxRating}
	in.apply(&t)
	if err := s.SetTestimonials(ctx, append(list, t)); err != nil {
		return models.Testimonial{}, err
	}
	return t, nil
}

func (s *ContentStore) UpdateTestimonial(ctx context.Context, id int, in TestimonialInput) (models.Testimonial, error) {
	if err := in.validate(); err != nil {
		return models.Testimonial{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load(ctx, s, KeyTestimonials, slices.Clone(s.defaults.Testimonials))
	if err != nil {
		return models.Testimonial{}, err
	}
	for i := range list {
		if list[i].ID == id {
			in.apply(&list[i])
			if err := s.SetTestimonials(ctx, list); err != nil {
				return models.Testimonial{}, err
			}
			return list[i], nil
		}
	}
	return models.Testimonial{}, fmt.Errorf("testimonial %d: %w", id, ErrNotFound)
}

// DeleteTestimonial removes exactly the testimonial with id; the others keep
// their ids.
func (s *ContentStore) DeleteTestimonial(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load(ctx, s, KeyTestimonials, slices.Clone(s.defaults.Testimonials))
	if err != nil {
		return err
	}
	kept := make([]models.Testimonial, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("testimonial %d: %w", id, ErrNotFound)
	}
	return s.SetTestimonials(ctx, kept)
}

type GalleryInput struct {
	ImageURL       string
	Category       string
	Caption        string
	BeforeImageURL string
}

// AddGalleryImage appends an image; the category defaults to Mowing.
func (s *ContentStore) AddGalleryImage(ctx context.Context, in GalleryInput) (models.GalleryImage, error) {
	errs := ValidationErrors{}
	if strings.TrimSpace(in.ImageURL) == "" {
		errs.add("imageUrl", MissingField, "Image URL is required")
	}
	if in.Category == "" {
		in.Category = models.CategoryMowing
	}
	if !models.ValidCategory(in.Category) {
		errs.add("category", InvalidFormat, "Category must be one of "+strings.Join(models.GalleryCategories, ", "))
	}
	if err := errs.orNil(); err != nil {
		return models.GalleryImage{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load(ctx, s, KeyGallery, slices.Clone(s.defaults.Gallery))
	if err != nil {
		return models.GalleryImage{}, err
	}
	img := models.GalleryImage{
		ID:             models.NextGalleryID(list),
		ImageURL:       strings.TrimSpace(in.ImageURL),
		Category:       in.Category,
		Caption:        in.Caption,
		BeforeImageURL: strings.TrimSpace(in.BeforeImageURL),
	}
	if err := s.SetGallery(ctx, append(list, img)); err != nil {
		return models.GalleryImage{}, err
	}
	return img, nil
}

func (s *ContentStore) DeleteGalleryImage(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load(ctx, s, KeyGallery, slices.Clone(s.defaults.Gallery))
	if err != nil {
		return err
	}
	kept := make([]models.GalleryImage, 0, len(list))
	for _, g := range list {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("gallery image %d: %w", id, ErrNotFound)
	}
	return s.SetGallery(ctx, kept)
}

// SiteContentEdit is merged into the stored site content. Nil fields and
// nil slices are left alone.
type SiteContentEdit struct {
	Headline        *string
	Subheadline     *string
	AboutParagraphs []string
	Business        *BusinessEdit
}

type BusinessEdit struct {
	Name         *string
	Tagline      *string
	Phone        *string
	Email        *string
	Address      *string
	Hours        *string
	ServiceAreas *string
}

func (s *ContentStore) UpdateSiteContent(ctx context.Context, edit SiteContentEdit) (models.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := load(ctx, s, KeySiteContent, cloneSiteContent(s.defaults.SiteContent))
	if err != nil {
		return models.SiteContent{}, err
	}
	if edit.Headline != nil {
		content.Homepage.Headline = *edit.Headline
	}
	if edit.Subheadline != nil {
		content.Homepage.Subheadline = *edit.Subheadline
	}
	if edit.AboutParagraphs != nil {
		content.About.Paragraphs = edit.AboutParagraphs
	}
	if b := edit.Business; b != nil {
		mergeString(&content.Business.Name, b.Name)
		mergeString(&content.Business.Tagline, b.Tagline)
		mergeString(&content.Business.Phone, b.Phone)
		mergeString(&content.Business.Email, b.Email)
		mergeString(&content.Business.Address, b.Address)
		mergeString(&content.Business.Hours, b.Hours)
		mergeString(&content.Business.ServiceAreas, b.ServiceAreas)
	}
	if err := s.SetSiteContent(ctx, content); err != nil {
		return models.SiteContent{}, err
	}
	return content, nil
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
