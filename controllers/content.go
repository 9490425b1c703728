package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

type TestimonialInput struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rating   *int    `json:"rating"`
	Quote    *string `json:"quote"`
}

func (in TestimonialInput) toService() services.TestimonialInput {
	return services.TestimonialInput{Name: in.Name, Location: in.Location, Rating: in.Rating, Quote: in.Quote}
}

type GalleryInput struct {
	ImageURL       string `json:"imageUrl"`
	Category       string `json:"category"`
	Caption        string `json:"caption"`
	BeforeImageURL string `json:"beforeImageUrl"`
}

type BusinessInput struct {
	Name         *string `json:"name"`
	Tagline      *string `json:"tagline"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	Hours        *string `json:"hours"`
	ServiceAreas *string `json:"serviceAreas"`
}

type SiteContentInput struct {
	Headline        *string        `json:"headline"`
	Subheadline     *string        `json:"subheadline"`
	AboutParagraphs []string       `json:"aboutParagraphs"`
	Business        *BusinessInput `json:"business"`
}

type AboutValueView struct {
	models.CompanyValue
	Icon string `json:"icon"`
}

// AboutView is the about page with its Markdown paragraphs rendered.
type AboutView struct {
	Paragraphs  []string         `json:"paragraphs"`
	Values      []AboutValueView `json:"values"`
	ServiceArea []string         `json:"serviceArea"`
}

// ContentHandler serves the public site content and the editor's changes
// to it.
type ContentHandler struct {
	content *services.ContentStore
	since   time.Time
	now     func() time.Time
}

// NewContentHandler starts the featured testimonial rotation at since.
func NewContentHandler(content *services.ContentStore, since time.Time, now func() time.Time) *ContentHandler {
	if now == nil {
		now = time.Now
	}
	return &ContentHandler{content: content, since: since, now: now}
}

func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.Testimonials(c.Request.Context()))
}

// GetFeaturedTestimonial returns the testimonial currently in rotation on
// the home page.
func (h *ContentHandler) GetFeaturedTestimonial(c *gin.Context) {
	t, index, ok := h.content.FeaturedTestimonial(c.Request.Context(), h.since, h.now())
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "No testimonials yet")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"testimonial":     t,
		"index":           index,
		"rotationSeconds": int(services.TestimonialRotation / time.Second),
	})
}

// GalleryImageView flags before/after pairs so the client can render a
// comparison slider.
type GalleryImageView struct {
	models.GalleryImage
	Transformation bool `json:"transformation"`
}

// GetGallery lists gallery images, optionally filtered by ?category=.
func (h *ContentHandler) GetGallery(c *gin.Context) {
	category := c.Query("category")
	if category != "" && category != models.CategoryAll && !models.ValidCategory(category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown category")
		return
	}
	images := models.FilterGallery(h.content.Gallery(c.Request.Context()), category)
	views := make([]GalleryImageView, 0, len(images))
	for _, img := range images {
		views = append(views, GalleryImageView{GalleryImage: img, Transformation: img.IsTransformation()})
	}
	c.JSON(http.StatusOK, views)
}

func (h *ContentHandler) GetSiteContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.SiteContent(c.Request.Context()))
}

func (h *ContentHandler) GetAbout(c *gin.Context) {
	about := h.content.SiteContent(c.Request.Context()).About

	view := AboutView{
		Paragraphs:  make([]string, 0, len(about.Paragraphs)),
		Values:      make([]AboutValueView, 0, len(about.Values)),
		ServiceArea: about.ServiceArea,
	}
	for _, p := range about.Paragraphs {
		html, err := utils.RenderMarkdown(p)
		if err != nil {
			respondError(c, err)
			return
		}
		view.Paragraphs = append(view.Paragraphs, html)
	}
	for _, v := range about.Values {
		view.Values = append(view.Values, AboutValueView{CompanyValue: v, Icon: models.CompanyValueIcon(v.Title).Key()})
	}
	c.JSON(http.StatusOK, view)
}

func (h *ContentHandler) AddTestimonial(c *gin.Context) {
	var input TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	t, err := h.content.AddTestimonial(c.Request.Context(), input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var input TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	t, err := h.content.UpdateTestimonial(c.Request.Context(), id, input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.content.DeleteTestimonial(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

func (h *ContentHandler) AddGalleryImage(c *gin.Context) {
	var input GalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	img, err := h.content.AddGalleryImage(c.Request.Context(), services.GalleryInput{
		ImageURL:       input.ImageURL,
		Category:       input.Category,
		Caption:        input.Caption,
		BeforeImageURL: input.BeforeImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *ContentHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.content.DeleteGalleryImage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// UpdateSiteContent merges the posted fields into the stored site text.
func (h *ContentHandler) UpdateSiteContent(c *gin.Context) {
	var input SiteContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	edit := services.SiteContentEdit{
		Headline:        input.Headline,
		Subheadline:     input.Subheadline,
		AboutParagraphs: input.AboutParagraphs,
	}
	if b := input.Business; b != nil {
		edit.Business = &services.BusinessEdit{
			Name:         b.Name,
			Tagline:      b.Tagline,
			Phone:        b.Phone,
			Email:        b.Email,
			Address:      b.Address,
			Hours:        b.Hours,
			ServiceAreas: b.ServiceAreas,
		}
	}
	content, err := h.content.UpdateSiteContent(c.Request.Context(), edit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}
