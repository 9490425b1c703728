package models

const (
	CategoryMowing          = "Mowing"
	CategoryCleanups        = "Cleanups"
	CategoryTransformations = "Transformations"

	// CategoryAll is the gallery filter that matches every image. It is never
	// stored on an image.
	CategoryAll = "All"
)

// GalleryCategories lists the categories an image may carry, in display order.
var GalleryCategories = []string{CategoryMowing, CategoryCleanups, CategoryTransformations}

type GalleryImage struct {
	ID             int    `json:"id"`
	ImageURL       string `json:"imageUrl"`
	Category       string `json:"category"`
	Caption        string `json:"caption"`
	BeforeImageURL string `json:"beforeImageUrl,omitempty"`
}

// IsTransformation reports whether the image is a before/after pair.
func (g GalleryImage) IsTransformation() bool {
	return g.BeforeImageURL != ""
}

func ValidCategory(c string) bool {
	for _, known := range GalleryCategories {
		if c == known {
			return true
		}
	}
	return false
}

func NextGalleryID(list []GalleryImage) int {
	max := 0
	for _, g := range list {
		if g.ID > max {
			max = g.ID
		}
	}
	return max + 1
}

// FilterGallery returns the images in category, or every image when category
// is empty or "All".
func FilterGallery(list []GalleryImage, category string) []GalleryImage {
	if category == "" || category == CategoryAll {
		return list
	}
	out := make([]GalleryImage, 0, len(list))
	for _, g := range list {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}
