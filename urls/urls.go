// Package urls builds the page and image URLs the listing frontend links
// to. Everything here is pure string templating with no I/O.
package urls

import (
	"fmt"
	"strconv"
	"strings"

	"restaurant-listings-api/models"
)

// widths the image pipeline emits for responsive variants
var srcSetWidths = []int{320, 480, 640, 800}

// ForRestaurant returns the site-relative detail page URL for a record.
func ForRestaurant(r *models.Restaurant) string {
	return fmt.Sprintf("./restaurant.html?id=%d", r.ID)
}

// ImageFor returns the full-size image URL. Records without a photograph
// fall back to their id as the base image name.
func ImageFor(r *models.Restaurant) string {
	return fmt.Sprintf("/img/%s.jpg", imageBase(r))
}

// ResponsiveImageFor returns the image URL for a specific rendered width.
func ResponsiveImageFor(r *models.Restaurant, width int) string {
	return fmt.Sprintf("/img/%s-%dw.jpg", imageBase(r), width)
}

// SrcSet returns the srcset attribute value covering the standard widths.
func SrcSet(r *models.Restaurant) string {
	parts := make([]string, 0, len(srcSetWidths))
	for _, w := range srcSetWidths {
		parts = append(parts, fmt.Sprintf("%s %dw", ResponsiveImageFor(r, w), w))
	}
	return strings.Join(parts, ", ")
}

func imageBase(r *models.Restaurant) string {
	if r.Photograph != "" {
		return r.Photograph
	}
	return strconv.Itoa(r.ID)
}
