package utils

import (
	"fmt"

	"github.com/Ambaks/campuseats/entity"
)

// BuildMealImageURL points at the blob-serving endpoint when the meal has
// an uploaded image, otherwise falls back to any external URL on record.
func BuildMealImageURL(m *entity.Meal, baseURL string) string {
	if m.ImageSize > 0 {
		return fmt.Sprintf("%s/meals/%d/image", baseURL, m.ID)
	}
	return m.ImageURL
}
