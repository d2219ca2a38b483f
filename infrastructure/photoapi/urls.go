package photoapi

import (
	"fmt"
	"net/url"
)

// Thumbnail sizes accepted by the backend
const (
	ThumbnailSmall  = "small"
	ThumbnailMedium = "medium"
	ThumbnailLarge  = "large"
)

// ImageURL is the full-size image address
func (c *PhotoClient) ImageURL(imageID int64) string {
	return fmt.Sprintf("%s/images/%d", c.baseURL, imageID)
}

// ThumbnailURL falls back to medium for unknown sizes
func (c *PhotoClient) ThumbnailURL(imageID int64, size string) string {
	switch size {
	case ThumbnailSmall, ThumbnailMedium, ThumbnailLarge:
	default:
		size = ThumbnailMedium
	}
	q := url.Values{"size": {size}}
	return fmt.Sprintf("%s/images/%d/thumbnail?%s", c.baseURL, imageID, q.Encode())
}

// FaceURL is the person's face crop
func (c *PhotoClient) FaceURL(personID int64) string {
	return fmt.Sprintf("%s/people/%d/face", c.baseURL, personID)
}
