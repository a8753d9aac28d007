package ports

import (
	"context"
	"io"
)

// ImageStore is the port to the image hosting service for shipment photos
// and delivery confirmation shots.
type ImageStore interface {
	// Upload stores an image and returns its public URL.
	Upload(ctx context.Context, name string, content io.Reader) (string, error)

	// Delete removes a previously uploaded image by its public URL.
	Delete(ctx context.Context, url string) error
}
