package catalogRepo

import (
	"context"

	"doctorsportal/models"
)

// CatalogRepository provides read access to the treatment catalog. The booking
// flow never mutates it; only rare admin edits do, outside this interface.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.Treatment, error)
	GetNames(ctx context.Context) ([]models.Speciality, error)
}
