package doctorRepo

import (
	"context"

	"doctorsportal/models"
)

// DoctorRepository provides CRUD access to doctor records. Every operation on
// it sits behind the admin gate.
type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) error
	// Delete reports how many documents the given id matched.
	Delete(ctx context.Context, id string) (int64, error)
}
