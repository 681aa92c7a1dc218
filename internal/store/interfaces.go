//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/silabos-admin/models"
)

// UserRepository is the read-only user directory consulted by the
// authorization guard.
type UserRepository interface {
	// FindByExternalIDAndTenant returns the user with its category.
	// Returns [ErrNoUserWasFound] when there is no such user.
	FindByExternalIDAndTenant(ctx context.Context, externalID, tenantID string) (models.Principal, error)
}

// DocenteRepository reads instructor profiles.
type DocenteRepository interface {
	GetDocente(ctx context.Context, id int64) (models.Docente, error)
	ListDocentes(ctx context.Context) ([]models.Docente, error)
}

// SyllabusRepository reads syllabi and stores their contributions to
// program outcomes.
type SyllabusRepository interface {
	GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error)
	ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error)
	CreateAporte(ctx context.Context, aporte models.Aporte) (models.Aporte, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
