package service

import (
	"context"

	"github.com/MKhiriev/silabos-admin/models"
)

// AuthService verifies session tokens and resolves them to principals.
type AuthService interface {
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
	ResolvePrincipal(ctx context.Context, claims models.Claims) (models.Principal, error)
}

type DocenteService interface {
	GetDocente(ctx context.Context, id int64) (models.Docente, error)
	ListDocentes(ctx context.Context) ([]models.Docente, error)
}

type SyllabusService interface {
	GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error)
	ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error)
	CreateAporte(ctx context.Context, syllabusID int64, req models.CreateAporteRequest) (models.Aporte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppVersion
}

// SyllabusServiceWrapper defines middleware composition for SyllabusService.
// Implementations wrap an existing SyllabusService to add behavior such as
// validating.
type SyllabusServiceWrapper interface {
	Wrap(SyllabusService) SyllabusService
}
