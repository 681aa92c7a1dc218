package service

import (
	"context"

	"github.com/MKhiriev/silabos-admin/internal/validators"
	"github.com/MKhiriev/silabos-admin/models"
)

// SyllabusValidationService validates request bodies before they reach the
// wrapped SyllabusService. Invalid requests never touch storage.
type SyllabusValidationService struct {
	inner     SyllabusService
	validator validators.Validator
}

func NewSyllabusValidationService(validator validators.Validator) SyllabusServiceWrapper {
	return &SyllabusValidationService{
		validator: validator,
	}
}

func (v *SyllabusValidationService) GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error) {
	return v.inner.GetSyllabus(ctx, id)
}

func (v *SyllabusValidationService) ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error) {
	return v.inner.ListAportes(ctx, syllabusID)
}

// CreateAporte returns validators.FieldErrors when req breaks a rule.
func (v *SyllabusValidationService) CreateAporte(ctx context.Context, syllabusID int64, req models.CreateAporteRequest) (models.Aporte, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Aporte{}, err
	}

	return v.inner.CreateAporte(ctx, syllabusID, req)
}

func (v *SyllabusValidationService) Wrap(wrapped SyllabusService) SyllabusService {
	v.inner = wrapped
	return v
}
