package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/models"
)

type syllabusService struct {
	syllabusRepository store.SyllabusRepository
	logger             *logger.Logger
}

// NewSyllabusService returns the syllabus service without request validation.
// Use [NewSyllabusValidationService] to wrap it.
func NewSyllabusService(syllabusRepository store.SyllabusRepository, logger *logger.Logger) SyllabusService {
	return &syllabusService{
		syllabusRepository: syllabusRepository,
		logger:             logger,
	}
}

func (s *syllabusService) GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error) {
	if id <= 0 {
		return models.Syllabus{}, ErrInvalidID
	}

	syllabus, err := s.syllabusRepository.GetSyllabus(ctx, id)
	if err != nil {
		return models.Syllabus{}, fmt.Errorf("error getting syllabus %d: %w", id, err)
	}

	return syllabus, nil
}

// ListAportes returns store.ErrSyllabusNotFound for an unknown syllabus
// instead of an empty list.
func (s *syllabusService) ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error) {
	if _, err := s.GetSyllabus(ctx, syllabusID); err != nil {
		return nil, err
	}

	aportes, err := s.syllabusRepository.ListAportes(ctx, syllabusID)
	if err != nil {
		return nil, fmt.Errorf("error listing aportes of syllabus %d: %w", syllabusID, err)
	}

	return aportes, nil
}

// CreateAporte stores a contribution of the syllabus to a program outcome.
// The request is expected to be validated already.
func (s *syllabusService) CreateAporte(ctx context.Context, syllabusID int64, req models.CreateAporteRequest) (models.Aporte, error) {
	log := logger.FromContext(ctx)

	if _, err := s.GetSyllabus(ctx, syllabusID); err != nil {
		return models.Aporte{}, err
	}

	aporte, err := s.syllabusRepository.CreateAporte(ctx, models.Aporte{
		SyllabusID:                   syllabusID,
		ResultadoProgramaCodigo:      strings.TrimSpace(req.ResultadoProgramaCodigo),
		ResultadoProgramaDescripcion: strings.TrimSpace(req.ResultadoProgramaDescripcion),
		TipoAporte:                   req.TipoAporte,
	})
	if err != nil {
		return models.Aporte{}, fmt.Errorf("error creating aporte for syllabus %d: %w", syllabusID, err)
	}

	log.Info().
		Int64("syllabus_id", syllabusID).
		Int64("aporte_id", aporte.ID).
		Str("resultado_programa_codigo", aporte.ResultadoProgramaCodigo).
		Msg("aporte created")

	return aporte, nil
}
