package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/models"
)

type docenteService struct {
	docenteRepository store.DocenteRepository
	logger            *logger.Logger
}

func NewDocenteService(docenteRepository store.DocenteRepository, logger *logger.Logger) DocenteService {
	return &docenteService{
		docenteRepository: docenteRepository,
		logger:            logger,
	}
}

// GetDocente returns the docente with id. Storage errors are wrapped, so
// store.ErrDocenteNotFound stays matchable with errors.Is.
func (d *docenteService) GetDocente(ctx context.Context, id int64) (models.Docente, error) {
	if id <= 0 {
		return models.Docente{}, ErrInvalidID
	}

	docente, err := d.docenteRepository.GetDocente(ctx, id)
	if err != nil {
		return models.Docente{}, fmt.Errorf("error getting docente %d: %w", id, err)
	}

	return docente, nil
}

func (d *docenteService) ListDocentes(ctx context.Context) ([]models.Docente, error) {
	docentes, err := d.docenteRepository.ListDocentes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing docentes: %w", err)
	}

	return docentes, nil
}
