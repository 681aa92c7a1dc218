package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/models"
)

type docenteRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocenteRepository constructs a [DocenteRepository] backed by db.
func NewDocenteRepository(db *DB, logger *logger.Logger) DocenteRepository {
	logger.Debug().Msg("creating docente repository")
	return &docenteRepository{
		DB:     db,
		logger: logger,
	}
}

// GetDocente returns [ErrDocenteNotFound] when there is no docente with id.
func (d *docenteRepository) GetDocente(ctx context.Context, id int64) (models.Docente, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocenteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "docenteRepository.GetDocente").Msg("failed to create query")
		return models.Docente{}, err
	}

	docente, err := scanDocente(d.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Docente{}, ErrDocenteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "docenteRepository.GetDocente").
			Int64("docente_id", id).
			Msg("failed to get docente")
		return models.Docente{}, d.queryError(err)
	}

	return docente, nil
}

// ListDocentes returns every docente ordered by surname and name.
func (d *docenteRepository) ListDocentes(ctx context.Context) ([]models.Docente, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocentesQuery()
	if err != nil {
		log.Err(err).Str("func", "docenteRepository.ListDocentes").Msg("failed to create query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "docenteRepository.ListDocentes").Msg("failed to execute query for listing docentes")
		return nil, d.queryError(err)
	}
	defer rows.Close()

	docentes := make([]models.Docente, 0, 50)
	for rows.Next() {
		docente, scanErr := scanDocente(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "docenteRepository.ListDocentes").Msg("failed to scan docente row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		docentes = append(docentes, docente)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "docenteRepository.ListDocentes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docentes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocente(row rowScanner) (models.Docente, error) {
	var docente models.Docente
	err := row.Scan(
		&docente.ID,
		&docente.Codigo,
		&docente.Nombres,
		&docente.Apellidos,
		&docente.Email,
		&docente.GradoAcademico,
		&docente.Departamento,
		&docente.Activo,
	)
	return docente, err
}
