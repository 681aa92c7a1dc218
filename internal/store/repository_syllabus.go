package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/models"
	"github.com/jackc/pgerrcode"
)

// syllabusRepository is the PostgreSQL-backed implementation of
// [SyllabusRepository] over the "silabo" and "aporte" tables.
type syllabusRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyllabusRepository constructs a [SyllabusRepository] backed by db.
func NewSyllabusRepository(db *DB, logger *logger.Logger) SyllabusRepository {
	logger.Debug().Msg("creating syllabus repository")
	return &syllabusRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSyllabus returns [ErrSyllabusNotFound] when there is no syllabus with id.
func (s *syllabusRepository) GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyllabusQuery(id)
	if err != nil {
		log.Err(err).Str("func", "syllabusRepository.GetSyllabus").Msg("failed to create query")
		return models.Syllabus{}, err
	}

	var (
		syllabus  models.Syllabus
		docenteID sql.NullInt64
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&syllabus.ID,
		&syllabus.CursoCodigo,
		&syllabus.CursoNombre,
		&syllabus.Periodo,
		&syllabus.Estado,
		&docenteID,
		&syllabus.CreatedAt,
		&syllabus.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Syllabus{}, ErrSyllabusNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "syllabusRepository.GetSyllabus").
			Int64("syllabus_id", id).
			Msg("failed to get syllabus")
		return models.Syllabus{}, s.queryError(err)
	}

	if docenteID.Valid {
		syllabus.DocenteID = &docenteID.Int64
	}

	return syllabus, nil
}

// ListAportes returns the contributions of a syllabus in insertion order.
// An unknown syllabus yields an empty slice.
func (s *syllabusRepository) ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAportesQuery(syllabusID)
	if err != nil {
		log.Err(err).Str("func", "syllabusRepository.ListAportes").Msg("failed to create query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syllabusRepository.ListAportes").
			Int64("syllabus_id", syllabusID).
			Msg("failed to execute query for listing aportes")
		return nil, s.queryError(err)
	}
	defer rows.Close()

	aportes := make([]models.Aporte, 0, 10)
	for rows.Next() {
		var aporte models.Aporte
		scanErr := rows.Scan(
			&aporte.ID,
			&aporte.SyllabusID,
			&aporte.ResultadoProgramaCodigo,
			&aporte.ResultadoProgramaDescripcion,
			&aporte.TipoAporte,
			&aporte.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syllabusRepository.ListAportes").
				Int64("syllabus_id", syllabusID).
				Msg("failed to scan aporte row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		aportes = append(aportes, aporte)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "syllabusRepository.ListAportes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return aportes, nil
}

// CreateAporte inserts aporte and returns it with the server-assigned id and
// creation time.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrSyllabusNotFound].
//   - unique_violation (23505) → [ErrAporteAlreadyExists].
func (s *syllabusRepository) CreateAporte(ctx context.Context, aporte models.Aporte) (models.Aporte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAporteQuery(aporte)
	if err != nil {
		log.Err(err).Str("func", "syllabusRepository.CreateAporte").Msg("failed to create query")
		return models.Aporte{}, err
	}

	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&aporte.ID, &aporte.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "syllabusRepository.CreateAporte").
			Int64("syllabus_id", aporte.SyllabusID).
			Str("resultado_programa_codigo", aporte.ResultadoProgramaCodigo).
			Msg("failed to insert aporte")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Aporte{}, ErrSyllabusNotFound
		case pgerrcode.UniqueViolation:
			return models.Aporte{}, ErrAporteAlreadyExists
		default:
			return models.Aporte{}, s.queryError(err)
		}
	}

	return aporte, nil
}
