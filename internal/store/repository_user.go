package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It reads the "usuario" table joined with "categoria" and never writes.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindByExternalIDAndTenant resolves the identity-provider subject and tenant
// to the local user and its authorization category.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other failure → [ErrDatabaseUnavailable] when transient,
//     [ErrExecutingQuery] otherwise.
func (r *userRepository) FindByExternalIDAndTenant(ctx context.Context, externalID, tenantID string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPrincipalQuery(externalID, tenantID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByExternalIDAndTenant").Msg("failed to create query")
		return models.Principal{}, err
	}

	var p models.Principal
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ExternalID,
		&p.TenantID,
		&p.Name,
		&p.Email,
		&p.Active,
		&p.Category.ID,
		&p.Category.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Principal{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindByExternalIDAndTenant").
			Str("tenant_id", tenantID).
			Msg("user directory query failed")
		return models.Principal{}, r.db.queryError(err)
	}

	return p, nil
}
