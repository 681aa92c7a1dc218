package store

import "github.com/MKhiriev/silabos-admin/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	DocenteRepository  DocenteRepository
	SyllabusRepository SyllabusRepository
}

// NewStorages builds every PostgreSQL repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DocenteRepository:  NewDocenteRepository(db, logger),
		SyllabusRepository: NewSyllabusRepository(db, logger),
	}
}
