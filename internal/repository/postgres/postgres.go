package postgres

import (
	"database/sql"

	"partner-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PartnerRepository
	repository.RequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		PartnerRepository: NewPartnerRepository(db),
		RequestRepository: NewRequestRepository(db),
	}
}
