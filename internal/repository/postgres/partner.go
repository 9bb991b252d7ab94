package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/repository"
)

const uniqueViolation = "23505"

type partnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

const partnerColumns = `id, partner_name, partner_email, partner_phone, partner_street_address, partner_city, partner_state, partner_zip`

func scanPartner(row interface{ Scan(...any) error }) (*domain.Partner, error) {
	p := &domain.Partner{}
	err := row.Scan(&p.ID, &p.PartnerName, &p.PartnerEmail, &p.PartnerPhone,
		&p.PartnerStreetAddress, &p.PartnerCity, &p.PartnerState, &p.PartnerZip)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	query := `INSERT INTO partners (id, partner_name, partner_email, partner_phone, partner_street_address, partner_city, partner_state, partner_zip)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.PartnerName, p.PartnerEmail, p.PartnerPhone,
		p.PartnerStreetAddress, p.PartnerCity, p.PartnerState, p.PartnerZip)
	return mapPartnerError(err)
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	p, err := scanPartner(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *partnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPartners(rows)
}

func (r *partnerRepository) Search(ctx context.Context, query string, limit int) ([]domain.Partner, error) {
	q := `SELECT ` + partnerColumns + ` FROM partners
	      WHERE id ILIKE $1 OR partner_name ILIKE $1
	      ORDER BY id ASC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPartners(rows)
}

func (r *partnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	query := `UPDATE partners SET partner_name=$1, partner_email=$2, partner_phone=$3, partner_street_address=$4, partner_city=$5, partner_state=$6, partner_zip=$7
	          WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, p.PartnerName, p.PartnerEmail, p.PartnerPhone,
		p.PartnerStreetAddress, p.PartnerCity, p.PartnerState, p.PartnerZip, p.ID)
	if err != nil {
		return mapPartnerError(err)
	}
	return requireRow(res)
}

// Rename applies the new id and the submitted fields as one key-changing
// update, so readers never observe a window where the partner is absent.
func (r *partnerRepository) Rename(ctx context.Context, currentID string, p *domain.Partner) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE partners SET id=$1, partner_name=$2, partner_email=$3, partner_phone=$4, partner_street_address=$5, partner_city=$6, partner_state=$7, partner_zip=$8
	          WHERE id=$9`
	res, err := tx.ExecContext(ctx, query, p.ID, p.PartnerName, p.PartnerEmail, p.PartnerPhone,
		p.PartnerStreetAddress, p.PartnerCity, p.PartnerState, p.PartnerZip, currentID)
	if err != nil {
		return mapPartnerError(err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func collectPartners(rows *sql.Rows) ([]domain.Partner, error) {
	var partners []domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, *p)
	}
	return partners, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapPartnerError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("partner id: %w", domain.ErrConflict)
	}
	return err
}
