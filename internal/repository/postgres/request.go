package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"partner-portal-backend/internal/domain"
	"partner-portal-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, partner_id, partner_name, case_manager_name, case_manager_email, case_manager_phone,
	recipients_name, recipients_street_address, recipients_city, recipients_state, recipients_zip,
	recipients_email, recipients_phone, race, ethnicity,
	number_of_men_in_household, number_of_women_in_household, number_of_children_in_household,
	employed_household, english_speaking, description_of_need, webhook_status, created_at`

func scanRequest(row interface{ Scan(...any) error }) (*domain.Request, error) {
	req := &domain.Request{}
	err := row.Scan(&req.ID, &req.PartnerID, &req.PartnerName,
		&req.CaseManagerName, &req.CaseManagerEmail, &req.CaseManagerPhone,
		&req.RecipientsName, &req.RecipientsStreetAddress, &req.RecipientsCity,
		&req.RecipientsState, &req.RecipientsZip, &req.RecipientsEmail, &req.RecipientsPhone,
		&req.Race, &req.Ethnicity,
		&req.NumberOfMenInHousehold, &req.NumberOfWomenInHousehold, &req.NumberOfChildrenInHousehold,
		&req.EmployedHousehold, &req.EnglishSpeaking, &req.DescriptionOfNeed,
		&req.WebhookStatus, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (id, partner_id, partner_name, case_manager_name, case_manager_email, case_manager_phone,
	              recipients_name, recipients_street_address, recipients_city, recipients_state, recipients_zip,
	              recipients_email, recipients_phone, race, ethnicity,
	              number_of_men_in_household, number_of_women_in_household, number_of_children_in_household,
	              employed_household, english_speaking, description_of_need, webhook_status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query, req.ID, req.PartnerID, req.PartnerName,
		req.CaseManagerName, req.CaseManagerEmail, req.CaseManagerPhone,
		req.RecipientsName, req.RecipientsStreetAddress, req.RecipientsCity,
		req.RecipientsState, req.RecipientsZip, req.RecipientsEmail, req.RecipientsPhone,
		req.Race, req.Ethnicity,
		req.NumberOfMenInHousehold, req.NumberOfWomenInHousehold, req.NumberOfChildrenInHousehold,
		req.EmployedHousehold, req.EnglishSpeaking, req.DescriptionOfNeed,
		req.WebhookStatus, req.CreatedAt)
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

// Update rewrites the correctable business fields of an existing request.
// The partner snapshot id, webhook status and creation time stay as written.
func (r *requestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests SET partner_name=$1, case_manager_name=$2, case_manager_email=$3, case_manager_phone=$4,
	              recipients_name=$5, recipients_street_address=$6, recipients_city=$7, recipients_state=$8, recipients_zip=$9,
	              recipients_email=$10, recipients_phone=$11, race=$12, ethnicity=$13,
	              number_of_men_in_household=$14, number_of_women_in_household=$15, number_of_children_in_household=$16,
	              employed_household=$17, english_speaking=$18, description_of_need=$19
	          WHERE id=$20`
	res, err := r.db.ExecContext(ctx, query, req.PartnerName,
		req.CaseManagerName, req.CaseManagerEmail, req.CaseManagerPhone,
		req.RecipientsName, req.RecipientsStreetAddress, req.RecipientsCity,
		req.RecipientsState, req.RecipientsZip, req.RecipientsEmail, req.RecipientsPhone,
		req.Race, req.Ethnicity,
		req.NumberOfMenInHousehold, req.NumberOfWomenInHousehold, req.NumberOfChildrenInHousehold,
		req.EmployedHousehold, req.EnglishSpeaking, req.DescriptionOfNeed, req.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *requestRepository) UpdateWebhookStatus(ctx context.Context, id string, status domain.WebhookStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE requests SET webhook_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *requestRepository) MarkStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE requests SET webhook_status = $1 WHERE webhook_status = $2 AND created_at < $3`
	res, err := r.db.ExecContext(ctx, query, domain.WebhookStatusFailed, domain.WebhookStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *requestRepository) CountByWebhookStatus(ctx context.Context) (map[domain.WebhookStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT webhook_status, COUNT(*) FROM requests GROUP BY webhook_status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.WebhookStatus]int64)
	for rows.Next() {
		var status domain.WebhookStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
