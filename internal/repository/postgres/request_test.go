package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partner-portal-backend/internal/domain"
)

func sampleRequest() *domain.Request {
	return &domain.Request{
		ID:                          "req_1700000000000_ab12cd34",
		PartnerID:                   "ABC",
		PartnerName:                 "Acme",
		CaseManagerName:             "Casey Manager",
		CaseManagerEmail:            "casey@example.com",
		CaseManagerPhone:            "555-123-4567",
		RecipientsName:              "Riley Recipient",
		RecipientsStreetAddress:     "123 Main St",
		RecipientsCity:              "Springfield",
		RecipientsState:             "IL",
		RecipientsZip:               "62704",
		RecipientsEmail:             "riley@example.com",
		RecipientsPhone:             "555-987-6543",
		Race:                        "White",
		Ethnicity:                   "Unknown",
		NumberOfMenInHousehold:      "1",
		NumberOfWomenInHousehold:    "2",
		NumberOfChildrenInHousehold: "0",
		EmployedHousehold:           "true",
		EnglishSpeaking:             "false",
		DescriptionOfNeed:           "Needs help with groceries",
		WebhookStatus:               domain.WebhookStatusPending,
		CreatedAt:                   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func requestRows(reqs ...*domain.Request) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "partner_id", "partner_name", "case_manager_name", "case_manager_email", "case_manager_phone",
		"recipients_name", "recipients_street_address", "recipients_city", "recipients_state", "recipients_zip",
		"recipients_email", "recipients_phone", "race", "ethnicity",
		"number_of_men_in_household", "number_of_women_in_household", "number_of_children_in_household",
		"employed_household", "english_speaking", "description_of_need", "webhook_status", "created_at",
	})
	for _, r := range reqs {
		rows.AddRow(r.ID, r.PartnerID, r.PartnerName, r.CaseManagerName, r.CaseManagerEmail, r.CaseManagerPhone,
			r.RecipientsName, r.RecipientsStreetAddress, r.RecipientsCity, r.RecipientsState, r.RecipientsZip,
			r.RecipientsEmail, r.RecipientsPhone, r.Race, r.Ethnicity,
			r.NumberOfMenInHousehold, r.NumberOfWomenInHousehold, r.NumberOfChildrenInHousehold,
			r.EmployedHousehold, r.EnglishSpeaking, r.DescriptionOfNeed, string(r.WebhookStatus), r.CreatedAt)
	}
	return rows
}

func TestRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := sampleRequest()
		mock.ExpectExec("INSERT INTO requests").
			WithArgs(req.ID, req.PartnerID, req.PartnerName,
				req.CaseManagerName, req.CaseManagerEmail, req.CaseManagerPhone,
				req.RecipientsName, req.RecipientsStreetAddress, req.RecipientsCity,
				req.RecipientsState, req.RecipientsZip, req.RecipientsEmail, req.RecipientsPhone,
				req.Race, req.Ethnicity,
				req.NumberOfMenInHousehold, req.NumberOfWomenInHousehold, req.NumberOfChildrenInHousehold,
				req.EmployedHousehold, req.EnglishSpeaking, req.DescriptionOfNeed,
				string(req.WebhookStatus), req.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(context.Background(), req))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DefaultsCreationTime", func(t *testing.T) {
		req := sampleRequest()
		req.CreatedAt = time.Time{}
		mock.ExpectExec("INSERT INTO requests").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), req))
		assert.False(t, req.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	t.Run("Success", func(t *testing.T) {
		want := sampleRequest()
		mock.ExpectQuery("FROM requests WHERE id").
			WithArgs(want.ID).
			WillReturnRows(requestRows(want))

		got, err := repo.GetByID(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM requests WHERE id").
			WithArgs("missing").
			WillReturnRows(requestRows())

		got, err := repo.GetByID(context.Background(), "missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	first := sampleRequest()
	second := sampleRequest()
	second.ID = "req_1700000000001_ef56ab78"
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	mock.ExpectQuery("FROM requests ORDER BY created_at").
		WillReturnRows(requestRows(first, second))

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, first.ID, requests[0].ID)
	assert.Equal(t, second.ID, requests[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := sampleRequest()
		req.DescriptionOfNeed = "Corrected description"
		mock.ExpectExec("UPDATE requests SET partner_name").
			WithArgs(req.PartnerName,
				req.CaseManagerName, req.CaseManagerEmail, req.CaseManagerPhone,
				req.RecipientsName, req.RecipientsStreetAddress, req.RecipientsCity,
				req.RecipientsState, req.RecipientsZip, req.RecipientsEmail, req.RecipientsPhone,
				req.Race, req.Ethnicity,
				req.NumberOfMenInHousehold, req.NumberOfWomenInHousehold, req.NumberOfChildrenInHousehold,
				req.EmployedHousehold, req.EnglishSpeaking, req.DescriptionOfNeed, req.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), req))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		req := sampleRequest()
		req.ID = "missing"
		mock.ExpectExec("UPDATE requests SET partner_name").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), req), domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_UpdateWebhookStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE requests SET webhook_status").
			WithArgs(string(domain.WebhookStatusSuccessful), "req_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateWebhookStatus(context.Background(), "req_1", domain.WebhookStatusSuccessful)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE requests SET webhook_status").
			WithArgs(string(domain.WebhookStatusFailed), "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateWebhookStatus(context.Background(), "missing", domain.WebhookStatusFailed)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_MarkStalePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	cutoff := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE requests SET webhook_status").
		WithArgs(string(domain.WebhookStatusFailed), string(domain.WebhookStatusPending), cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkStalePending(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_CountByWebhookStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRequestRepository(db)

	rows := sqlmock.NewRows([]string{"webhook_status", "count"}).
		AddRow("pending", 2).
		AddRow("successful", 10).
		AddRow("failed", 1)
	mock.ExpectQuery("SELECT webhook_status, COUNT").
		WillReturnRows(rows)

	counts, err := repo.CountByWebhookStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.WebhookStatus]int64{
		domain.WebhookStatusPending:    2,
		domain.WebhookStatusSuccessful: 10,
		domain.WebhookStatusFailed:     1,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
