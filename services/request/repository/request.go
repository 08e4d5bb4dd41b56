package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

// RequestRepo implements the request repository interface
type RequestRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRequestRepo creates a new request repository instance
func NewRequestRepo(cfg *models.Config, db *sqlx.DB) *RequestRepo {
	return &RequestRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetActiveServiceBySlug looks up an active service category by its slug.
// Inactive and unknown slugs both surface sql.ErrNoRows.
func (r *RequestRepo) GetActiveServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var svc models.Service
	query := `
		SELECT id, name, slug, is_active
		FROM services
		WHERE slug = $1 AND is_active = TRUE
	`
	if err := r.db.GetContext(ctx, &svc, query, slug); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpsertCustomerByPhone finds or creates the customer record for a
// normalized phone number. Phone is the customer identity; there are no
// customer accounts.
func (r *RequestRepo) UpsertCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	query := `
		INSERT INTO customers (id, phone, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING id, phone, created_at
	`
	err := r.db.GetContext(ctx, &customer, query, uuid.New(), phone, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return &customer, nil
}

// CreateRequest inserts a new draft request
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.Request) error {
	query := `
		INSERT INTO requests (
			id, customer_id, service_id, time_need, suburb_text,
			lat, lng, geohash, details, photo_url, status, created_at
		) VALUES (:id, :customer_id, :service_id, :time_need, :suburb_text,
			:lat, :lng, :geohash, :details, :photo_url, :status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

// NextBatchNumber returns one past the highest dispatched batch for the
// request, so 1 when nothing has been dispatched yet.
func (r *RequestRepo) NextBatchNumber(ctx context.Context, requestID uuid.UUID) (int, error) {
	var next int
	query := `
		SELECT COALESCE(MAX(batch_number), 0) + 1
		FROM request_dispatches
		WHERE request_id = $1
	`
	if err := r.db.GetContext(ctx, &next, query, requestID); err != nil {
		return 0, fmt.Errorf("failed to compute next batch number: %w", err)
	}
	return next, nil
}

// GetStatusSummary returns the customer-facing status for a request.
// Unknown request IDs surface sql.ErrNoRows.
func (r *RequestRepo) GetStatusSummary(ctx context.Context, requestID uuid.UUID) (*models.RequestStatusSummary, error) {
	var row struct {
		RequestID   uuid.UUID `db:"id"`
		Status      string    `db:"status"`
		ServiceName string    `db:"service_name"`
		TimeNeed    string    `db:"time_need"`
		Suburb      string    `db:"suburb_text"`
		Batches     int       `db:"batches"`
		Dispatched  int       `db:"dispatched"`
		CreatedAt   time.Time `db:"created_at"`
	}
	query := `
		SELECT r.id, r.status, s.name AS service_name, r.time_need,
			r.suburb_text, r.created_at,
			COALESCE(MAX(d.batch_number), 0) AS batches,
			COUNT(d.id) AS dispatched
		FROM requests r
		JOIN services s ON s.id = r.service_id
		LEFT JOIN request_dispatches d ON d.request_id = r.id
		WHERE r.id = $1
		GROUP BY r.id, s.name
	`
	if err := r.db.GetContext(ctx, &row, query, requestID); err != nil {
		return nil, err
	}

	return &models.RequestStatusSummary{
		RequestID:   row.RequestID,
		Status:      row.Status,
		ServiceName: row.ServiceName,
		TimeNeed:    row.TimeNeed,
		Suburb:      row.Suburb,
		Batches:     row.Batches,
		Dispatched:  row.Dispatched,
		CreatedAt:   row.CreatedAt,
	}, nil
}
