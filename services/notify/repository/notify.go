package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

// NotifyRepo implements the notify repository interface
type NotifyRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotifyRepo creates a new notify repository instance
func NewNotifyRepo(cfg *models.Config, db *sqlx.DB) *NotifyRepo {
	return &NotifyRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetRequestNotification loads the request fields used in provider alerts
func (r *NotifyRepo) GetRequestNotification(ctx context.Context, requestID uuid.UUID) (*models.RequestNotification, error) {
	var notification models.RequestNotification
	query := `
		SELECT r.id AS request_id, s.name AS service_name, r.suburb_text, r.time_need
		FROM requests r
		JOIN services s ON s.id = r.service_id
		WHERE r.id = $1
	`
	if err := r.db.GetContext(ctx, &notification, query, requestID); err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetProviderPhones returns the phone for each provider ID that exists
func (r *NotifyRepo) GetProviderPhones(ctx context.Context, providerIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(providerIDs) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, phone FROM providers WHERE id IN (?)`, providerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider phone query: %w", err)
	}

	var rows []struct {
		ID    uuid.UUID `db:"id"`
		Phone string    `db:"phone"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load provider phones: %w", err)
	}

	phones := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		phones[row.ID] = row.Phone
	}
	return phones, nil
}
