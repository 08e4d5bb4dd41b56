package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/gideonbanks/needed/services/request"
)

// SQLSTATE codes raised by the matcher's dispatch_request_batch function.
// These are the whole collaborator contract; message text is never
// inspected.
const (
	pgCodeRequestNotFound  = "LM404"
	pgCodeDispatchConflict = "LM409"
)

// MatchGW calls the external matcher through its database function.
// Provider selection policy lives entirely on the matcher side.
type MatchGW struct {
	db *sqlx.DB
}

// NewMatchGW creates a new matcher gateway instance
func NewMatchGW(db *sqlx.DB) *MatchGW {
	return &MatchGW{db: db}
}

// DispatchBatch asks the matcher to dispatch one batch of up to limit
// providers. The function is atomic: it verifies ownership and status,
// transitions the request and inserts the dispatch rows, or raises.
func (g *MatchGW) DispatchBatch(ctx context.Context, requestID, customerID uuid.UUID, batchNumber, limit int) ([]uuid.UUID, error) {
	var providerIDs []uuid.UUID
	query := `SELECT provider_id FROM dispatch_request_batch($1, $2, $3, $4)`
	err := g.db.SelectContext(ctx, &providerIDs, query, requestID, customerID, batchNumber, limit)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgCodeRequestNotFound:
				return nil, request.ErrRequestNotFound
			case pgCodeDispatchConflict:
				return nil, request.ErrDispatchConflict
			}
		}
		return nil, fmt.Errorf("matcher dispatch failed: %w", err)
	}
	return providerIDs, nil
}
