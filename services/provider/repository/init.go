package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/gideonbanks/needed/internal/pkg/database"
	"github.com/gideonbanks/needed/internal/pkg/models"
)

// ProviderRepo implements the provider repository interface
type ProviderRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewProviderRepo creates a new provider repository instance
func NewProviderRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *ProviderRepo {
	return &ProviderRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}
