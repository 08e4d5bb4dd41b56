package usecase

import (
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/services/provider"
)

// ProviderUC implements the provider use case interface
type ProviderUC struct {
	cfg   *models.Config
	repo  provider.ProviderRepo
	smsGW provider.SMSGW
}

// NewProviderUC creates a new provider use case
func NewProviderUC(
	cfg *models.Config,
	repo provider.ProviderRepo,
	smsGW provider.SMSGW,
) *ProviderUC {
	return &ProviderUC{
		cfg:   cfg,
		repo:  repo,
		smsGW: smsGW,
	}
}
