package usecase

import (
	"github.com/gideonbanks/needed/internal/pkg/models"
	"github.com/gideonbanks/needed/services/request"
)

// RequestUC implements the request use case interface
type RequestUC struct {
	cfg     *models.Config
	repo    request.RequestRepo
	matchGW request.MatchGW
	eventGW request.EventGW
}

// NewRequestUC creates a new request use case
func NewRequestUC(
	cfg *models.Config,
	repo request.RequestRepo,
	matchGW request.MatchGW,
	eventGW request.EventGW,
) *RequestUC {
	return &RequestUC{
		cfg:     cfg,
		repo:    repo,
		matchGW: matchGW,
		eventGW: eventGW,
	}
}
