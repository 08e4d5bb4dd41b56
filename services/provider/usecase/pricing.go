package usecase

import "github.com/gideonbanks/needed/internal/pkg/models"

// Trade services carry urgent-callout pricing; everything else is general.
var tradeServices = map[string]bool{
	"plumber":     true,
	"electrician": true,
	"locksmith":   true,
	"gasfitter":   true,
}

// ContactCost returns the credit cost of contacting a lead, by service
// category and urgency. Unknown urgency values price at the lowest tier.
func ContactCost(serviceSlug, timeNeed string) int {
	if tradeServices[serviceSlug] {
		switch timeNeed {
		case models.TimeNeedNow:
			return 50
		case models.TimeNeedToday:
			return 35
		default:
			return 25
		}
	}
	switch timeNeed {
	case models.TimeNeedNow:
		return 30
	case models.TimeNeedToday:
		return 20
	default:
		return 15
	}
}
