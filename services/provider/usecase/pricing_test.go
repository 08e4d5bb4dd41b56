package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gideonbanks/needed/internal/pkg/models"
)

func TestContactCost(t *testing.T) {
	tests := []struct {
		name        string
		serviceSlug string
		timeNeed    string
		want        int
	}{
		{"trade urgent", "plumber", models.TimeNeedNow, 50},
		{"trade today", "electrician", models.TimeNeedToday, 35},
		{"trade this week", "locksmith", models.TimeNeedThisWeek, 25},
		{"gasfitter urgent", "gasfitter", models.TimeNeedNow, 50},
		{"general urgent", "lawn-mowing", models.TimeNeedNow, 30},
		{"general today", "cleaner", models.TimeNeedToday, 20},
		{"general this week", "handyman", models.TimeNeedThisWeek, 15},
		{"unknown urgency prices at lowest tier", "plumber", "someday", 25},
		{"unknown service is general", "dog-walking", models.TimeNeedNow, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContactCost(tc.serviceSlug, tc.timeNeed))
		})
	}
}
