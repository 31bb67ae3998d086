package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCurrentlyFeatured(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name          string
		featureStatus string
		endsAt        *time.Time
		want          bool
	}{
		{"active with future end", FeatureStatusActive, &future, true},
		{"active with past end", FeatureStatusActive, &past, false},
		{"active ending exactly now", FeatureStatusActive, &now, false},
		{"active without end", FeatureStatusActive, nil, false},
		{"pending with future end", FeatureStatusPendingApproval, &future, false},
		{"rejected with future end", FeatureStatusRejected, &future, false},
		{"none", FeatureStatusNone, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &FundingPitch{FeatureStatus: tt.featureStatus, FeatureEndsAt: tt.endsAt}
			assert.Equal(t, tt.want, p.IsCurrentlyFeatured(now))
		})
	}
}

func TestCanTransitionPitchStatus(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{PitchStatusDraft, PitchStatusSeekingFunding, true},
		{PitchStatusDraft, PitchStatusFunded, false},
		{PitchStatusDraft, PitchStatusClosed, true},
		{PitchStatusSeekingFunding, PitchStatusFunded, true},
		{PitchStatusSeekingFunding, PitchStatusDraft, false},
		{PitchStatusSeekingFunding, PitchStatusClosed, true},
		{PitchStatusFunded, PitchStatusSeekingFunding, true},
		{PitchStatusFunded, PitchStatusDraft, false},
		{PitchStatusFunded, PitchStatusClosed, true},
		{PitchStatusClosed, PitchStatusSeekingFunding, false},
		{PitchStatusClosed, PitchStatusClosed, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransitionPitchStatus(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsValidPitchStatus(t *testing.T) {
	for _, status := range []string{PitchStatusDraft, PitchStatusSeekingFunding, PitchStatusFunded, PitchStatusClosed} {
		assert.True(t, IsValidPitchStatus(status))
	}
	assert.False(t, IsValidPitchStatus("archived"))
	assert.False(t, IsValidPitchStatus(""))
}
