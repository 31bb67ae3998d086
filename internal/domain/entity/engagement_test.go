package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementKindMappings(t *testing.T) {
	tests := []struct {
		kind          EngagementKind
		subcollection string
		counter       string
	}{
		{EngagementView, "viewers", "views"},
		{EngagementInterest, "interests", "interestedInvestorsCount"},
		{EngagementDisinterest, "disinterests", "negativeResponseRate"},
		{EngagementPeerInterest, "peerInterests", "peerInterestCount"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.subcollection, tt.kind.SubcollectionName())
		assert.Equal(t, tt.counter, tt.kind.CounterField())
		assert.True(t, IsValidEngagementKind(tt.kind))
	}
}

func TestInvalidEngagementKind(t *testing.T) {
	assert.False(t, IsValidEngagementKind("like"))
	assert.False(t, IsValidEngagementKind(""))
	assert.Empty(t, EngagementKind("like").SubcollectionName())
	assert.Empty(t, EngagementKind("like").CounterField())
}
