package entity

import (
	"time"
)

// EngagementKind identifies one of the per-user engagement facts tracked
// against a pitch or offer.
type EngagementKind string

const (
	EngagementView         EngagementKind = "view"
	EngagementInterest     EngagementKind = "interest"
	EngagementDisinterest  EngagementKind = "disinterest"
	EngagementPeerInterest EngagementKind = "peerInterest"
)

// EntityRef locates an engagement parent document (a pitch or an offer).
type EntityRef struct {
	Collection string
	ID         string
}

// EngagementMember is one subcollection document, keyed by the acting user's
// id. Document existence is the engagement fact; the parent counter is a
// cache kept in sync in the same batch.
type EngagementMember struct {
	UserID     string    `json:"user_id" firestore:"userId"`
	UserName   string    `json:"user_name" firestore:"userName"`
	UserType   string    `json:"user_type" firestore:"userType"`
	AvatarSeed string    `json:"avatar_seed" firestore:"avatarSeed"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
}

// SubcollectionName maps a kind to the subcollection its members live in.
func (k EngagementKind) SubcollectionName() string {
	switch k {
	case EngagementView:
		return "viewers"
	case EngagementInterest:
		return "interests"
	case EngagementDisinterest:
		return "disinterests"
	case EngagementPeerInterest:
		return "peerInterests"
	}
	return ""
}

// CounterField maps a kind to the denormalized counter on the parent.
func (k EngagementKind) CounterField() string {
	switch k {
	case EngagementView:
		return "views"
	case EngagementInterest:
		return "interestedInvestorsCount"
	case EngagementDisinterest:
		return "negativeResponseRate"
	case EngagementPeerInterest:
		return "peerInterestCount"
	}
	return ""
}

func IsValidEngagementKind(kind EngagementKind) bool {
	return kind.SubcollectionName() != ""
}
