package entity

import (
	"time"
)

// Funding pitch lifecycle statuses.
const (
	PitchStatusDraft          = "draft"
	PitchStatusSeekingFunding = "seeking_funding"
	PitchStatusFunded         = "funded"
	PitchStatusClosed         = "closed"
)

// Feature-request workflow statuses.
const (
	FeatureStatusNone            = "none"
	FeatureStatusPendingApproval = "pending_approval"
	FeatureStatusActive          = "active"
	FeatureStatusRejected        = "rejected"
)

// FeatureWindow is how long an approved feature highlight lasts.
const FeatureWindow = 7 * 24 * time.Hour

type FundingPitch struct {
	ID                  string  `json:"id" firestore:"id"`
	CreatorID           string  `json:"creator_id" firestore:"creatorId"`
	CreatorName         string  `json:"creator_name" firestore:"creatorName"`
	ProjectTitle        string  `json:"project_title" firestore:"projectTitle"`
	ProjectSummary      string  `json:"project_summary" firestore:"projectSummary"`
	FundingAmountSought float64 `json:"funding_amount_sought" firestore:"fundingAmountSought"` // PKR
	EquityOffered       float64 `json:"equity_offered" firestore:"equityOffered"`              // percent, 0.1-90
	Industry            string  `json:"industry" firestore:"industry"`
	ContactEmail        string  `json:"contact_email" firestore:"contactEmail"`
	BusinessPlanLink    string  `json:"business_plan_link,omitempty" firestore:"businessPlanLink,omitempty"`
	PitchImageURL       string  `json:"pitch_image_url,omitempty" firestore:"pitchImageUrl,omitempty"`

	// Denormalized engagement counters; the per-user subcollections are
	// authoritative, these are kept in sync via batched increments.
	Views                    int `json:"views" firestore:"views"`
	InterestedInvestorsCount int `json:"interested_investors_count" firestore:"interestedInvestorsCount"`
	NegativeResponseRate     int `json:"negative_response_rate" firestore:"negativeResponseRate"`

	Status           string `json:"status" firestore:"status"`
	IsDeletedByAdmin bool   `json:"is_deleted_by_admin" firestore:"isDeletedByAdmin"`

	FeatureStatus              string     `json:"feature_status" firestore:"featureStatus"`
	FeatureRequestedAt         *time.Time `json:"feature_requested_at,omitempty" firestore:"featureRequestedAt,omitempty"`
	FeatureEndsAt              *time.Time `json:"feature_ends_at,omitempty" firestore:"featureEndsAt,omitempty"`
	FeaturePaymentProofDataURI string     `json:"feature_payment_proof_data_uri,omitempty" firestore:"featurePaymentProofDataUri,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsCurrentlyFeatured reports whether the pitch should render as featured at
// the given instant. featureStatus alone is never authoritative: an expired
// window is not flipped back by any job, it is recomputed here on every read.
// A window ending exactly at now counts as not featured.
func (p *FundingPitch) IsCurrentlyFeatured(now time.Time) bool {
	return p.FeatureStatus == FeatureStatusActive && p.FeatureEndsAt != nil && p.FeatureEndsAt.After(now)
}

func IsValidPitchStatus(status string) bool {
	switch status {
	case PitchStatusDraft, PitchStatusSeekingFunding, PitchStatusFunded, PitchStatusClosed:
		return true
	}
	return false
}

// CanTransitionPitchStatus is the transition table for non-admin actors.
// Admins may set any valid status directly and bypass this check.
func CanTransitionPitchStatus(from, to string) bool {
	if to == PitchStatusClosed {
		return true
	}
	switch from {
	case PitchStatusDraft:
		return to == PitchStatusSeekingFunding
	case PitchStatusSeekingFunding:
		return to == PitchStatusFunded
	case PitchStatusFunded:
		return to == PitchStatusSeekingFunding
	}
	return false
}
