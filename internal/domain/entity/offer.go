package entity

import (
	"time"
)

const (
	OfferStatusDraft     = "draft"
	OfferStatusActive    = "active"
	OfferStatusPaused    = "paused"
	OfferStatusCompleted = "completed"
	OfferStatusExpired   = "expired"
	OfferStatusFlagged   = "flagged"
)

// PlatformOffer is a commission-bearing sales or collaboration offer managed
// by platform admins.
type PlatformOffer struct {
	ID             string `json:"id" firestore:"id"`
	Title          string `json:"title" firestore:"title"`
	Description    string `json:"description" firestore:"description"`
	OfferCategory  string `json:"offer_category" firestore:"offerCategory"`
	TargetAudience string `json:"target_audience" firestore:"targetAudience"`
	CommissionType string `json:"commission_type" firestore:"commissionType"`
	CommissionRate string `json:"commission_rate" firestore:"commissionRate"`
	ContactNumber  string `json:"contact_number,omitempty" firestore:"contactNumber,omitempty"`
	MediaURL       string `json:"media_url,omitempty" firestore:"mediaUrl,omitempty"`
	Status         string `json:"status" firestore:"status"`

	Views                int `json:"views" firestore:"views"`
	PositiveResponseRate int `json:"positive_response_rate" firestore:"positiveResponseRate"`
	NegativeResponseRate int `json:"negative_response_rate" firestore:"negativeResponseRate"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserSalesOffer is a sales offer created by an individual sales
// professional. A creator may hold at most one active offer at a time.
type UserSalesOffer struct {
	ID                  string `json:"id" firestore:"id"`
	CreatorID           string `json:"creator_id" firestore:"creatorId"`
	CreatorName         string `json:"creator_name" firestore:"creatorName"`
	Title               string `json:"title" firestore:"title"`
	Description         string `json:"description" firestore:"description"`
	OfferCategory       string `json:"offer_category" firestore:"offerCategory"`
	TargetAudience      string `json:"target_audience" firestore:"targetAudience"`
	CommissionType      string `json:"commission_type" firestore:"commissionType"`
	CommissionRateInput string `json:"commission_rate_input" firestore:"commissionRateInput"`
	ContactNumber       string `json:"contact_number,omitempty" firestore:"contactNumber,omitempty"`
	MediaURL            string `json:"media_url,omitempty" firestore:"mediaUrl,omitempty"`
	Status              string `json:"status" firestore:"status"`

	Views             int `json:"views" firestore:"views"`
	PeerInterestCount int `json:"peer_interest_count" firestore:"peerInterestCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func IsValidPlatformOfferStatus(status string) bool {
	switch status {
	case OfferStatusDraft, OfferStatusActive, OfferStatusPaused,
		OfferStatusCompleted, OfferStatusExpired, OfferStatusFlagged:
		return true
	}
	return false
}

func IsValidSalesOfferStatus(status string) bool {
	switch status {
	case OfferStatusDraft, OfferStatusActive, OfferStatusPaused, OfferStatusCompleted:
		return true
	}
	return false
}
