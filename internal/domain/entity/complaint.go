package entity

import (
	"time"
)

const (
	ComplaintStatusPending    = "Pending"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
	ComplaintStatusClosed     = "Closed"
)

const (
	ComplaintTypeAgainstUser    = "againstUser"
	ComplaintTypePlatformIssue  = "platformIssue"
	ComplaintTypeFeatureRequest = "featureRequest"
	ComplaintTypeOther          = "other"
)

// AdminNote is one entry in a complaint's append-only notes log. Notes are
// never edited or removed.
type AdminNote struct {
	Note      string    `json:"note" firestore:"note"`
	AdminID   string    `json:"admin_id" firestore:"adminId"`
	AdminName string    `json:"admin_name" firestore:"adminName"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

type Complaint struct {
	ID                   string `json:"id" firestore:"id"`
	ComplainantUID       string `json:"complainant_uid" firestore:"complainantUid"`
	ComplainantName      string `json:"complainant_name" firestore:"complainantName"`
	ComplainantEmail     string `json:"complainant_email" firestore:"complainantEmail"`
	ComplainantType      string `json:"complainant_type" firestore:"complainantType"`
	ComplaintType        string `json:"complaint_type" firestore:"complaintType"`
	TargetUserIdentifier string `json:"target_user_identifier,omitempty" firestore:"targetUserIdentifier,omitempty"`
	Subject              string `json:"subject" firestore:"subject"`
	Description          string `json:"description" firestore:"description"`

	// Status is a free-form enum field: admins may set any status from any
	// status, there is no enforced transition graph.
	Status     string      `json:"status" firestore:"status"`
	AdminNotes []AdminNote `json:"admin_notes" firestore:"adminNotes"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func IsValidComplaintStatus(status string) bool {
	switch status {
	case ComplaintStatusPending, ComplaintStatusInProgress,
		ComplaintStatusResolved, ComplaintStatusClosed:
		return true
	}
	return false
}

func IsValidComplaintType(complaintType string) bool {
	switch complaintType {
	case ComplaintTypeAgainstUser, ComplaintTypePlatformIssue,
		ComplaintTypeFeatureRequest, ComplaintTypeOther:
		return true
	}
	return false
}
