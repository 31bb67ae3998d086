package entity

import (
	"time"
)

type Inquiry struct {
	ID      string `json:"id" firestore:"id"`
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Subject string `json:"subject" firestore:"subject"`
	Message string `json:"message" firestore:"message"`
	UserID  string `json:"user_id,omitempty" firestore:"userId,omitempty"`
	Handled bool   `json:"handled" firestore:"handled"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
