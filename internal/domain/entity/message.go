package entity

import (
	"time"
)

type DirectMessage struct {
	ID          string    `json:"id" firestore:"id"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	SenderName  string    `json:"sender_name" firestore:"senderName"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	Content     string    `json:"content" firestore:"content"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
