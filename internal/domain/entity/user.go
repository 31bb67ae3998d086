package entity

import (
	"time"
)

const (
	RoleFounder           = "founder"
	RoleInvestor          = "investor"
	RoleSalesProfessional = "salesProfessional"
	RoleCorporate         = "corporate"
	RoleAdmin             = "admin"
)

type User struct {
	ID         string `json:"id" firestore:"id"`
	Email      string `json:"email" firestore:"email"`
	Name       string `json:"name" firestore:"name"`
	Phone      string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role       string `json:"role" firestore:"role"`
	Status     string `json:"status" firestore:"status"`
	CompanyName string `json:"company_name,omitempty" firestore:"companyName,omitempty"`
	Bio        string `json:"bio,omitempty" firestore:"bio,omitempty"`
	AvatarSeed string `json:"avatar_seed" firestore:"avatarSeed"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
