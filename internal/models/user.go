package models

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RolePartner Role = "partner"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DisplayName  string    `gorm:"not null;default:''" json:"display_name"`
	Role         Role      `gorm:"not null;default:owner" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// Name returns the label shown to other users, falling back to the email address.
func (user User) Name() string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Email
}

type PartnerLinkStatus string

const (
	PartnerLinkPending  PartnerLinkStatus = "pending"
	PartnerLinkAccepted PartnerLinkStatus = "accepted"
)

type PartnerLink struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	OwnerID    uint              `gorm:"not null;index" json:"owner_id"`
	PartnerID  *uint             `gorm:"index" json:"partner_id"`
	InviteCode string            `gorm:"uniqueIndex;not null" json:"invite_code"`
	Status     PartnerLinkStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	AcceptedAt *time.Time        `json:"accepted_at"`
}

// CounterpartOf returns the other side of an accepted link.
func (link PartnerLink) CounterpartOf(userID uint) (uint, bool) {
	if link.Status != PartnerLinkAccepted || link.PartnerID == nil {
		return 0, false
	}
	switch userID {
	case link.OwnerID:
		return *link.PartnerID, true
	case *link.PartnerID:
		return link.OwnerID, true
	default:
		return 0, false
	}
}
