package models

import "time"

// Member roles within a family
const (
	RoleParent    = "parent"
	RoleChild     = "child"
	RoleCaregiver = "caregiver"
)

// Family is the grouping unit all domain data is scoped to
type Family struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
	CreatedBy  int64     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// FamilyMember is the join record granting a user a role within a family
type FamilyMember struct {
	ID       int64     `json:"id"`
	FamilyID int64     `json:"family_id"`
	UserID   int64     `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberWithUser combines a membership row with the member's display attributes
type MemberWithUser struct {
	FamilyMember
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ActiveFamily is the resolved family context for a session: the family
// the UI should treat as current, plus its roster
type ActiveFamily struct {
	Family  Family           `json:"family"`
	Members []MemberWithUser `json:"members"`
}
