package repository

import (
	"database/sql"
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
	"famify/internal/utils"
)

// FamilyRepository handles database operations for families and memberships
type FamilyRepository struct {
	db *database.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *database.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// inviteCodeRetries bounds retry attempts on invite code collision
const inviteCodeRetries = 5

// CreateFamily creates a family with a generated unique invite code and adds
// the creator as a parent member. Both inserts run in one transaction so a
// failure on the membership insert cannot leave an orphaned family behind.
func (r *FamilyRepository) CreateFamily(name string, creatorUserID int64) (*models.Family, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Pick an unused invite code before inserting; a failed INSERT would
	// abort the transaction on PostgreSQL.
	var inviteCode string
	for attempt := 0; ; attempt++ {
		inviteCode, err = utils.GenerateInviteCode()
		if err != nil {
			return nil, err
		}

		var count int
		if err := tx.QueryRow("SELECT COUNT(*) FROM families WHERE invite_code = ?", inviteCode).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to check invite code: %w", err)
		}
		if count == 0 {
			break
		}
		if attempt >= inviteCodeRetries {
			return nil, fmt.Errorf("could not generate a unique invite code")
		}
	}

	query := "INSERT INTO families (name, invite_code, created_by) VALUES (?, ?, ?)"
	familyID, err := tx.ExecReturningID(query, name, inviteCode, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create family: %w", err)
	}

	query = "INSERT INTO family_members (family_id, user_id, role) VALUES (?, ?, ?)"
	if _, err := tx.Exec(query, familyID, creatorUserID, models.RoleParent); err != nil {
		return nil, fmt.Errorf("failed to add family member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Family{
		ID:         familyID,
		Name:       name,
		InviteCode: inviteCode,
		CreatedBy:  creatorUserID,
		CreatedAt:  time.Now(),
	}, nil
}

const familyColumns = "id, name, invite_code, COALESCE(created_by, 0), created_at"

func scanFamily(row interface{ Scan(...interface{}) error }) (*models.Family, error) {
	family := &models.Family{}
	err := row.Scan(
		&family.ID,
		&family.Name,
		&family.InviteCode,
		&family.CreatedBy,
		&family.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return family, nil
}

// GetFamilyByID retrieves a family by ID
func (r *FamilyRepository) GetFamilyByID(familyID int64) (*models.Family, error) {
	family, err := scanFamily(r.db.QueryRow("SELECT "+familyColumns+" FROM families WHERE id = ?", familyID))
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return family, nil
}

// GetFamilyByInviteCode retrieves a family by its invite code
func (r *FamilyRepository) GetFamilyByInviteCode(code string) (*models.Family, error) {
	family, err := scanFamily(r.db.QueryRow("SELECT "+familyColumns+" FROM families WHERE invite_code = ?", code))
	if err != nil {
		return nil, fmt.Errorf("failed to get family by invite code: %w", err)
	}
	return family, nil
}

// GetMembershipsByUser retrieves all membership rows for a user, most recent
// join first. The resolver relies on this ordering for its tie-break.
func (r *FamilyRepository) GetMembershipsByUser(userID int64) ([]models.FamilyMember, error) {
	query := `
		SELECT id, family_id, user_id, role, joined_at
		FROM family_members
		WHERE user_id = ?
		ORDER BY joined_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	var members []models.FamilyMember
	for rows.Next() {
		var m models.FamilyMember
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// AddMember adds a user to a family with the given role
func (r *FamilyRepository) AddMember(familyID, userID int64, role string) (*models.FamilyMember, error) {
	query := "INSERT INTO family_members (family_id, user_id, role) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, familyID, userID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to add family member: %w", err)
	}
	return &models.FamilyMember{
		ID:       id,
		FamilyID: familyID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	}, nil
}

// IsMember checks if a user is a member of a family
func (r *FamilyRepository) IsMember(userID, familyID int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM family_members WHERE user_id = ? AND family_id = ?"
	if err := r.db.QueryRow(query, userID, familyID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check family membership: %w", err)
	}
	return count > 0, nil
}

// GetMembersWithUsers retrieves the roster of a family: membership rows joined
// with each member's display attributes, in join order.
func (r *FamilyRepository) GetMembersWithUsers(familyID int64) ([]models.MemberWithUser, error) {
	query := `
		SELECT fm.id, fm.family_id, fm.user_id, fm.role, fm.joined_at, u.name, u.email
		FROM family_members fm
		INNER JOIN users u ON fm.user_id = u.id
		WHERE fm.family_id = ?
		ORDER BY fm.joined_at ASC, fm.id ASC
	`
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query family members: %w", err)
	}
	defer rows.Close()

	var members []models.MemberWithUser
	for rows.Next() {
		var m models.MemberWithUser
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.UserID, &m.Role, &m.JoinedAt, &m.Name, &m.Email); err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
