package service

import (
	"errors"
	"fmt"
	"strings"

	"famify/internal/models"
	"famify/internal/repository"
	"famify/internal/validation"
)

var (
	ErrFamilyNotFound     = errors.New("family not found")
	ErrNotFamilyMember    = errors.New("user is not a member of this family")
	ErrAlreadyMember      = errors.New("user is already a member of this family")
	ErrOrphanedMembership = errors.New("membership references a missing family")
)

// FamilyService resolves the active family context for a session and handles
// the create/join transitions that establish it.
type FamilyService struct {
	familyRepo *repository.FamilyRepository
	userRepo   *repository.UserRepository
}

// NewFamilyService creates a new family service
func NewFamilyService(familyRepo *repository.FamilyRepository, userRepo *repository.UserRepository) *FamilyService {
	return &FamilyService{
		familyRepo: familyRepo,
		userRepo:   userRepo,
	}
}

// ResolveActiveFamily determines the single family the UI should treat as
// current for a user. Returns (nil, nil) when the user has no membership —
// a normal state the caller routes to family setup, never an error.
//
// The schema does not prevent a user from belonging to several families;
// when that happens the most recently joined membership wins. That policy is
// deterministic, so repeated calls observe the same family.
func (s *FamilyService) ResolveActiveFamily(userID int64) (*models.ActiveFamily, error) {
	memberships, err := s.familyRepo.GetMembershipsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve memberships: %w", err)
	}
	if len(memberships) == 0 {
		return nil, nil
	}

	// Memberships are ordered most recent join first
	selected := memberships[0]

	family, err := s.familyRepo.GetFamilyByID(selected.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load family: %w", err)
	}
	if family == nil {
		// A membership row pointing at a deleted family is an integrity
		// problem, not an empty result; surface it.
		return nil, fmt.Errorf("%w: family %d for user %d", ErrOrphanedMembership, selected.FamilyID, userID)
	}

	members, err := s.familyRepo.GetMembersWithUsers(family.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load family roster: %w", err)
	}

	return &models.ActiveFamily{Family: *family, Members: members}, nil
}

// CreateFamily creates a new family with the user as its first parent member.
// The returned family is immediately the user's active family.
func (s *FamilyService) CreateFamily(userID int64, name string) (*models.Family, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateFamilyName(name); err != nil {
		return nil, err
	}

	family, err := s.familyRepo.CreateFamily(name, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create family: %w", err)
	}
	return family, nil
}

// JoinFamily adds the user to the family matching the invite code. Joiners
// always get the parent role; there is no invite-time role negotiation.
func (s *FamilyService) JoinFamily(userID int64, inviteCode string) (*models.Family, error) {
	inviteCode = strings.ToUpper(strings.TrimSpace(inviteCode))
	if err := validation.ValidateInviteCode(inviteCode); err != nil {
		return nil, err
	}

	family, err := s.familyRepo.GetFamilyByInviteCode(inviteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}

	isMember, err := s.familyRepo.IsMember(userID, family.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, ErrAlreadyMember
	}

	if _, err := s.familyRepo.AddMember(family.ID, userID, models.RoleParent); err != nil {
		return nil, fmt.Errorf("failed to join family: %w", err)
	}
	return family, nil
}

// VerifyFamilyAccess checks if a user is a member of a family
func (s *FamilyService) VerifyFamilyAccess(userID, familyID int64) error {
	isMember, err := s.familyRepo.IsMember(userID, familyID)
	if err != nil {
		return fmt.Errorf("failed to verify family access: %w", err)
	}
	if !isMember {
		return ErrNotFamilyMember
	}
	return nil
}

// GetFamily retrieves a family by ID
func (s *FamilyService) GetFamily(familyID int64) (*models.Family, error) {
	family, err := s.familyRepo.GetFamilyByID(familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}
	return family, nil
}
