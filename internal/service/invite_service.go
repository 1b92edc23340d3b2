package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"famify/internal/models"
	"famify/internal/repository"
	"famify/internal/validation"
)

var (
	ErrInvalidInviteToken  = errors.New("invalid or expired invitation")
	ErrInviteEmailMismatch = errors.New("invitation was issued for a different email address")
)

// inviteTokenTTL is how long an emailed invitation stays valid
const inviteTokenTTL = 7 * 24 * time.Hour

// inviteClaims binds an emailed invitation to a family and recipient
type inviteClaims struct {
	FamilyID int64  `json:"family_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// InviteService issues and redeems signed email invitations. Email invites
// complement the plain invite code: the signed token pins the recipient
// address, so a forwarded link cannot be redeemed by someone else.
type InviteService struct {
	familyRepo   *repository.FamilyRepository
	emailService *EmailService
	secret       []byte
}

// NewInviteService creates a new invite service
func NewInviteService(familyRepo *repository.FamilyRepository, emailService *EmailService, secret string) *InviteService {
	return &InviteService{
		familyRepo:   familyRepo,
		emailService: emailService,
		secret:       []byte(secret),
	}
}

// SendInvite emails an invitation to join the inviter's family
func (s *InviteService) SendInvite(ctx context.Context, inviter *models.User, familyID int64, toEmail string) error {
	if err := validation.ValidateEmail(toEmail); err != nil {
		return err
	}

	family, err := s.familyRepo.GetFamilyByID(familyID)
	if err != nil {
		return fmt.Errorf("failed to load family: %w", err)
	}
	if family == nil {
		return ErrFamilyNotFound
	}

	token, err := s.issueToken(familyID, toEmail)
	if err != nil {
		return err
	}

	if err := s.emailService.SendFamilyInvite(ctx, toEmail, inviter.Name, family.Name, token, family.InviteCode); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}
	return nil
}

// AcceptInvite verifies an invitation token and joins the user to the family.
// The redeeming account's email must match the invited address.
func (s *InviteService) AcceptInvite(user *models.User, token string) (*models.Family, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}
	if claims.Email != user.Email {
		return nil, ErrInviteEmailMismatch
	}

	family, err := s.familyRepo.GetFamilyByID(claims.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load family: %w", err)
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}

	isMember, err := s.familyRepo.IsMember(user.ID, family.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, ErrAlreadyMember
	}

	if _, err := s.familyRepo.AddMember(family.ID, user.ID, models.RoleParent); err != nil {
		return nil, fmt.Errorf("failed to join family: %w", err)
	}
	return family, nil
}

// issueToken creates a signed invitation token
func (s *InviteService) issueToken(familyID int64, email string) (string, error) {
	now := time.Now()
	claims := inviteClaims{
		FamilyID: familyID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(inviteTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign invitation token: %w", err)
	}
	return signed, nil
}

// parseToken verifies a signed invitation token
func (s *InviteService) parseToken(tokenString string) (*inviteClaims, error) {
	claims := &inviteClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidInviteToken
	}
	return claims, nil
}
