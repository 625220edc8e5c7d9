package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

// RegisterProfile carries the validated registration payload.
type RegisterProfile struct {
	FirstName  string
	LastName   string
	Email      string
	MobileNo   string
	Password   string
	Address    string
	City       string
	PostalCode string
	State      string
	Country    string
}

// AccountService orchestrates the activation lifecycle:
// register -> OTP issued -> confirm -> active.
type AccountService struct {
	users store.UserStore
	otps  *OTPService
	creds *CredentialService
}

// NewAccountService constructs an AccountService.
func NewAccountService(users store.UserStore, otps *OTPService, creds *CredentialService) *AccountService {
	return &AccountService{users: users, otps: otps, creds: creds}
}

// Register creates an inactive pending account and issues its first OTP.
// Both uniqueness lookups must clear before anything is persisted.
func (s *AccountService) Register(profile RegisterProfile) (*models.User, error) {
	emailTaken, err := s.users.EmailExists(profile.Email)
	if err != nil {
		return nil, err
	}
	mobileTaken, err := s.users.MobileExists(profile.MobileNo)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, ErrEmailTaken
	}
	if mobileTaken {
		return nil, ErrMobileTaken
	}

	hash, err := s.creds.Hash(profile.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Email:        profile.Email,
		MobileNo:     profile.MobileNo,
		PasswordHash: hash,
		Address:      profile.Address,
		City:         profile.City,
		PostalCode:   profile.PostalCode,
		State:        profile.State,
		Country:      profile.Country,
		Role:         models.RoleGuest,
		Status:       models.StatusPending,
		IsActive:     false,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	if _, err := s.otps.Issue(user.Email); err != nil {
		// The account exists; the user can request a fresh code via login.
		log.Printf("[Account] OTP issue failed for %s: %v", user.Email, err)
	}

	return user, nil
}

// Login authenticates by email and password and returns the account with a
// signed token. An absent account, an inactive account and a wrong password
// are indistinguishable to the caller.
func (s *AccountService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.creds.CheckLock(user); err != nil {
		return nil, "", err
	}

	if !user.IsActive || !s.creds.Verify(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.creds.IssueToken(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if err := s.users.RecordLogin(user.ID, now); err != nil {
		return nil, "", err
	}
	user.LastLogin = &now

	return user, token, nil
}

// ResendOTP issues a fresh code for an account that has not activated yet.
// The new code invalidates any unconsumed predecessor.
func (s *AccountService) ResendOTP(email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if user.IsActive {
		return ErrAlreadyActive
	}

	_, err = s.otps.Issue(user.Email)
	return err
}

// ConfirmOTP consumes the code and activates the account. Confirming an
// already-active account is rejected without touching the code store.
func (s *AccountService) ConfirmOTP(email, code string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCode
		}
		return err
	}
	if user.IsActive {
		return ErrAlreadyActive
	}

	if err := s.otps.Consume(email, code); err != nil {
		return err
	}

	return s.users.Activate(email)
}

// Approve records the admin decision on a pending account.
func (s *AccountService) Approve(userID uuid.UUID, status models.AccountStatus) (*models.User, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, ErrInvalidTransition
	}

	user, err := s.users.SetStatus(userID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
