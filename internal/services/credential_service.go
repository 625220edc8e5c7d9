package services

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/utils"
)

// BcryptCost is deliberately above the library default; password hashing is
// the one place slow is a feature.
const BcryptCost = 12

// CredentialService owns password hashing, token issuance and the
// account-lock check.
type CredentialService struct {
	jwtSecret string
	tokenTTL  time.Duration
}

// NewCredentialService constructs a CredentialService.
func NewCredentialService(jwtSecret string, tokenTTL time.Duration) *CredentialService {
	return &CredentialService{jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Hash returns a bcrypt hash of the password.
func (s *CredentialService) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

// Verify compares a plaintext password against its stored hash.
func (s *CredentialService) Verify(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// IssueToken signs a JWT embedding identity, role and email.
func (s *CredentialService) IssueToken(userID uuid.UUID, role models.Role, email string) (string, error) {
	return utils.GenerateToken(s.jwtSecret, userID, role, email, s.tokenTTL)
}

// CheckLock fails when the account is locked until a future time. Nothing in
// the login path currently sets the lock; the check is the enforcement hook.
func (s *CredentialService) CheckLock(user *models.User) error {
	if user.AccountLockedUntil != nil && user.AccountLockedUntil.After(time.Now()) {
		return ErrAccountLocked
	}
	return nil
}
