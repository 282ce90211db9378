package user

import (
	"fmt"
	"strings"

	"helpdesk/internal/shared/authorization"
)

// User represents the user aggregate (pure domain model without persistence concerns)
type User struct {
	id           uint
	email        string
	passwordHash string
	role         authorization.UserRole
	orgID        *uint
}

// NewUser creates a new user bound to an organization. The plaintext password
// is hashed through the given hasher; a fresh salt is generated per call.
func NewUser(email, password string, orgID uint, hasher PasswordHasher) (*User, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if orgID == 0 {
		return nil, fmt.Errorf("org ID is required")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		email:        email,
		passwordHash: hash,
		role:         authorization.RoleOwner,
		orgID:        &orgID,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(id uint, email, passwordHash string, role authorization.UserRole, orgID *uint) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		orgID:        orgID,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) OrgID() *uint {
	return u.orgID
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) HasOrg() bool {
	return u.orgID != nil && *u.orgID != 0
}

// AttachOrg binds an org to a user that has none. Idempotent: attaching when
// an org is already set is a no-op.
func (u *User) AttachOrg(orgID uint) {
	if u.HasOrg() {
		return
	}
	u.orgID = &orgID
}

// VerifyPassword checks the plaintext against the stored hash. Any failure,
// including a malformed stored hash, reads as a plain verification failure.
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("invalid password")
	}
	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

// EmailLocalPart returns the part of the email before the @, used to name the
// default organization created at signup.
func (u *User) EmailLocalPart() string {
	return EmailLocalPart(u.email)
}

// EmailLocalPart returns the local part of an email address.
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || len(email) > 255 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
