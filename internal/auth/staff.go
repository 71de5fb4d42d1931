package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kiwari-pos/dinein/internal/enum"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffNotFound      = errors.New("staff not found")
)

// StaffSeed is a roster entry with its plaintext PIN, used once at start-up.
type StaffSeed struct {
	Username string
	FullName string
	Role     string
	PIN      string
}

// Roster is the fixed team of one outlet: an owner, a cashier and a cook.
func Roster(ownerPIN, cashierPIN, kitchenPIN string) []StaffSeed {
	return []StaffSeed{
		{Username: "pemilik", FullName: "Pemilik", Role: enum.UserRoleOwner, PIN: ownerPIN},
		{Username: "kasir", FullName: "Kasir", Role: enum.UserRoleCashier, PIN: cashierPIN},
		{Username: "dapur", FullName: "Dapur", Role: enum.UserRoleKitchen, PIN: kitchenPIN},
	}
}

// Staff is a member of the restaurant team who can sign in to the
// cashier, kitchen or admin screens.
type Staff struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	pinHash  []byte
}

// Directory is the in-memory staff roster. It is read-only after
// NewDirectory returns.
type Directory struct {
	byUsername map[string]Staff
	byID       map[uuid.UUID]Staff
}

// NewDirectory hashes each seed PIN with bcrypt and indexes the roster.
// IDs are derived from usernames so tokens survive a restart.
func NewDirectory(seeds []StaffSeed) (*Directory, error) {
	d := &Directory{
		byUsername: make(map[string]Staff, len(seeds)),
		byID:       make(map[uuid.UUID]Staff, len(seeds)),
	}
	for _, s := range seeds {
		if s.Username == "" || s.PIN == "" {
			return nil, fmt.Errorf("staff %q: username and pin are required", s.Username)
		}
		if _, dup := d.byUsername[s.Username]; dup {
			return nil, fmt.Errorf("staff %q: duplicate username", s.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash pin for %q: %w", s.Username, err)
		}
		st := Staff{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.Username)),
			Username: s.Username,
			FullName: s.FullName,
			Role:     s.Role,
			pinHash:  hash,
		}
		d.byUsername[st.Username] = st
		d.byID[st.ID] = st
	}
	return d, nil
}

// Authenticate checks a username + PIN pair.
func (d *Directory) Authenticate(username, pin string) (Staff, error) {
	st, ok := d.byUsername[username]
	if !ok {
		return Staff{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(st.pinHash, []byte(pin)); err != nil {
		return Staff{}, ErrInvalidCredentials
	}
	return st, nil
}

// ByID looks up a staff member, e.g. when refreshing a token.
func (d *Directory) ByID(id uuid.UUID) (Staff, error) {
	st, ok := d.byID[id]
	if !ok {
		return Staff{}, ErrStaffNotFound
	}
	return st, nil
}
