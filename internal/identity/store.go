package identity

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
	"github.com/swarm-blackjack/tablecore/internal/security"
)

// Store holds user records keyed by UUID, with a secondary unique index on
// email. A single lock covers both maps — password hashing (the only
// CPU-heavy step) happens outside it.
type Store struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*User
	byEmail  map[string]uuid.UUID
	nowFn    func() time.Time
}

func NewStore() *Store {
	return &Store{
		byID:    make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
		nowFn:   time.Now,
	}
}

// dealerEmail is reserved for the synthetic dealer participant in every
// game and can never belong to a real registered user.
const dealerEmail = "dealer"

// Register validates, hashes, and inserts a new user. Hashing runs without
// holding the map lock; the lock is re-acquired briefly to check for a
// duplicate email and insert.
func (s *Store) Register(email, password string) (User, error) {
	if email == dealerEmail {
		return User{}, apierrors.ErrInvalidEmail
	}
	if err := security.ValidateEmail(email); err != nil {
		return User{}, apierrors.ErrInvalidEmail
	}
	missing, _, err := security.ValidatePassword(password)
	if err != nil {
		return User{}, apierrors.MissingPasswordRequirements(missing)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return User{}, apierrors.ErrPasswordHashError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return User{}, apierrors.ErrUserAlreadyExists
	}

	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.nowFn(),
		IsActive:     true,
	}
	s.byID[u.ID] = u
	s.byEmail[email] = u.ID

	return u.Snapshot(), nil
}

// Login resolves by email, rejects inactive accounts, and verifies the
// password hash in constant time. "No such user" and "wrong password" are
// deliberately indistinguishable to the caller.
func (s *Store) Login(email, password string) (User, error) {
	s.mu.RLock()
	id, ok := s.byEmail[email]
	var u *User
	if ok {
		u = s.byID[id]
	}
	s.mu.RUnlock()

	if !ok {
		// Still runs a hash comparison against a placeholder to keep timing
		// uniform between "unknown email" and "wrong password" — the store
		// never reveals which case occurred.
		_, _ = security.VerifyPassword(password, unknownUserPlaceholderHash)
		return User{}, apierrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return User{}, apierrors.ErrAccountInactive
	}

	ok2, err := security.VerifyPassword(password, u.PasswordHash)
	if err != nil || !ok2 {
		return User{}, apierrors.ErrInvalidCredentials
	}

	s.mu.Lock()
	u.LastLogin = s.nowFn()
	snapshot := u.Snapshot()
	s.mu.Unlock()

	return snapshot, nil
}

// unknownUserPlaceholderHash is a fixed, never-matched Argon2id hash used
// only to keep Login's timing profile uniform when no account exists.
const unknownUserPlaceholderHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func (s *Store) Get(id uuid.UUID) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return User{}, apierrors.ErrUserNotFound
	}
	return u.Snapshot(), nil
}

func (s *Store) GetByEmail(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return User{}, apierrors.ErrUserNotFound
	}
	return s.byID[id].Snapshot(), nil
}

// ChangePassword verifies the old password, validates the new one, and
// re-hashes — hashing again happens outside the lock.
func (s *Store) ChangePassword(userID uuid.UUID, oldPassword, newPassword string) error {
	s.mu.RLock()
	u, ok := s.byID[userID]
	s.mu.RUnlock()
	if !ok {
		return apierrors.ErrUserNotFound
	}

	ok2, err := security.VerifyPassword(oldPassword, u.PasswordHash)
	if err != nil || !ok2 {
		return apierrors.ErrInvalidCredentials
	}

	missing, _, err := security.ValidatePassword(newPassword)
	if err != nil {
		return apierrors.MissingPasswordRequirements(missing)
	}

	newHash, err := security.HashPassword(newPassword)
	if err != nil {
		return apierrors.ErrPasswordHashError
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u.PasswordHash = newHash
	return nil
}

func (s *Store) SetActive(userID uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[userID]
	if !ok {
		return apierrors.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}
