package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore is an in-memory role store
type fakeStore struct {
	mu          sync.Mutex
	role        entity.Role
	phone       bool
	identities  []*entity.Identity
	findErr     error
	lookups     int
	updateCalls int
}

func newFakeStore(role entity.Role, phone bool, identities ...*entity.Identity) *fakeStore {
	return &fakeStore{role: role, phone: phone, identities: identities}
}

func (f *fakeStore) Role() entity.Role   { return f.role }
func (f *fakeStore) SupportsPhone() bool { return f.phone }

func (f *fakeStore) FindByContact(_ context.Context, contact entity.Contact) (*entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++

	if f.findErr != nil {
		return nil, f.findErr
	}
	if contact.IsPhone() && !f.phone {
		return nil, nil
	}

	for _, identity := range f.identities {
		if matches(identity, contact) {
			copied := *identity
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateCredential(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++

	for _, identity := range f.identities {
		if identity.ID == id {
			identity.PasswordHash = hash
			return nil
		}
	}
	return fmt.Errorf("identity %s: %w", id, repository.ErrNotFound)
}

func (f *fakeStore) hashOf(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, identity := range f.identities {
		if identity.ID == id {
			return identity.PasswordHash
		}
	}
	return ""
}

func matches(identity *entity.Identity, contact entity.Contact) bool {
	if contact.IsPhone() {
		return identity.PhoneNumber != nil && *identity.PhoneNumber == contact.Value
	}
	return identity.Email == contact.Value
}

// fakeUserStore is the user store with the account queries on top
type fakeUserStore struct {
	*fakeStore
	users []*entity.User
}

func newFakeUserStore(users ...*entity.User) *fakeUserStore {
	store := &fakeUserStore{fakeStore: newFakeStore(entity.RoleUser, true), users: users}
	for _, u := range users {
		store.identities = append(store.identities, &u.Identity)
	}
	return store
}

func (f *fakeUserStore) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, user)
	f.identities = append(f.identities, &user.Identity)
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindAll(_ context.Context, _ string, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset >= len(f.users) {
		return nil, nil
	}
	end := len(f.users)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return f.users[offset:end], nil
}

func (f *fakeUserStore) Count(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			f.identities[i] = &user.Identity
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserStore) AddCredits(_ context.Context, id uuid.UUID, amount int) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u.CreditsLeft += amount
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			f.identities = append(f.identities[:i], f.identities[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeTokenStore keeps reset tokens in memory
type fakeTokenStore struct {
	mu        sync.Mutex
	tokens    map[uuid.UUID]*entity.ResetToken
	createErr error
	deletes   int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[uuid.UUID]*entity.ResetToken{}}
}

func (f *fakeTokenStore) Create(_ context.Context, token *entity.ResetToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token.ID] = token
	return nil
}

func (f *fakeTokenStore) FindByToken(_ context.Context, code string) (*entity.ResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found *entity.ResetToken
	for _, t := range f.tokens {
		if t.Token == code && (found == nil || t.CreatedAt.After(found.CreatedAt)) {
			found = t
		}
	}
	return found, nil
}

func (f *fakeTokenStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if _, ok := f.tokens[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tokens, id)
	return nil
}

func (f *fakeTokenStore) DeleteByContact(_ context.Context, contact entity.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, t := range f.tokens {
		if c, ok := t.Contact(); ok && c == contact {
			delete(f.tokens, id)
		}
	}
	return nil
}

func (f *fakeTokenStore) all() []*entity.ResetToken {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokens := make([]*entity.ResetToken, 0, len(f.tokens))
	for _, t := range f.tokens {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].CreatedAt.Before(tokens[j].CreatedAt) })
	return tokens
}

// fakeSessionStore keeps sessions in memory
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions []*entity.Session
}

func (f *fakeSessionStore) Create(_ context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionStore) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionStore) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.Token.String() == token {
			now := time.Now()
			s.RevokedAt = &now
		}
	}
	return nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	return m.Called(ctx, email, token).Error(0)
}

func (m *mockNotifier) SendPasswordResetSMS(ctx context.Context, phone, token string) error {
	return m.Called(ctx, phone, token).Error(0)
}

func (m *mockNotifier) SendUserCreatedEmail(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func (m *mockNotifier) SendLatestUpdatesEmail(ctx context.Context, email, title, message string) error {
	return m.Called(ctx, email, title, message).Error(0)
}

func testHasher() CredentialHasher {
	return utils.NewBcryptHasher(bcrypt.MinCost)
}

func testConfig() *utils.Config {
	return &utils.Config{
		App:     utils.AppConfig{Name: "project-portal", URL: "https://portal.example.com"},
		Session: utils.SessionConfig{ExpiryHours: 24},
		OTP:     utils.OTPConfig{ExpiryMinutes: 60, Length: 6},
	}
}

func newIdentity(t *testing.T, role entity.Role, email string, phone *string, password string) *entity.Identity {
	t.Helper()
	hash, err := testHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	now := time.Now()
	return &entity.Identity{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FullName:     role.String() + " " + email,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         role,
	}
}

func strPtr(s string) *string {
	return &s
}
