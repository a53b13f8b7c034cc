package resttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/uniq"
)

// MemoryAccounts keeps users and tokens in memory. It serves as Accounts and
// as the domain.Authenticator of the auth middleware in handler tests.
type MemoryAccounts struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
	tokens map[int64]domain.Token
}

var _ domain.Authenticator = (*MemoryAccounts)(nil)
var _ Accounts = (*MemoryAccounts)(nil)

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{
		users:  make(map[string]domain.User),
		tokens: make(map[int64]domain.Token),
	}
}

func (m *MemoryAccounts) EnsureUser(_ context.Context, username, password string) (domain.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.users[username]; ok {
		return u, false, nil
	}
	m.nextID++
	u := domain.User{ID: m.nextID, Username: username, Password: password}
	m.users[username] = u
	return u, true, nil
}

func (m *MemoryAccounts) IssueToken(_ context.Context, userID int64) (domain.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.tokens[userID]; ok {
		return t, nil
	}
	t := domain.Token{Key: fmt.Sprintf("%d-%s", userID, uniq.Code()), UserID: userID}
	m.tokens[userID] = t
	return t, nil
}

func (m *MemoryAccounts) Authenticate(_ context.Context, key string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tokens {
		if t.Key != key {
			continue
		}
		for _, u := range m.users {
			if u.ID == t.UserID {
				return u, nil
			}
		}
	}
	return domain.User{}, domain.ErrUnauthorized
}
