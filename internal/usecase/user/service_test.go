package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/domain/mocks"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}

func newService() (*service, *mocks.UserRepository, *mocks.TokenRepository) {
	users := new(mocks.UserRepository)
	tokens := new(mocks.TokenRepository)
	svc := NewService(users, tokens)
	svc.newKey = func() (string, error) { return "k3y", nil }
	return svc, users, tokens
}

func TestGenerateKey(t *testing.T) {
	a, err := generateKey()
	require.NoError(t, err)
	b, err := generateKey()
	require.NoError(t, err)
	assert.Len(t, a, 40)
	assert.NotEqual(t, a, b)
}

func TestLogin(t *testing.T) {
	svc, users, tokens := newService()
	users.On("GetByUsername", mock.Anything, "admin").Return(domain.User{ID: 1, Username: "admin", Password: hash(t, "admin")}, nil)
	tokens.On("GetByUserID", mock.Anything, int64(1)).Return(domain.Token{Key: "existing", UserID: 1}, nil).Once()

	key, err := svc.Login(context.TODO(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "existing", key)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, tokens := newService()
	users.On("GetByUsername", mock.Anything, "admin").Return(domain.User{ID: 1, Password: hash(t, "admin")}, nil)

	_, err := svc.Login(context.TODO(), "admin", "nope")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	tokens.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, users, _ := newService()
	users.On("GetByUsername", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound)

	_, err := svc.Login(context.TODO(), "ghost", "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureUserExisting(t *testing.T) {
	svc, users, _ := newService()
	users.On("GetByUsername", mock.Anything, "admin").Return(domain.User{ID: 3, Username: "admin"}, nil).Once()

	u, created, err := svc.EnsureUser(context.TODO(), "admin", "admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(3), u.ID)
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestEnsureUserCreates(t *testing.T) {
	svc, users, _ := newService()
	users.On("GetByUsername", mock.Anything, "admin").Return(domain.User{}, domain.ErrNotFound).Once()
	users.On("Insert", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = 7 }).
		Return(nil).Once()

	u, created, err := svc.EnsureUser(context.TODO(), "admin", "admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(7), u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("admin")))
}

func TestEnsureUserRace(t *testing.T) {
	svc, users, _ := newService()
	users.On("GetByUsername", mock.Anything, "admin").Return(domain.User{}, domain.ErrNotFound).Once()
	users.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()
	users.On("GetByUsername", mock.Anything, "admin").Return(domain.User{ID: 9}, nil).Once()

	u, created, err := svc.EnsureUser(context.TODO(), "admin", "admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(9), u.ID)
}

func TestIssueTokenCreates(t *testing.T) {
	svc, _, tokens := newService()
	tokens.On("GetByUserID", mock.Anything, int64(1)).Return(domain.Token{}, domain.ErrNotFound).Once()
	tokens.On("Store", mock.Anything, &domain.Token{Key: "k3y", UserID: 1}).Return(nil).Once()

	tok, err := svc.IssueToken(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, "k3y", tok.Key)
	tokens.AssertExpectations(t)
}

func TestIssueTokenKeyError(t *testing.T) {
	svc, _, tokens := newService()
	svc.newKey = func() (string, error) { return "", errors.New("no entropy") }
	tokens.On("GetByUserID", mock.Anything, int64(1)).Return(domain.Token{}, domain.ErrNotFound).Once()

	_, err := svc.IssueToken(context.TODO(), 1)
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	svc, users, tokens := newService()
	tokens.On("GetByKey", mock.Anything, "good").Return(domain.Token{Key: "good", UserID: 2}, nil)
	tokens.On("GetByKey", mock.Anything, "bad").Return(domain.Token{}, domain.ErrNotFound)
	users.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2, Username: "bob"}, nil)

	u, err := svc.Authenticate(context.TODO(), "good")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)

	_, err = svc.Authenticate(context.TODO(), "bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Authenticate(context.TODO(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
