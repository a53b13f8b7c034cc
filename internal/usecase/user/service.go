package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/blog-comments/domain"
)

// tokenKeyBytes gives 40 hex characters.
const tokenKeyBytes = 20

type service struct {
	userRepo  domain.UserRepository
	tokenRepo domain.TokenRepository
	newKey    func() (string, error)
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, tokenRepo domain.TokenRepository) *service {
	return &service{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		newKey:    generateKey,
	}
}

func generateKey() (string, error) {
	b := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	token, err := s.IssueToken(ctx, u.ID)
	if err != nil {
		return "", err
	}
	return token.Key, nil
}

// EnsureUser 不存在则创建，存在则原样返回（不校验密码）
func (s *service) EnsureUser(ctx context.Context, username, password string) (domain.User, bool, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("hash password: %w", err)
	}
	u = domain.User{Username: username, Password: string(hashed)}
	err = s.userRepo.Insert(ctx, &u)
	if errors.Is(err, domain.ErrConflict) {
		// 并发创建，读回已有账号
		u, err = s.userRepo.GetByUsername(ctx, username)
		return u, false, err
	}
	if err != nil {
		return domain.User{}, false, err
	}
	return u, true, nil
}

func (s *service) IssueToken(ctx context.Context, userID int64) (domain.Token, error) {
	t, err := s.tokenRepo.GetByUserID(ctx, userID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Token{}, err
	}

	key, err := s.newKey()
	if err != nil {
		return domain.Token{}, fmt.Errorf("generate token key: %w", err)
	}
	t = domain.Token{Key: key, UserID: userID}
	err = s.tokenRepo.Store(ctx, &t)
	if errors.Is(err, domain.ErrConflict) {
		logrus.Warnf("token for user %d created concurrently, reloading", userID)
		return s.tokenRepo.GetByUserID(ctx, userID)
	}
	if err != nil {
		return domain.Token{}, err
	}
	return t, nil
}

func (s *service) Authenticate(ctx context.Context, key string) (domain.User, error) {
	if key == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	t, err := s.tokenRepo.GetByKey(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.User{}, err
	}
	u, err := s.userRepo.GetByID(ctx, t.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrUnauthorized
	}
	return u, err
}
