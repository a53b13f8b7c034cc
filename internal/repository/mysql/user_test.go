package mysql_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql"
)

func TestUserGetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewUserRepository(db)

	name := faker.Username()
	rows := sqlmock.NewRows([]string{"id", "username", "password", "created_at", "updated_at"}).
		AddRow(4, name, "hash", baseTime, baseTime)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE username = ?")).WillReturnRows(rows)

	u, err := repo.GetByUsername(context.TODO(), name)
	require.NoError(t, err)
	assert.Equal(t, int64(4), u.ID)
	assert.Equal(t, name, u.Username)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.TODO(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `user`")).WillReturnResult(sqlmock.NewResult(8, 1))

	u := &domain.User{Username: faker.Username(), Password: "hash"}
	require.NoError(t, repo.Insert(context.TODO(), u))
	assert.Equal(t, int64(8), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenGetByKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewTokenRepository(db)

	rows := sqlmock.NewRows([]string{"key", "user_id", "created_at"}).AddRow("abc", 4, baseTime)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `authtoken_token` WHERE `key` = ?")).WillReturnRows(rows)

	tok, err := repo.GetByKey(context.TODO(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(4), tok.UserID)
}

func TestTokenStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewTokenRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `authtoken_token`")).WillReturnResult(sqlmock.NewResult(0, 1))

	tok := &domain.Token{Key: "abc", UserID: 4}
	require.NoError(t, repo.Store(context.TODO(), tok))
	assert.False(t, tok.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
