package mysql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql"
)

func TestCommentStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment`")).
		WillReturnResult(sqlmock.NewResult(12, 1))

	c := &domain.Comment{ArticleID: 1, Text: faker.Sentence(), IsRoot: true, UserID: 3, CreateDt: baseTime}
	err := repo.Store(context.TODO(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(12), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	rows := sqlmock.NewRows(commentColumns).AddRow(5, 1, "hello", 2, 1, false, 3, baseTime)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE id = ?")).WillReturnRows(rows)

	c, err := repo.GetByID(context.TODO(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)
	assert.Equal(t, "hello", c.Text)
	require.NotNil(t, c.ParentID)
	assert.Equal(t, int64(2), *c.ParentID)
	assert.Equal(t, 1, c.Level)
}

func TestCommentGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment`")).
		WillReturnRows(sqlmock.NewRows(commentColumns))

	_, err := repo.GetByID(context.TODO(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentFetchByArticle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	rows := sqlmock.NewRows(commentColumns).
		AddRow(1, 9, "root", nil, 0, true, 3, baseTime).
		AddRow(2, 9, "reply", 1, 1, false, 4, baseTime.Add(time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE article_id = ? ORDER BY create_dt,id")).
		WithArgs(9).
		WillReturnRows(rows)

	list, err := repo.FetchByArticle(context.TODO(), 9)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].ParentID)
	assert.True(t, list[0].IsRoot)
	assert.Equal(t, int64(1), *list[1].ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteRemovesDescendants(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(2, 9, "reply", 1, 1, false, 4, baseTime))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE article_id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, 9, "root", nil, 0, true, 3, baseTime).
			AddRow(2, 9, "reply", 1, 1, false, 4, baseTime).
			AddRow(3, 9, "deeper", 2, 2, false, 5, baseTime).
			AddRow(4, 9, "other", 1, 1, false, 5, baseTime).
			AddRow(5, 9, "deepest", 3, 3, false, 6, baseTime))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `comment` WHERE id IN (?,?,?)")).
		WithArgs(2, 3, 5).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	removed, err := repo.Delete(context.TODO(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5}, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(commentColumns))
	mock.ExpectRollback()

	_, err := repo.Delete(context.TODO(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	rows := sqlmock.NewRows(commentColumns).AddRow(1, 9, "hi bob", nil, 0, true, 3, baseTime)
	mock.ExpectQuery("SELECT DISTINCT comment\\.\\* FROM `comment` LEFT JOIN `user` ON .* " +
		"WHERE `comment`\\.`article_id` = \\? AND \\(LOWER\\(`comment`\\.`comment`\\) LIKE LOWER\\(\\?\\) " +
		"OR LOWER\\(`user`\\.`username`\\) LIKE LOWER\\(\\?\\)\\) ORDER BY").
		WillReturnRows(rows)

	list, err := repo.Search(context.TODO(), domain.CommentSearch{
		ArticleID: 9,
		Term:      "bob",
		Fields:    []string{"comment", "user.username"},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hi bob", list[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentSearchCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	mock.ExpectQuery("WHERE `comment`\\.`create_dt` > \\? AND 1 = 0").
		WillReturnRows(sqlmock.NewRows(commentColumns))

	list, err := repo.Search(context.TODO(), domain.CommentSearch{
		Term:   "x",
		Cursor: repository.EncodeCursor(baseTime),
	})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentSearchBadCursor(t *testing.T) {
	db, _ := newMockDB(t)
	repo := mysql.NewCommentRepository(db)

	_, err := repo.Search(context.TODO(), domain.CommentSearch{Cursor: "not-a-cursor"})
	assert.True(t, errors.Is(err, domain.ErrBadParamInput))
}
