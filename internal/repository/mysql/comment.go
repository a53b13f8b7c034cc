package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
	"github.com/Guyuepp/blog-comments/internal/search"
	"github.com/Guyuepp/blog-comments/internal/tree"
)

// searchJoins holds the join needed for search fields of other tables.
var searchJoins = map[string]string{
	"user":    "LEFT JOIN `user` ON `user`.`id` = `comment`.`user_id`",
	"article": "LEFT JOIN `article` ON `article`.`id` = `comment`.`article_id`",
}

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Comment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("create_dt").
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomain(comments), nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	var removed []int64
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target model.Comment
		if err := tx.First(&target, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var siblings []model.Comment
		if err := tx.Where("article_id = ?", target.ArticleID).Find(&siblings).Error; err != nil {
			return err
		}
		subtree := tree.NewIndex(toDomain(siblings)).Expand(tree.Seed(id))
		removed = collectIDs(subtree, []int64{id})

		result := tx.Where("id IN ?", removed).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (c *commentRepository) Search(ctx context.Context, q domain.CommentSearch) ([]domain.Comment, error) {
	decodedCursor, err := repository.DecodeCursor(q.Cursor)
	if err != nil && q.Cursor != "" {
		return nil, domain.ErrBadParamInput
	}
	num := q.Num
	repository.PageVerify(&num)

	tx := c.DB.WithContext(ctx).Model(&model.Comment{})
	joined := make(map[string]bool)
	for _, field := range q.Fields {
		table, _, ok := strings.Cut(field, ".")
		if join, known := searchJoins[table]; ok && known && !joined[table] {
			tx = tx.Joins(join)
			joined[table] = true
		}
	}
	if q.ArticleID != 0 {
		tx = tx.Where("`comment`.`article_id` = ?", q.ArticleID)
	}
	if q.Cursor != "" {
		tx = tx.Where("`comment`.`create_dt` > ?", decodedCursor)
	}

	filterSet := search.FilterSet{Fields: q.Fields, Method: search.ParseLookup(q.Method)}
	var comments []model.Comment
	err = filterSet.Apply(tx, q.Term).
		Order("`comment`.`create_dt`").
		Order("`comment`.`id`").
		Limit(int(num)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomain(comments), nil
}

func toDomain(comments []model.Comment) []domain.Comment {
	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res
}

func collectIDs(node *domain.CommentNode, acc []int64) []int64 {
	for _, c := range node.Children {
		acc = append(acc, c.ID)
		acc = collectIDs(c, acc)
	}
	return acc
}
