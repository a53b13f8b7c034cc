package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository"
	"github.com/Guyuepp/blog-comments/internal/search"
	"github.com/Guyuepp/blog-comments/internal/tree"
)

const bloomInitBatch = 1000

func commentText(c domain.Comment) string { return c.Text }

// memoryFields are the search fields answerable from a cached comment list.
var memoryFields = map[string]search.Field[domain.Comment]{
	"comment":         commentText,
	"comment.comment": commentText,
}

type service struct {
	commentRepo domain.CommentListRepository
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
	refresher   domain.RefreshWorker
	now         func() time.Time
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentListRepository, articleRepo domain.ArticleRepository, bloomRepo domain.BloomRepository, refresher domain.RefreshWorker) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		bloomRepo:   bloomRepo,
		refresher:   refresher,
		now:         time.Now,
	}
}

// mustExists rejects ids neither the bloom filter nor the database knows.
// Articles created after the filter was seeded are confirmed in the database
// and added to the filter. Filter errors let the request through.
func (s *service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check failed for article %d: %v", id, err)
		return nil
	}
	if exists {
		return nil
	}

	if _, err := s.articleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logrus.Warnf("article %d does not exist", id)
		}
		return err
	}
	if err := s.bloomRepo.Add(ctx, id); err != nil {
		logrus.Warnf("failed to add article %d to bloom filter: %v", id, err)
	}
	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if strings.TrimSpace(c.Text) == "" {
		return domain.ErrBadParamInput
	}
	if err := s.mustExists(ctx, c.ArticleID); err != nil {
		return err
	}
	// 布隆过滤器有误判，写入前确认文章存在
	if _, err := s.articleRepo.GetByID(ctx, c.ArticleID); err != nil {
		return err
	}

	c.Level, c.IsRoot = 0, true
	if c.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *c.ParentID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrBadParamInput
		}
		if err != nil {
			return err
		}
		if parent.ArticleID != c.ArticleID {
			return domain.ErrBadParamInput
		}
		c.Level, c.IsRoot = parent.Level+1, false
	}
	c.CreateDt = s.now()

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}
	s.refresher.Send(c.ArticleID)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64, userID int64) error {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return domain.ErrForbidden
	}
	if _, err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.refresher.Send(c.ArticleID)
	return nil
}

func (s *service) Tree(ctx context.Context, articleID int64) ([]*domain.CommentNode, error) {
	if err := s.mustExists(ctx, articleID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FetchByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return tree.Forest(comments), nil
}

func (s *service) Subtree(ctx context.Context, id int64) (*domain.CommentNode, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FetchByArticle(ctx, c.ArticleID)
	if err != nil {
		return nil, err
	}
	root := tree.NewNode(&c)
	tree.FindChildren(root, comments)
	return root, nil
}

// Search answers article scoped searches from the cached comment list when
// every field can be read in memory, and from the database otherwise.
func (s *service) Search(ctx context.Context, q domain.CommentSearch) ([]domain.Comment, string, error) {
	repository.PageVerify(&q.Num)

	var (
		res []domain.Comment
		err error
	)
	if q.ArticleID != 0 {
		if err := s.mustExists(ctx, q.ArticleID); err != nil {
			return nil, "", err
		}
	}
	if fields, ok := inMemory(q.Fields); ok && q.ArticleID != 0 {
		if cached, hit := s.commentRepo.Cached(ctx, q.ArticleID); hit {
			res, err = searchCached(cached, fields, q)
		} else {
			res, err = s.commentRepo.Search(ctx, q)
		}
	} else {
		res, err = s.commentRepo.Search(ctx, q)
	}
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if int64(len(res)) == q.Num {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreateDt)
	}
	return res, nextCursor, nil
}

func inMemory(names []string) ([]search.Field[domain.Comment], bool) {
	fields := make([]search.Field[domain.Comment], 0, len(names))
	for _, name := range names {
		f, ok := memoryFields[name]
		if !ok {
			return nil, false
		}
		fields = append(fields, f)
	}
	return fields, true
}

func searchCached(cached []domain.Comment, fields []search.Field[domain.Comment], q domain.CommentSearch) ([]domain.Comment, error) {
	after := time.Time{}
	if q.Cursor != "" {
		t, err := repository.DecodeCursor(q.Cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		after = t
	}

	page := make([]domain.Comment, 0, len(cached))
	for _, c := range cached {
		if q.Cursor == "" || c.CreateDt.After(after) {
			page = append(page, c)
		}
	}
	res := search.Filter(page, func(c domain.Comment) int64 { return c.ID }, q.Term, search.ParseLookup(q.Method), fields...)
	if int64(len(res)) > q.Num {
		res = res[:q.Num]
	}
	return res, nil
}

// InitBloomFilter loads every article id into the bloom filter.
func (s *service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.articleRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
		if len(ids) < bloomInitBatch {
			return nil
		}
	}
}
