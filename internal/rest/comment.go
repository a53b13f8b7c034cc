package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/rest/middleware"
	"github.com/Guyuepp/blog-comments/internal/rest/request"
	"github.com/Guyuepp/blog-comments/internal/rest/response"
	"github.com/Guyuepp/blog-comments/internal/search"
)

// handler actions
const (
	ActionTree     = "tree"
	ActionList     = "list"
	ActionRetrieve = "retrieve"
	ActionCreate   = "create"
	ActionDestroy  = "destroy"
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	ViewSet
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
		ViewSet: ViewSet{
			Filtersets: map[string]search.FilterSet{
				DefaultAction: {Fields: []string{"comment"}},
				ActionList:    {Fields: []string{"comment.comment", "user.username"}},
			},
			Serializers: map[string]func() any{
				DefaultAction: func() any { return new(request.Comment) },
			},
		},
	}
}

// Register mounts the comment routes; auth guards the writes.
func (h *CommentHandler) Register(r gin.IRouter, auth gin.HandlerFunc) {
	r.GET("/articles/:id/comments", h.ArticleComments)
	r.GET("/comments", h.List)
	r.GET("/comments/:cid", h.Retrieve)
	r.POST("/articles/:id/comments", auth, h.Create)
	r.DELETE("/comments/:cid", auth, h.Destroy)
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func currentUser(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return 0, false
	}
	return userID.(int64), true
}

// searchQuery builds the search request of action from the query string.
// An unparsable num falls back to the default page size.
func (h *CommentHandler) searchQuery(c *gin.Context, action string) domain.CommentSearch {
	fs := h.FilterSet(action)
	num, _ := strconv.ParseInt(c.Query("num"), 10, 64)
	return domain.CommentSearch{
		Term:   c.Query("q"),
		Fields: fs.Fields,
		Method: string(fs.Method),
		Cursor: c.Query("cursor"),
		Num:    num,
	}
}

// ArticleComments returns the article's comment tree, or the flat list of
// matching comments when q is given.
func (h *CommentHandler) ArticleComments(c *gin.Context) {
	aid, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if c.Query("q") == "" {
		forest, err := h.Service.Tree(ctx, aid)
		if err != nil {
			respondError(c, err)
			return
		}
		Respond(c, http.StatusOK, response.NewForestFromDomain(forest))
		return
	}

	q := h.searchQuery(c, ActionTree)
	q.ArticleID = aid
	h.search(c, q)
}

// List searches comments of every article.
func (h *CommentHandler) List(c *gin.Context) {
	q := h.searchQuery(c, ActionList)
	if s := c.Query("article_id"); s != "" {
		aid, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			respondError(c, domain.ErrBadParamInput)
			return
		}
		q.ArticleID = aid
	}
	h.search(c, q)
}

func (h *CommentHandler) search(c *gin.Context, q domain.CommentSearch) {
	list, nextCursor, err := h.Service.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(`X-cursor`, nextCursor)
	Respond(c, http.StatusOK, response.NewCommentsFromDomain(list))
}

// Retrieve returns one comment with its replies nested below it.
func (h *CommentHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c, "cid")
	if !ok {
		return
	}
	node, err := h.Service.Subtree(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Respond(c, http.StatusOK, response.NewNodeFromDomain(node))
}

func (h *CommentHandler) Create(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	aid, ok := paramID(c, "id")
	if !ok {
		return
	}
	data, err := h.ValidData(c, ActionCreate)
	if err != nil {
		respondError(c, err)
		return
	}

	comment := data.(*request.Comment).ToDomain()
	comment.ArticleID = aid
	comment.UserID = uid
	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		respondError(c, err)
		return
	}
	Respond(c, http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// Destroy deletes a comment of the current user with all its replies.
func (h *CommentHandler) Destroy(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "cid")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id, uid); err != nil {
		respondError(c, err)
		return
	}
	Respond(c, http.StatusNoContent, nil)
}
