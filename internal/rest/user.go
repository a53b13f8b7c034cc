package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/rest/request"
	"github.com/Guyuepp/blog-comments/internal/rest/response"
)

type UserHandler struct {
	ViewSet
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
		ViewSet: ViewSet{
			Serializers: map[string]func() any{
				"login": func() any { return new(request.Login) },
			},
		},
	}
}

// Login exchanges username and password for the user's token.
func (h *UserHandler) Login(c *gin.Context) {
	data, err := h.ValidData(c, "login")
	if err != nil {
		respondError(c, err)
		return
	}
	req := data.(*request.Login)

	key, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	Respond(c, http.StatusOK, response.Token{Token: key})
}
