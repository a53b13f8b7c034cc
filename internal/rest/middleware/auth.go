package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

const (
	// AuthKeyword prefixes the key in the Authorization header.
	AuthKeyword = "Token"

	CtxUserID = "user_id"
	CtxUser   = "user"
)

// TokenAuth 校验 "Authorization: Token <key>"，通过后把用户写入上下文
func TokenAuth(auth domain.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword, key, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		if !ok || !strings.EqualFold(keyword, AuthKeyword) || strings.TrimSpace(key) == "" {
			abort(c, domain.ErrUnauthorized)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(key))
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				logrus.Errorf("authenticate token: %v", err)
			}
			abort(c, domain.ErrUnauthorized)
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUser, user)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", AuthKeyword)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
}
