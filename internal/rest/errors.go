package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var ve ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	var ve ValidationError
	if errors.As(err, &ve) {
		c.JSON(code, ve)
		return
	}
	if code == http.StatusInternalServerError {
		err = domain.ErrInternalServerError
	}
	c.JSON(code, ResponseError{Message: err.Error()})
}
