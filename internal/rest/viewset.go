package rest

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/blog-comments/internal/search"
)

// DefaultAction is the fallback key of ViewSet maps.
const DefaultAction = "default"

// ViewSet picks the search filterset and request payload for each handler
// action, falling back to the DefaultAction entry.
type ViewSet struct {
	Filtersets  map[string]search.FilterSet
	Serializers map[string]func() any
}

// FilterSet returns the filterset of action. With neither an action nor a
// default entry it returns the zero FilterSet, which has no fields.
func (v ViewSet) FilterSet(action string) search.FilterSet {
	if fs, ok := v.Filtersets[action]; ok {
		return fs
	}
	return v.Filtersets[DefaultAction]
}

// Serializer returns a fresh payload to bind the body of action into.
func (v ViewSet) Serializer(action string) any {
	if newFn, ok := v.Serializers[action]; ok {
		return newFn()
	}
	if newFn, ok := v.Serializers[DefaultAction]; ok {
		return newFn()
	}
	return &struct{}{}
}

// ValidData binds the JSON body into the action's payload and validates it.
// Failures are returned as a ValidationError.
func (v ViewSet) ValidData(c *gin.Context, action string) (any, error) {
	registerTagNames()

	payload := v.Serializer(action)
	err := c.ShouldBindJSON(payload)
	if err == nil {
		return payload, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		ve := make(ValidationError, len(fieldErrs))
		for _, fe := range fieldErrs {
			ve[fe.Field()] = fe.Tag()
		}
		return nil, ve
	}
	return nil, ValidationError{NonFieldErrors: err.Error()}
}

// Respond writes data as the JSON body.
func Respond(c *gin.Context, status int, data any) {
	if data == nil {
		c.Status(status)
		return
	}
	c.JSON(status, data)
}

// NonFieldErrors keys errors not tied to a single field, such as malformed JSON.
const NonFieldErrors = "non_field_errors"

// ValidationError maps a JSON field name to the rule it failed.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid " + strings.Join(parts, ", ")
}

var tagNameOnce sync.Once

// registerTagNames makes validator report json names instead of Go field names.
func registerTagNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}
