// Package resttest holds testify suites for exercising gin routers over HTTP,
// optionally as a logged in user.
package resttest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/uniq"
)

const (
	ContentTypeJSON = "application/json"

	AdminUsername = "admin"
	AdminPassword = "admin"
)

// TestCaseBase sends requests to Router. Header is added to every request.
type TestCaseBase struct {
	suite.Suite

	Router *gin.Engine
	Header http.Header
}

// SetupSuite silences gin and logrus below warnings.
func (s *TestCaseBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.WarnLevel)
}

// CheckStatus asserts the response code and reports the body on mismatch.
func (s *TestCaseBase) CheckStatus(w *httptest.ResponseRecorder, status int) bool {
	return s.Equal(status, w.Code, w.Body.String())
}

func (s *TestCaseBase) GenerateUniqCode() string {
	return uniq.Code()
}

// Credentials sets the Authorization header sent from now on. An empty key
// clears it.
func (s *TestCaseBase) Credentials(key string) {
	if s.Header == nil {
		s.Header = http.Header{}
	}
	if key == "" {
		s.Header.Del("Authorization")
		return
	}
	s.Header.Set("Authorization", "Token "+key)
}

// Do serves one request. body may be nil, a string or []byte sent verbatim,
// or any value encoded as JSON.
func (s *TestCaseBase) Do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	case []byte:
		r = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", ContentTypeJSON)
	for k, vs := range s.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the response body into v.
func (s *TestCaseBase) Decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

// Accounts is what WithLoginTestCase needs to log a user in.
type Accounts interface {
	EnsureUser(ctx context.Context, username, password string) (domain.User, bool, error)
	IssueToken(ctx context.Context, userID int64) (domain.Token, error)
}

// WithLoginTestCase logs every test in as the admin user.
type WithLoginTestCase struct {
	TestCaseBase

	Accounts Accounts
	User     domain.User
	Token    domain.Token
}

func (s *WithLoginTestCase) SetupSuite() {
	s.TestCaseBase.SetupSuite()
	s.Require().NotNil(s.Accounts, "WithLoginTestCase needs Accounts")

	u, _, err := s.Accounts.EnsureUser(context.Background(), AdminUsername, AdminPassword)
	s.Require().NoError(err)
	s.User = u
}

func (s *WithLoginTestCase) SetupTest() {
	s.Token = s.AuthUser(s.User)
}

// AuthUser sends the following requests as u.
func (s *WithLoginTestCase) AuthUser(u domain.User) domain.Token {
	token, err := s.Accounts.IssueToken(context.Background(), u.ID)
	s.Require().NoError(err)
	s.Credentials(token.Key)
	return token
}
