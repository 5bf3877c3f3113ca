package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handlers "blogapi/internal/handler"
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	userA = &models.User{UserID: "user-a", Name: "Alice", Email: "alice@example.com"}
	userB = &models.User{UserID: "user-b", Name: "Bob", Email: "bob@example.com"}
)

type testEnv struct {
	auth     *MockAuthService
	users    *MockUserService
	posts    *MockPostService
	comments *MockCommentService
	status   *MockStatusService
	router   http.Handler
}

// newTestEnv wires mocks behind the real router. "token-a" and "token-b"
// authenticate as userA and userB.
func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		auth:     new(MockAuthService),
		users:    new(MockUserService),
		posts:    new(MockPostService),
		comments: new(MockCommentService),
		status:   new(MockStatusService),
	}

	env.auth.On("Authenticate", mock.Anything, "token-a").Return(userA, nil).Maybe()
	env.auth.On("Authenticate", mock.Anything, "token-b").Return(userB, nil).Maybe()
	env.auth.On("Authenticate", mock.Anything, "stale").Return(nil, service.ErrTokenFailed).Maybe()

	h := &handlers.Handlers{
		AuthService:    env.auth,
		UserService:    env.users,
		PostService:    env.posts,
		CommentService: env.comments,
		StatusService:  env.status,
		Validate:       validator.New(),
	}
	env.router = handlers.NewRouter(h)

	t.Cleanup(func() {
		env.users.AssertExpectations(t)
		env.posts.AssertExpectations(t)
		env.comments.AssertExpectations(t)
		env.status.AssertExpectations(t)
	})

	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func message(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	msg, _ := decode(t, rr)["message"].(string)
	return msg
}
