package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"usersapi/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, req user.Request) (user.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, req user.Request) (*user.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func strPtr(s string) *string { return &s }

func newTestServer(svc *MockService) http.Handler {
	return NewWithServices(Services{User: svc, Health: okPinger{}}, slog.Default())
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, string, http.Header) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec.Code, string(b), rec.Header()
}

func TestAPI_List(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]user.User{
			{ID: 1, Name: strPtr("Ana"), Email: strPtr("ana@x.com")},
			{ID: 2},
		}, nil)

		code, body, _ := do(t, newTestServer(svc), http.MethodGet, "/api/users", "")

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `[{"id":1,"name":"Ana","email":"ana@x.com"},{"id":2,"name":null,"email":null}]`, body)
	})

	t.Run("empty table is an empty array", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything).Return([]user.User{}, nil)

		code, body, _ := do(t, newTestServer(svc), http.MethodGet, "/api/users", "")

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `[]`, body)
	})
}

func TestAPI_Find(t *testing.T) {
	svc := new(MockService)
	svc.On("Find", mock.Anything, "7").Return(&user.User{ID: 7, Name: strPtr("Ana"), Email: strPtr("ana@x.com")}, nil)
	svc.On("Find", mock.Anything, "8").Return(nil, nil)
	svc.On("Find", mock.Anything, "abc").Return(nil, errors.New(`invalid input syntax for type integer: "abc"`))
	srv := newTestServer(svc)

	code, body, _ := do(t, srv, http.MethodGet, "/api/users/7", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":7,"name":"Ana","email":"ana@x.com"}`, body)

	code, body, _ = do(t, srv, http.MethodGet, "/api/users/8", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `null`, body)

	code, body, _ = do(t, srv, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"error":"invalid input syntax for type integer: \"abc\""}`, body)
}

func TestAPI_Create(t *testing.T) {
	t.Run("full body", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(r user.Request) bool {
			return r.Name != nil && *r.Name == "Ana" && r.Email != nil && *r.Email == "ana@x.com"
		})).Return(user.User{ID: 1, Name: strPtr("Ana"), Email: strPtr("ana@x.com")}, nil)

		code, body, _ := do(t, newTestServer(svc), http.MethodPost, "/api/users", `{"name":"Ana","email":"ana@x.com"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.JSONEq(t, `{"id":1,"name":"Ana","email":"ana@x.com"}`, body)
		svc.AssertExpectations(t)
	})

	t.Run("absent email is passed as null", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(r user.Request) bool {
			return r.Name != nil && *r.Name == "Ana" && r.Email == nil
		})).Return(user.User{ID: 2, Name: strPtr("Ana")}, nil)

		code, body, _ := do(t, newTestServer(svc), http.MethodPost, "/api/users", `{"name":"Ana"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.JSONEq(t, `{"id":2,"name":"Ana","email":null}`, body)
	})

	t.Run("explicit nulls are accepted", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, user.Request{}).Return(user.User{ID: 3}, nil)

		code, _, _ := do(t, newTestServer(svc), http.MethodPost, "/api/users", `{"name":null,"email":null}`)

		assert.Equal(t, http.StatusCreated, code)
		svc.AssertExpectations(t)
	})

	t.Run("database failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.Anything).Return(user.User{}, errors.New("connection refused"))

		code, body, _ := do(t, newTestServer(svc), http.MethodPost, "/api/users", `{}`)

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.JSONEq(t, `{"error":"connection refused"}`, body)
	})

	t.Run("unparseable body uses the same error shape", func(t *testing.T) {
		svc := new(MockService)

		code, body, _ := do(t, newTestServer(svc), http.MethodPost, "/api/users", `{"name":`)

		assert.GreaterOrEqual(t, code, 400)
		assert.Less(t, code, 500)
		assert.Contains(t, body, `"error"`)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAPI_Update(t *testing.T) {
	svc := new(MockService)
	svc.On("Update", mock.Anything, "3", mock.Anything).
		Return(&user.User{ID: 3, Name: strPtr("Ana2"), Email: strPtr("ana2@x.com")}, nil)
	svc.On("Update", mock.Anything, "999", mock.Anything).Return(nil, nil)
	srv := newTestServer(svc)

	code, body, _ := do(t, srv, http.MethodPut, "/api/users/3", `{"name":"Ana2","email":"ana2@x.com"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":3,"name":"Ana2","email":"ana2@x.com"}`, body)

	code, body, _ = do(t, srv, http.MethodPut, "/api/users/999", `{"name":"X"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `null`, body)
}

func TestAPI_Delete(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, "1").Return(nil)
	svc.On("Delete", mock.Anything, "nope").Return(errors.New(`invalid input syntax for type integer: "nope"`))
	srv := newTestServer(svc)

	code, body, _ := do(t, srv, http.MethodDelete, "/api/users/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"Usuario eliminado"}`, body)

	code, body, _ = do(t, srv, http.MethodDelete, "/api/users/nope", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"error":"invalid input syntax for type integer: \"nope\""}`, body)
}

func TestAPI_CORS(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything).Return([]user.User{}, nil)
	srv := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Origin", "http://frontend.example")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/users/1", nil)
	preflight.Header.Set("Origin", "http://frontend.example")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, preflight)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI_Health(t *testing.T) {
	code, body, _ := do(t, newTestServer(new(MockService)), http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"OK","database":"up"}`, body)
}

func TestAPI_RequestLog(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything).Return([]user.User{}, nil)
	svc.On("Find", mock.Anything, "abc").Return(nil, errors.New(`invalid input syntax for type integer: "abc"`))

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	srv := NewWithServices(Services{User: svc, Health: okPinger{}}, log)

	code, _, _ := do(t, srv, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, code)
	code, _, _ = do(t, srv, http.MethodGet, "/api/users/abc", "")
	require.Equal(t, http.StatusInternalServerError, code)

	out := buf.String()
	assert.Contains(t, out, `"operation":"users-list"`)
	assert.Contains(t, out, `"operation":"users-find"`)
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"op":"GET /api/users/:id"`)
}
