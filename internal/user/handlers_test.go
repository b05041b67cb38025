package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// ===== in-memory repo (implements Repository) =====
//

type stubRepo struct {
	mu    sync.Mutex
	items map[string]*User
	err   error
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: make(map[string]*User)}
}

func (s *stubRepo) Create(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, v := range s.items {
		if v.Email == u.Email {
			return ErrAlreadyExist
		}
	}
	u.CreatedAt = time.Now().UTC()
	cp := *u
	s.items[u.ID] = &cp
	return nil
}

func (s *stubRepo) List(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]User, 0, len(s.items))
	for _, v := range s.items {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *stubRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, v := range s.items {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubRepo) Update(ctx context.Context, id string, name, email *string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if email != nil {
		for _, v := range s.items {
			if v.ID != id && v.Email == *email {
				return nil, ErrAlreadyExist
			}
		}
		cur.Email = *email
	}
	if name != nil {
		cur.Name = *name
	}
	cp := *cur
	return &cp, nil
}

func newRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := NewService(repo)
	r := gin.New()
	r.POST("/users", RegisterHandler(svc))
	r.GET("/users", ListHandler(svc))
	r.GET("/users/email/:email", GetByEmailHandler(svc))
	r.PUT("/users/:id", UpdateHandler(svc))
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

//
// ===== tests =====
//

func TestRegister_CreatesThenConflicts(t *testing.T) {
	repo := newStubRepo()
	r := newRouter(repo)

	w := do(r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	w = do(r, http.MethodPost, "/users", `{"name":"Other","email":"ana@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"user already exists"}`, w.Body.String())

	// the stored record is untouched
	got, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana", got.Name)
}

func TestRegister_Invalid(t *testing.T) {
	r := newRouter(newStubRepo())

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/users", `{"name":"Ana"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/users", `{"name":"  ","email":"a@b.c"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/users", `not json`).Code)
}

func TestRegister_PersistenceFailure(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("connection refused")
	r := newRouter(repo)

	w := do(r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to create user"}`, w.Body.String())
}

func TestList_EmptyAndPopulated(t *testing.T) {
	repo := newStubRepo()
	r := newRouter(repo)

	w := do(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	do(r, http.MethodPost, "/users", `{"name":"A","email":"a@example.com"}`)
	do(r, http.MethodPost, "/users", `{"name":"B","email":"b@example.com"}`)

	w = do(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestGetByEmail_OK_And_NotFound(t *testing.T) {
	r := newRouter(newStubRepo())
	do(r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@example.com"}`)

	w := do(r, http.MethodGet, "/users/email/ana@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	var u User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, "Ana", u.Name)

	w = do(r, http.MethodGet, "/users/email/nobody@example.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
}

func TestUpdate_Partial(t *testing.T) {
	r := newRouter(newStubRepo())
	w := do(r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@example.com"}`)
	var created User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	do(r, http.MethodPost, "/users", `{"name":"Bia","email":"bia@example.com"}`)

	// name only: email kept
	w = do(r, http.MethodPut, "/users/"+created.ID, `{"name":"Ana Maria"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)

	// email taken by another user
	w = do(r, http.MethodPut, "/users/"+created.ID, `{"email":"bia@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// blank field
	w = do(r, http.MethodPut, "/users/"+created.ID, `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown id
	w = do(r, http.MethodPut, "/users/nope", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
