package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
	apperrors "github.com/lucasvtf/municcasign-code-challenge/pkg/errors"
)

// Mock implementations for handler testing

type MockUserService struct {
	users  map[int]domain.User
	nextID int
}

func NewMockUserService(users ...domain.User) *MockUserService {
	m := &MockUserService{users: make(map[int]domain.User), nextID: 1}
	for _, u := range users {
		m.users[u.ID] = u
		if u.ID >= m.nextID {
			m.nextID = u.ID + 1
		}
	}
	return m
}

func (m *MockUserService) GetAllUsers() ([]domain.User, error) {
	var users []domain.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *MockUserService) GetUserByID(id int) (*domain.User, error) {
	if u, exists := m.users[id]; exists {
		return &u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *MockUserService) CreateUser(input domain.NewUser) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == input.Email {
			return nil, apperrors.NewConflictError("email already registered")
		}
	}
	user := domain.User{ID: m.nextID, Name: input.Name, Email: input.Email}
	m.users[user.ID] = user
	m.nextID++
	return &user, nil
}

func (m *MockUserService) UpdateUser(id int, patch domain.UserPatch) (*domain.User, error) {
	u, exists := m.users[id]
	if !exists {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	m.users[id] = u
	return &u, nil
}

func (m *MockUserService) DeleteUser(id int) (bool, error) {
	if _, exists := m.users[id]; !exists {
		return false, apperrors.NewNotFoundError("user not found")
	}
	delete(m.users, id)
	return true, nil
}

func newUserRouter(users ...domain.User) (http.Handler, *MockUserService) {
	userService := NewMockUserService(users...)
	logger := NewMockHandlerLogger()
	userHandler := NewUserHandler(userService, logger)
	documentHandler := NewDocumentHandler(NewMockDocumentService(userService), logger)
	return NewRouter(userHandler, documentHandler, logger), userService
}

func TestGetAllUsers(t *testing.T) {
	router, _ := newUserRouter(domain.User{ID: 1, Name: "Alice", Email: "alice@x.com"})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var users []domain.User
	if err := json.NewDecoder(rr.Body).Decode(&users); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Alice" {
		t.Fatalf("unexpected response: %+v", users)
	}
}

func TestGetAllUsers_EmptyIsArray(t *testing.T) {
	router, _ := newUserRouter()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected [] for an empty collection, got %s", rr.Body.String())
	}
}

func TestGetUserByID(t *testing.T) {
	router, _ := newUserRouter(domain.User{ID: 1, Name: "Alice", Email: "alice@x.com"})

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/users/99", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d for unknown user, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestGetUserByID_InvalidID(t *testing.T) {
	router, _ := newUserRouter()

	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for non-integer id, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestCreateUser(t *testing.T) {
	router, _ := newUserRouter()

	body := bytes.NewBufferString(`{"name":"Bob","email":"bob@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	var user domain.User
	if err := json.NewDecoder(rr.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.ID != 1 || user.Name != "Bob" || user.Email != "bob@x.com" {
		t.Fatalf("unexpected created user: %+v", user)
	}
}

func TestCreateUser_DuplicateEmailIsForbidden(t *testing.T) {
	router, _ := newUserRouter(domain.User{ID: 1, Name: "Alice", Email: "alice@x.com"})

	body := bytes.NewBufferString(`{"name":"Other","email":"alice@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d for duplicate email, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestCreateUser_InvalidBody(t *testing.T) {
	router, _ := newUserRouter()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{broken"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for malformed body, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestUpdateUser(t *testing.T) {
	router, svc := newUserRouter(domain.User{ID: 1, Name: "Alice", Email: "alice@x.com"})

	body := bytes.NewBufferString(`{"name":"X"}`)
	req := httptest.NewRequest(http.MethodPut, "/users/1", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var user domain.User
	if err := json.NewDecoder(rr.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.Name != "X" || user.Email != "alice@x.com" {
		t.Fatalf("expected merged record, got %+v", user)
	}
	if svc.users[1].Name != "X" {
		t.Fatalf("update not applied: %+v", svc.users[1])
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	router, _ := newUserRouter()

	body := bytes.NewBufferString(`{"name":"X"}`)
	req := httptest.NewRequest(http.MethodPut, "/users/5", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	router, svc := newUserRouter(domain.User{ID: 1, Name: "Alice", Email: "alice@x.com"})

	req := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if len(svc.users) != 0 {
		t.Fatalf("user not deleted: %+v", svc.users)
	}

	req = httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d for second delete, got %d", http.StatusNotFound, rr.Code)
	}
}
