package service

import (
	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
	apperrors "github.com/lucasvtf/municcasign-code-challenge/pkg/errors"
)

// UserService implements domain.UserService over a flat-file collection.
// Every operation loads its own private copy of the collection, mutates
// it and writes the whole copy back.
type UserService struct {
	store  domain.CollectionStore[domain.User]
	logger domain.Logger
}

// NewUserService creates a new user service bound to the given store.
func NewUserService(store domain.CollectionStore[domain.User], logger domain.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// GetAllUsers returns the full collection, unfiltered, in file order.
func (s *UserService) GetAllUsers() ([]domain.User, error) {
	return s.store.Load()
}

// GetUserByID returns the user with the given id. This is the existence
// primitive the document layer depends on.
func (s *UserService) GetUserByID(id int) (*domain.User, error) {
	users, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

// CreateUser appends a new user with the next free id. Emails must be
// unique (case-sensitive exact match) across the collection.
func (s *UserService) CreateUser(input domain.NewUser) (*domain.User, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	users, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == input.Email {
			return nil, apperrors.NewConflictError("email already registered")
		}
	}

	user := domain.User{
		ID:    nextID(users, func(u domain.User) int { return u.ID }),
		Name:  input.Name,
		Email: input.Email,
	}

	users = append(users, user)
	if err := s.store.Save(users); err != nil {
		return nil, err
	}

	s.logger.Info("User created", "user_id", user.ID)
	return &user, nil
}

// UpdateUser merges the supplied fields over the stored record. Fields
// not present in the patch are preserved.
func (s *UserService) UpdateUser(id int, patch domain.UserPatch) (*domain.User, error) {
	users, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range users {
		if users[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	if patch.Name != nil {
		users[index].Name = *patch.Name
	}
	if patch.Email != nil {
		users[index].Email = *patch.Email
	}

	if err := s.store.Save(users); err != nil {
		return nil, err
	}

	updated := users[index]
	return &updated, nil
}

// DeleteUser physically removes the user from the collection. The
// existence check runs first, so once reached the removal always
// happens and the returned bool is true.
func (s *UserService) DeleteUser(id int) (bool, error) {
	if _, err := s.GetUserByID(id); err != nil {
		return false, err
	}

	users, err := s.store.Load()
	if err != nil {
		return false, err
	}

	remaining := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			remaining = append(remaining, u)
		}
	}

	if len(remaining) == len(users) {
		return false, nil
	}

	if err := s.store.Save(remaining); err != nil {
		return false, err
	}

	s.logger.Info("User deleted", "user_id", id)
	return true, nil
}

// nextID computes the id for a new record: max existing id + 1, or 1
// for an empty collection.
func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, r := range records {
		if v := id(r); v > max {
			max = v
		}
	}
	return max + 1
}
