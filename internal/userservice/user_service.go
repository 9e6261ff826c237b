package userservice

import (
	"fmt"
	"strings"

	model "gearshare/internal/models"
	"gearshare/internal/repository"
	"gearshare/internal/sharingerrors"
	"gearshare/utils"
)

// UserService is the user directory: CRUD keyed by unique id and unique
// email.
type UserService struct {
	repo repository.SharingDB
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.SharingDB) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser registers a new user. Email uniqueness is enforced across all
// live users at write time.
func (s *UserService) CreateUser(name, email string) (model.User, error) {
	if name == "" {
		return model.User{}, fmt.Errorf("service: %w - name is required", sharingerrors.ErrValidation)
	}
	if !validEmail(email) {
		return model.User{}, fmt.Errorf("service: %w - invalid email address", sharingerrors.ErrValidation)
	}
	taken, err := s.repo.EmailTaken(email, "")
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to check email: %w", err)
	}
	if taken {
		return model.User{}, fmt.Errorf("service: email %s is already registered: %w", email, sharingerrors.ErrEmailExists)
	}

	user := model.User{
		ID:    utils.GenerateID(),
		Name:  name,
		Email: email,
	}
	saved, err := s.repo.SaveUser(user)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to save user: %w", err)
	}
	return saved, nil
}

// UpdateUser applies a partial update: only non-nil fields overwrite.
func (s *UserService) UpdateUser(userID string, name, email *string) (model.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: user lookup failed: %w", err)
	}
	if name != nil && *name != "" {
		user.Name = *name
	}
	if email != nil && *email != "" {
		if !validEmail(*email) {
			return model.User{}, fmt.Errorf("service: %w - invalid email address", sharingerrors.ErrValidation)
		}
		taken, err := s.repo.EmailTaken(*email, userID)
		if err != nil {
			return model.User{}, fmt.Errorf("service: failed to check email: %w", err)
		}
		if taken {
			return model.User{}, fmt.Errorf("service: email %s is already registered: %w", *email, sharingerrors.ErrEmailExists)
		}
		user.Email = *email
	}
	updated, err := s.repo.UpdateUser(user)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return updated, nil
}

// GetUserByID returns a single user record.
func (s *UserService) GetUserByID(userID string) (model.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: user lookup failed: %w", err)
	}
	return user, nil
}

// GetAllUsers returns every live user.
func (s *UserService) GetAllUsers() ([]model.User, error) {
	users, err := s.repo.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(userID string) error {
	if err := s.repo.DeleteUser(userID); err != nil {
		return fmt.Errorf("service: failed to delete user %s: %w", userID, err)
	}
	return nil
}

// validEmail is a light syntactic check; full format validation happens at
// the binding layer.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}
