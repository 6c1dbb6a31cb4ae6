package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/policy"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AccountService handles registration and credential verification.
type AccountService struct {
	repo *repository.Repository
}

func NewAccountService(repo *repository.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a user with a bcrypt-hashed password. The very first
// account on a fresh database becomes the administrator.
func (s *AccountService) Register(email, password, confirm, name string) (*ds.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: malformed email address", ErrValidation)
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	if existing, err := s.repo.GetUserByEmail(email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountUsers()
	if err != nil {
		return nil, err
	}

	user := &ds.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		IsAdmin:  count == 0,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password fail with
// the same ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AccountService) Login(email, password string) (*ds.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser fetches a user profile, applying the self-or-admin rule.
func (s *AccountService) GetUser(actor policy.Actor, targetID uint) (*ds.User, error) {
	if actor.IsAnonymous() {
		return nil, ErrAuthRequired
	}
	user, err := s.repo.GetUserByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanViewUser(actor, user.ID) {
		return nil, ErrForbidden
	}
	return user, nil
}

// ListUsers returns every account for admins, or just the actor's own row.
func (s *AccountService) ListUsers(actor policy.Actor) ([]ds.User, error) {
	if actor.IsAnonymous() {
		return nil, ErrAuthRequired
	}
	if actor.IsAdmin {
		return s.repo.ListUsers()
	}
	self, err := s.repo.GetUserByID(actor.ID)
	if err != nil {
		return nil, err
	}
	return []ds.User{*self}, nil
}
