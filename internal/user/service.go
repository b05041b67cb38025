package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/marketplace-api/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user. An already registered email is a conflict; the
// existing record is never returned or modified.
func (s *Service) Register(ctx context.Context, name, email string) (*User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required: %w", apperr.ErrInvalid)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrAlreadyExist
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	u := &User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	// a concurrent registration can still win the race; the repo reports
	// the unique violation as ErrAlreadyExist
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Update applies a partial update. Fields left nil keep their value; fields
// present must not be blank.
func (s *Service) Update(ctx context.Context, id string, in UpdateRequest) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required: %w", apperr.ErrInvalid)
	}
	for field, v := range map[string]*string{"name": in.Name, "email": in.Email} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, fmt.Errorf("%s must not be blank: %w", field, apperr.ErrInvalid)
		}
	}
	return s.repo.Update(ctx, id, trimmed(in.Name), trimmed(in.Email))
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
