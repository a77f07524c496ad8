package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"building/internal/model"
	"building/internal/repository"
)

// UserService handles user registration and role changes
type UserService struct {
	repo repository.IUserRepository
	log  *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(repo repository.IUserRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

// Create inserts user unless its email is taken, in which case the
// "user already exists" result is returned without touching the store.
func (s *UserService) Create(ctx context.Context, user *model.User) (*model.UserInsertResult, error) {
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Info("user already exists", slog.String("email", user.Email))
			return &model.UserInsertResult{Message: model.MsgUserExists, InsertedID: nil}, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &model.UserInsertResult{Acknowledged: true, InsertedID: &id}, nil
}

// CheckAdmin reports whether the user with email is an admin. A missing
// user is not an admin.
func (s *UserService) CheckAdmin(ctx context.Context, email string) (*model.AdminStatus, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &model.AdminStatus{Admin: user.IsAdmin()}, nil
}

// MakeMember sets the role of the user with email to member
func (s *UserService) MakeMember(ctx context.Context, email string) (*model.UpdateResult, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	return toUpdateResult(s.repo.SetRoleByEmail(ctx, email, model.RoleMember))
}

// MakeAdmin sets the role of the user with id to admin
func (s *UserService) MakeAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.setRoleByID(ctx, id, model.RoleAdmin)
}

// DemoteToUser sets the role of the user with id back to user
func (s *UserService) DemoteToUser(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.setRoleByID(ctx, id, model.RoleUser)
}

func (s *UserService) setRoleByID(ctx context.Context, id, role string) (*model.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := toUpdateResult(s.repo.SetRoleByID(ctx, objID, role))
	if err != nil {
		return nil, err
	}
	s.log.Info("user role updated", slog.String("id", id), slog.String("role", role))
	return res, nil
}
