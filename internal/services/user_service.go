package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	pgrepo "github.com/ArpanMallick2005/Ai-resume-Analy/internal/repositories/postgres"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type userService struct {
	users  pgrepo.UserRepository
	tokens *TokenIssuer
}

func NewUserService(users pgrepo.UserRepository, tokens *TokenIssuer) UserService {
	return &userService{users: users, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	const op = "UserService.Register"

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid email", err)
	}
	if len(password) < utils.MinPasswordLength {
		return nil, utils.E(utils.CodeInvalidArgument, op, "password must be at least 8 characters", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{Name: name, Email: email, PasswordHash: hash, Role: models.RoleUser}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.E(utils.CodeConflict, op, "User already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	return s.issue(op, u)
}

func (s *userService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "UserService.Login"

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "Invalid email or password", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "Invalid email or password", nil)
	}

	return s.issue(op, u)
}

func (s *userService) Me(ctx context.Context, userID string) (*models.User, error) {
	const op = "UserService.Me"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "User not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return u, nil
}

func (s *userService) issue(op string, u *models.User) (*AuthResult, error) {
	tok, err := s.tokens.Issue(u.ID, string(u.Role))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return &AuthResult{Token: tok, User: u}, nil
}
