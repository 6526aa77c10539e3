package service

import (
	"context"
	"devdosthub/internal/common"
	"devdosthub/internal/common/security"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
	Bio      string   `json:"bio"`
	Github   string   `json:"github"`
	Linkedin string   `json:"linkedin"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *model.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.Errorf("name, email and password are required: %w", common.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !model.IsValidRole(role) {
		return nil, common.Errorf("invalid role %q: %w", role, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           role,
		Skills:         skills,
		Bio:            req.Bio,
		Github:         req.Github,
		Linkedin:       req.Linkedin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrDuplicateEmail on the unique violation.
		return nil, err
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = "" // Clear before returning
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("please provide email and password: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("no account found with this email: %w", common.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Accounts created before password login was enabled have no hash.
	if user.HashedPassword == "" {
		return nil, common.ErrLegacyAccount
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredential
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = ""
	return &AuthResponse{User: user, Token: token}, nil
}

// GetUserByID resolves the current user for verified token claims. The
// auth middleware uses it so a deleted account stops authenticating even
// while its token is still unexpired.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}
