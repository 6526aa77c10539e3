package service

import (
	"context"
	"database/sql"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	rsvpRepo repository.RSVPRepository
	tx       TxRunner
}

func NewUserService(userRepo repository.UserRepository, rsvpRepo repository.RSVPRepository, tx TxRunner) *UserService {
	return &UserService{userRepo: userRepo, rsvpRepo: rsvpRepo, tx: tx}
}

type UpdateProfileRequest struct {
	Name     *string   `json:"name,omitempty"`
	Skills   *[]string `json:"skills,omitempty"`
	Bio      *string   `json:"bio,omitempty"`
	Avatar   *string   `json:"avatar,omitempty"`
	Github   *string   `json:"github,omitempty"`
	Linkedin *string   `json:"linkedin,omitempty"`
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile merges the allowed profile fields into the caller's own
// record. Email, password and role are not updatable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, common.Errorf("name cannot be empty: %w", common.ErrValidation)
		}
		user.Name = *req.Name
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
		if user.Skills == nil {
			user.Skills = []string{}
		}
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Github != nil {
		user.Github = *req.Github
	}
	if req.Linkedin != nil {
		user.Linkedin = *req.Linkedin
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*model.User, error) {
	if !model.IsValidRole(role) {
		return nil, common.Errorf("invalid role %q: %w", role, common.ErrValidation)
	}
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

// DeleteUser hard-deletes the account and its RSVPs in one transaction.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(tx *sql.Tx) error {
		if err := s.rsvpRepo.DeleteByUserID(ctx, tx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, id)
	})
}
