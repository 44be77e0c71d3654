package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

// Register creates an account, storing only the bcrypt hash of the password.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	return s.repo.CreateUser(ctx, model.User{
		Username:  req.Username,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address1:  req.Address1,
		Address2:  req.Address2,
		Town:      req.Town,
		State:     req.State,
		Zip:       req.Zip,
		Phone:     req.Phone,
		Email:     req.Email,
		Profile:   req.Profile,
		FavBook:   req.FavBook,
		FavAuthor: req.FavAuthor,
	})
}

// Authenticate checks credentials against the stored hash. A missing user and
// a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) Profile(ctx context.Context, userID int) (model.User, error) {
	return s.repo.GetUser(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error) {
	return s.repo.UpdateUser(ctx, userID, req)
}
