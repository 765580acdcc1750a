package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dto "todolist-api.com/todolist-api/internal/data_models"
	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/internal/security"
	"todolist-api.com/todolist-api/pkg/result"
)

// invalidCredentialsMessage is deliberately the same for an unknown email
// and a wrong password, so callers cannot enumerate accounts.
const invalidCredentialsMessage = "Invalid email or password"

type AuthService struct {
	users  *repository.UserRepository
	hasher *security.PasswordHasher
	issuer *security.TokenIssuer
}

func NewAuthService(
	users *repository.UserRepository,
	hasher *security.PasswordHasher,
	issuer *security.TokenIssuer,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		issuer: issuer,
	}
}

func (s *AuthService) Login(
	ctx context.Context,
	email, password string,
) (result.Result[dto.LoginResponse], error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Failure[dto.LoginResponse](invalidCredentialsMessage), nil
		}
		return result.Result[dto.LoginResponse]{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return result.Failure[dto.LoginResponse](invalidCredentialsMessage), nil
	}

	token, err := s.issuer.Generate(user)
	if err != nil {
		return result.Result[dto.LoginResponse]{}, err
	}

	return result.Success(dto.LoginResponse{
		Token:     token,
		Email:     user.Email,
		FullName:  user.FullName,
		ExpiresAt: time.Now().UTC().Add(s.issuer.Expiration()),
	}), nil
}
