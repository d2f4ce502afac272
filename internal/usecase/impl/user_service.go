// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/domain/repository"
	"bookswap/internal/domain/service"
	"bookswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup orchestrates the complete user registration process.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.logger.Info("Starting user signup", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		return nil, domainerrors.ErrHashingFailure.WrapMessage("failed to hash password during signup")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject the email if it is already registered.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user signup failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Create the User entity carrying the password hash.
		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Name:         input.Name,
			City:         input.City,
			PhoneNumber:  input.PhoneNumber,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute user signup transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute user signup transaction")
	}
	srv.logger.Debug("User signed up successfully", "userID", registeredUser.ID)

	return registeredUser, nil
}

// Login verifies the credentials and issues a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, err
	}

	// Verification failure and malformed stored hash look identical here.
	if !srv.hasher.Verify(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "email", input.Email, "error", "credential mismatch")

		return nil, errors.Wrap(domainerrors.ErrWrongCredentials, "login failed")
	}

	token, err := srv.tokenService.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		Token:  token,
		UserID: user.ID,
	}, nil
}

// GetUser retrieves a user by id.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// UpdateUser applies a partial profile update.
func (srv *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.City != nil {
			found.City = *input.City
		}
		if input.PhoneNumber != nil {
			found.PhoneNumber = *input.PhoneNumber
		}
		if input.ProfilePicture != nil {
			found.ProfilePicture = *input.ProfilePicture
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}
