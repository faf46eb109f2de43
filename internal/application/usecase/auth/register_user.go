// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for creating a staff account.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
	Role     string // "admin" or "staff"; empty means staff

	// Actor is the authenticated caller, nil when registering anonymously.
	Actor *adapter.TokenClaims
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles staff account creation.
// The first account of an empty portal becomes its administrator; afterwards
// only administrators may create accounts.
type RegisterUserUseCase struct {
	userRepo     adapter.UserRepository
	passwords    adapter.PasswordHasher
	emailService adapter.EmailService
	notifier     adapter.ChangeNotifier
	loginURL     string
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwords adapter.PasswordHasher,
	emailService adapter.EmailService,
	notifier adapter.ChangeNotifier,
	loginURL string,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:     userRepo,
		passwords:    passwords,
		emailService: emailService,
		notifier:     notifier,
		loginURL:     loginURL,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	role := entity.UserRole(strings.ToLower(strings.TrimSpace(input.Role)))
	if count == 0 {
		role = entity.UserRoleAdmin
	} else {
		if input.Actor == nil || input.Actor.Role != entity.UserRoleAdmin {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeAdminRequired,
				"only administrators can create accounts",
				domainerror.ErrAdminRequired,
			)
		}
		if role == "" {
			role = entity.UserRoleStaff
		}
	}

	if role != entity.UserRoleAdmin && role != entity.UserRoleStaff {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"role must be admin or staff",
			domainerror.ErrInvalidRole,
		)
	}

	email := strings.TrimSpace(input.Email)
	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name is required",
			domainerror.ErrMissingName,
		)
	}

	if err := uc.passwords.CheckPolicy(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, input.Name, passwordHash, role)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("Staff account created", "user_id", user.ID, "role", user.Role)

	if uc.emailService != nil {
		err := uc.emailService.QueueStaffWelcome(ctx, adapter.QueueStaffWelcomeInput{
			UserEmail: user.Email,
			UserName:  user.Name,
			Role:      string(user.Role),
			LoginURL:  uc.loginURL,
		})
		if err != nil {
			slog.Warn("Failed to queue welcome email", "user_id", user.ID, "error", err)
		}
	}

	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionUsers)

	return &RegisterUserOutput{User: user}, nil
}
