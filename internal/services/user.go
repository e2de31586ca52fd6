package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"concertify/internal/domain"
)

const minPasswordLength = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userService struct {
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	tokenExpiry  time.Duration
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewUserService creates a UserService with the given repository and auth ports.
func NewUserService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.UserService {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		tokenExpiry:  tokenExpiry,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *userService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, strings.TrimSpace(name), hash, salt, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.emailService != nil {
		data := &domain.WelcomeMessageEmailData{Email: user.Email, Name: user.Name}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.ErrorContext(ctx, "failed to send welcome email", "email", user.Email, "err", err)
		}
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	artists, err := s.userRepo.ListArtists(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load administered artists: %w", err)
	}
	user.Artists = artists
	return user, nil
}
