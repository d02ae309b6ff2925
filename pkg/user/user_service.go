package user

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/entities"
	"Pick-My-Dish/internal/utils/mailing"
	"Pick-My-Dish/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (uint, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		UpdateUsername(ctx context.Context, userID uint, username string) error
		Me(ctx context.Context, userID uint) (domain.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string
	}
)

// NewUserService wires the user directory. mailer may be nil, in which
// case no welcome mail is sent.
func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, appURL string) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         appURL,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (uint, error) {
	email := normalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	existing, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, &domain.StorageError{Op: "find user by email", Err: err}
	}
	if existing != nil {
		return 0, domain.ErrDuplicateUser
	}
	existing, err = s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, &domain.StorageError{Op: "find user by username", Err: err}
	}
	if existing != nil {
		return 0, domain.ErrDuplicateUser
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		// a concurrent registration can still win the race to the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, domain.ErrDuplicateUser
		}
		return 0, &domain.StorageError{Op: "create user", Err: err}
	}
	log.Infow("user registered", "user_id", user.ID, "username", user.Username)

	s.sendWelcome(user)
	return user.ID, nil
}

func (s *userService) sendWelcome(user *entities.User) {
	if s.mailer == nil {
		return
	}
	err := s.mailer.SendMail(user.Email, "Welcome to Pick My Dish", mailing.WelcomeBody(s.appURL, user.Username))
	if err != nil {
		log.Warnw("welcome mail failed", "user_id", user.ID, "error", err)
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return domain.LoginResponse{}, &domain.StorageError{Op: "find user by email", Err: err}
	}
	if user == nil || !CheckPasswordHash(req.Password, user.PasswordHash) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, domain.RoleUser)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return domain.LoginResponse{
		User:  toDomainUser(user),
		Token: token,
	}, nil
}

func (s *userService) UpdateUsername(ctx context.Context, userID uint, username string) error {
	username = strings.TrimSpace(username)

	taken, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return &domain.StorageError{Op: "find user by username", Err: err}
	}
	if taken != nil && taken.ID != userID {
		return domain.ErrDuplicateUser
	}

	affected, err := s.userRepository.UpdateUsername(ctx, userID, username)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateUser
		}
		return &domain.StorageError{Op: "update username", Err: err}
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, &domain.StorageError{Op: "find user by id", Err: err}
	}
	if user == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return toDomainUser(user), nil
}

func toDomainUser(user *entities.User) domain.User {
	return domain.User{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		FullName:         user.FullName,
		ProfileImagePath: user.ProfileImagePath,
		CreatedAt:        user.CreatedAt,
	}
}
