package service

import (
	"errors"
	"fmt"

	"github.com/denilsonpy/finapi/internal/config"
	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/denilsonpy/finapi/pkg/logger"
	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	CreateUser(name, email, hashedPassword string) (*domain.User, error)
	UserByID(id string) (*domain.User, error)
	UserByEmail(email string) (*domain.User, error)
}

type UserService struct {
	config *config.Config
	repo   UserRepository
}

func NewUserService(repo UserRepository, config *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		config: config,
	}
}

// Register creates a new user and returns it together with a session
// token. The email must not be taken by an existing user.
func (s *UserService) Register(name, email, password string) (string, *domain.User, error) {
	_, err := s.repo.UserByEmail(email)
	if err == nil {
		logger.Log.Warn("user already exists", logger.String("email", email))
		return "", nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		logger.Log.Warn("error while hashing password")
		return "", nil, fmt.Errorf("error while hashing password: %w", err)
	}

	user, err := s.repo.CreateUser(name, email, string(hashedPassword))
	if err != nil {
		return "", nil, err
	}

	token, err := generateJWTToken(user.ID, s.config.PrivateKey)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password fail with the same error so callers cannot
// probe which accounts exist.
func (s *UserService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.repo.UserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("incorrect email", logger.String("email", email))
			return "", nil, domain.ErrIncorrectCredentials
		}
		return "", nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		logger.Log.Warn("incorrect password", logger.String("email", email))
		return "", nil, domain.ErrIncorrectCredentials
	}

	token, err := generateJWTToken(user.ID, s.config.PrivateKey)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *UserService) Profile(userID string) (*domain.User, error) {
	return s.repo.UserByID(userID)
}

func generateJWTToken(userID, privateKey string) (string, error) {
	claims := jwt.StandardClaims{
		Subject: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signedToken, nil
}
