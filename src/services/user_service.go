package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is deactivated")
)

type UserService struct {
	Repos  *repositories.Repos
	Events EventPublisher
}

func NewUserService(repos *repositories.Repos, events EventPublisher) *UserService {
	return &UserService{
		Repos:  repos,
		Events: events,
	}
}

func (s *UserService) Register(input dto.RegisterUserDTO) (models.User, error) {
	if _, err := s.Repos.User.GetByUsername(input.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}
	if _, err := s.Repos.User.GetByEmail(input.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         models.UserRole(input.Role),
		Active:       true,
	}

	if err := s.Repos.User.Create(&user); err != nil {
		return models.User{}, err
	}

	publishEvent(s.Events, mq.RoutingKeyUserRegistered, mq.UserRegisteredEvent{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})

	return user, nil
}

// Authenticate verifies credentials for the local identity mode.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return models.User{}, asNotFound(err, ErrInvalidCredentials)
	}
	if !user.Active {
		return models.User{}, ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.Repos.User.GetByID(id)
	if err != nil {
		return models.User{}, asNotFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.List()
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserDTO) (models.User, error) {
	user, err := s.Repos.User.GetByID(id)
	if err != nil {
		return models.User{}, asNotFound(err, ErrUserNotFound)
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.Repos.User.GetByEmail(*input.Email); err == nil {
			return models.User{}, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, err
		}
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.Repos.User.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.Repos.User.GetByID(id); err != nil {
		return asNotFound(err, ErrUserNotFound)
	}
	return s.Repos.User.Delete(id)
}
