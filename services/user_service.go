package services

import (
	"errors"

	"github.com/pelayanandata/portal-go/dto"
	"github.com/pelayanandata/portal-go/models"
	"github.com/pelayanandata/portal-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Register creates a requester account. Staff roles are provisioned out of
// band, never through self-registration.
func (s *UserService) Register(input dto.RegisterDTO) (models.User, error) {
	if _, err := s.Repos.User.GetByUsername(input.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     models.UserRolePemohon,
	}
	if err := s.Repos.User.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the account. Unknown
// username and wrong password are deliberately indistinguishable.
func (s *UserService) Authenticate(input dto.LoginDTO) (models.User, error) {
	user, err := s.Repos.User.GetByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
