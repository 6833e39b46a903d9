package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/repository"

	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type CreateUserIn struct {
	ID        string `json:"id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username"`
}

// UpdateUserIn enumerates the mutable fields; anything else on a User is
// off limits to clients. Pointers distinguish "absent" from zero values.
type UpdateUserIn struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Gender         *string `json:"gender"`
	Age            *string `json:"age"`
	Username       *string `json:"username"`
	ProfilePicture *string `json:"profilePicture"`
	Role           *string `json:"role"`
	PhoneNumber    *string `json:"phoneNumber"`
	Address        *string `json:"address"`
}

func (s *UserService) Create(in *CreateUserIn) (*entity.User, error) {
	username := in.Username
	if username == "" {
		username = strings.SplitN(in.Email, "@", 2)[0]
	}
	u := &entity.User{
		ID:        in.ID,
		Email:     in.Email,
		Username:  username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      "buyer",
	}
	if err := s.Repo.Create(u); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: email or username already registered", ErrConflict)
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return u, err
}

func (s *UserService) Update(id string, in *UpdateUserIn) (*entity.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Gender != nil {
		fields["gender"] = *in.Gender
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.ProfilePicture != nil {
		fields["profile_picture"] = *in.ProfilePicture
	}
	if in.Role != nil {
		switch *in.Role {
		case "buyer", "seller", "admin":
			fields["role"] = *in.Role
		default:
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *in.Role)
		}
	}
	if in.PhoneNumber != nil {
		fields["phone_number"] = *in.PhoneNumber
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			if repository.IsDuplicateKey(err) {
				return nil, fmt.Errorf("%w: username already taken", ErrConflict)
			}
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *UserService) UsernameAvailable(username string) (bool, error) {
	taken, err := s.Repo.IsUsernameTaken(username)
	return !taken, err
}
