package repository

import (
	"errors"

	"github.com/Ambaks/campuseats/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// UpdateFields applies an explicit field map; callers build it from the
// patch struct, never from arbitrary client keys.
func (r *UserRepository) UpdateFields(id string, fields map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) IsUsernameTaken(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
