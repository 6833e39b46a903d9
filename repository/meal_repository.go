package repository

import (
	"github.com/Ambaks/campuseats/entity"

	"gorm.io/gorm"
)

type MealRepository struct{ DB *gorm.DB }

func NewMealRepository(db *gorm.DB) *MealRepository { return &MealRepository{DB: db} }

func (r *MealRepository) Create(m *entity.Meal) error {
	return r.DB.Create(m).Error
}

func (r *MealRepository) GetByID(id uint) (*entity.Meal, error) {
	var m entity.Meal
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) GetByIDs(ids []uint) ([]entity.Meal, error) {
	var meals []entity.Meal
	if len(ids) == 0 {
		return meals, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&meals).Error
	return meals, err
}

func (r *MealRepository) ListBySeller(sellerID string) ([]entity.Meal, error) {
	var meals []entity.Meal
	err := r.DB.Where("seller_id = ?", sellerID).Find(&meals).Error
	return meals, err
}

// ListLocated returns meals that have coordinates; distance filtering
// happens in the service so every query shares one distance function.
func (r *MealRepository) ListLocated() ([]entity.Meal, error) {
	var meals []entity.Meal
	err := r.DB.
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&meals).Error
	return meals, err
}

// UpdateOwned applies the field map only when the caller owns the meal.
// A zero rows-affected result covers both "missing" and "not yours".
func (r *MealRepository) UpdateOwned(id uint, sellerID string, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Meal{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *MealRepository) DeleteOwned(id uint, sellerID string) (int64, error) {
	res := r.DB.Where("id = ? AND seller_id = ?", id, sellerID).Delete(&entity.Meal{})
	return res.RowsAffected, res.Error
}
