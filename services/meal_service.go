package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/pkg/geo"
	"github.com/Ambaks/campuseats/repository"

	"gorm.io/gorm"
)

// Listings without a quantity are treated as effectively unlimited.
const unlimitedQuantity = 99999999

type MealService struct {
	Repo *repository.MealRepository
}

func NewMealService(repo *repository.MealRepository) *MealService {
	return &MealService{Repo: repo}
}

type CreateMealIn struct {
	Name        string
	Description string
	Ingredients string
	Price       float64
	Quantity    *int
	Unlimited   bool
	Latitude    *float64
	Longitude   *float64
	Timeslots   entity.Timeslots
	ImageURL    string
	Image       []byte
	ImageType   string
}

// UpdateMealIn enumerates the mutable listing fields.
type UpdateMealIn struct {
	Name        *string
	Description *string
	Ingredients *string
	Price       *float64
	Quantity    *int
	Unlimited   *bool
	Latitude    *float64
	Longitude   *float64
	Timeslots   *entity.Timeslots
	Image       []byte
	ImageType   string
}

// NearbyMeal is a listing plus its computed distance from the requester.
type NearbyMeal struct {
	entity.Meal
	Distance float64 `json:"distance"`
}

func (s *MealService) Create(sellerID string, in *CreateMealIn) (*entity.Meal, error) {
	if err := in.Timeslots.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	qty := unlimitedQuantity
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
		}
		qty = *in.Quantity
	}

	m := &entity.Meal{
		Name:        in.Name,
		Description: in.Description,
		Ingredients: in.Ingredients,
		Price:       in.Price,
		Quantity:    qty,
		Unlimited:   in.Unlimited,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Timeslots:   in.Timeslots,
		ImageURL:    in.ImageURL,
		SellerID:    sellerID,
	}
	if len(in.Image) > 0 {
		m.Image = in.Image
		m.ImageType = in.ImageType
		m.ImageSize = int64(len(in.Image))
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MealService) Get(id uint) (*entity.Meal, error) {
	m, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: meal", ErrNotFound)
	}
	return m, err
}

func (s *MealService) ListBySeller(sellerID string) ([]entity.Meal, error) {
	return s.Repo.ListBySeller(sellerID)
}

// Nearby returns meals strictly within radiusKm of the requester, sorted
// ascending by distance, paginated after filtering. Meals without
// coordinates never appear.
func (s *MealService) Nearby(lat, lon, radiusKm float64, skip, limit int) ([]NearbyMeal, error) {
	meals, err := s.Repo.ListLocated()
	if err != nil {
		return nil, err
	}

	results := make([]NearbyMeal, 0, len(meals))
	for _, m := range meals {
		if m.Latitude == nil || m.Longitude == nil {
			continue
		}
		d := geo.Distance(lat, lon, *m.Latitude, *m.Longitude)
		if d < radiusKm {
			results = append(results, NearbyMeal{Meal: m, Distance: d})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if skip < 0 {
		skip = 0
	}
	if skip >= len(results) {
		return []NearbyMeal{}, nil
	}
	results = results[skip:]
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

// Update applies the patch only when sellerID owns the meal. The error is
// the same whether the meal is missing or belongs to someone else.
func (s *MealService) Update(id uint, sellerID string, in *UpdateMealIn) (*entity.Meal, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Ingredients != nil {
		fields["ingredients"] = *in.Ingredients
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
		}
		fields["quantity"] = *in.Quantity
	}
	if in.Unlimited != nil {
		fields["unlimited"] = *in.Unlimited
	}
	if in.Latitude != nil {
		fields["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		fields["longitude"] = *in.Longitude
	}
	if in.Timeslots != nil {
		if err := in.Timeslots.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		fields["timeslots"] = *in.Timeslots
	}
	if len(in.Image) > 0 {
		fields["image"] = in.Image
		fields["image_type"] = in.ImageType
		fields["image_size"] = int64(len(in.Image))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no mutable fields in request", ErrValidation)
	}

	affected, err := s.Repo.UpdateOwned(id, sellerID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: meal not found or unauthorized", ErrNotFound)
	}
	return s.Repo.GetByID(id)
}

func (s *MealService) Delete(id uint, sellerID string) error {
	affected, err := s.Repo.DeleteOwned(id, sellerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: meal not found or unauthorized", ErrNotFound)
	}
	return nil
}
