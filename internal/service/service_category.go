package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Messages reported for category writes.
const (
	msgCategoryNameTaken = "Category with this name already exists."
	msgInvalidColor      = "Enter a valid hex color, e.g. #FFCCB6."
)

type categoryService struct {
	categories store.CategoryRepository
	logger     *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		logger:     logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if userID <= 0 {
		return nil, validators.ErrInvalidUserID
	}

	categories, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores a category for category.UserID. An empty color
// becomes [models.DefaultCategoryColor]; a duplicate name is a validation
// failure on "name".
func (s *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.UserID <= 0 {
		return models.Category{}, validators.ErrInvalidUserID
	}
	if category.Name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}
	if !validators.IsValidColor(category.Color) {
		return models.Category{}, validators.NewFieldError("color", msgInvalidColor, ErrInvalidDataProvided)
	}

	created, err := s.categories.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Int64("user_id", category.UserID).Str("name", category.Name).Msg("category creation failed")
		if errors.Is(err, store.ErrCategoryAlreadyExists) {
			return models.Category{}, validators.NewFieldError("name", msgCategoryNameTaken, err)
		}
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	return created, nil
}

// CreateDefaultCategories provisions [models.DefaultCategories] for a new
// user in one transaction. It is registered as a [UserCreatedHook].
func (s *categoryService) CreateDefaultCategories(ctx context.Context, user models.User) error {
	defaults := make([]models.Category, 0, len(models.DefaultCategories))
	for _, category := range models.DefaultCategories {
		category.UserID = user.UserID
		defaults = append(defaults, category)
	}

	if _, err := s.categories.CreateCategories(ctx, defaults); err != nil {
		return fmt.Errorf("error creating default categories: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("user_id", user.UserID).Msg("default categories created")
	return nil
}
