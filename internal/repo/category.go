package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/category_service/internal/models"
)

// NormalizeName trims surrounding whitespace and lowercases, the form
// every category name takes before comparison or storage.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetCategories returns all categories. sortBy is "name" or "date",
// with a leading "-" for descending order. Unrecognized values apply
// no ordering and raise no error.
func (r *GormRepo) GetCategories(ctx context.Context, sortBy string) ([]models.Category, error) {
	q := r.DB.WithContext(ctx).Model(&models.Category{})

	desc := strings.HasPrefix(sortBy, "-")
	switch {
	case strings.HasSuffix(sortBy, "name"):
		if desc {
			q = q.Order("name DESC")
		} else {
			q = q.Order("name ASC")
		}
	case strings.HasSuffix(sortBy, "date"):
		if desc {
			q = q.Order("created_at DESC")
		} else {
			q = q.Order("created_at ASC")
		}
	}

	items := []models.Category{}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("name = ?", NormalizeName(name)).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a normalized name. A colliding name surfaces
// as gorm.ErrDuplicatedKey through driver error translation.
func (r *GormRepo) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := models.Category{Name: NormalizeName(name)}
	if err := r.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory issues a single unconditional UPDATE. Zero affected
// rows means the id does not exist.
func (r *GormRepo) UpdateCategory(ctx context.Context, id uint, name string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Update("name", NormalizeName(name))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
