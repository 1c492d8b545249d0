package category

import (
	"errors"
	"strings"

	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/utils"

	"go.uber.org/zap"
)

var (
	// ErrCategoryExists is returned when adding a name already present.
	ErrCategoryExists = errors.New("category already exists")
	// ErrEmptyCategory is returned when adding a blank name.
	ErrEmptyCategory = errors.New("category name is required")
)

// CategoryRegistry manages the set of category names. Names are unique with
// case-sensitive comparison and keep insertion order for display.
type CategoryRegistry interface {
	List() []string
	Add(name string) error
	// Remove deletes a category. Removing an unknown name is a silent no-op.
	Remove(name string) error
}

// DefaultCategoryRegistry is the production implementation.
type DefaultCategoryRegistry struct {
	Store *database.Store
}

func (s *DefaultCategoryRegistry) List() []string {
	var categories []string
	if !s.Store.Get(database.KeyCategories, &categories) {
		categories = models.DefaultCategories()
		if err := s.Store.Put(database.KeyCategories, categories); err != nil {
			utils.GetLogger().Warn("failed to persist seed categories", zap.Error(err))
		}
	}
	return categories
}

func (s *DefaultCategoryRegistry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategory
	}

	categories := s.List()
	for _, c := range categories {
		if c == name {
			return ErrCategoryExists
		}
	}

	categories = append(categories, name)
	return s.Store.Put(database.KeyCategories, categories)
}

func (s *DefaultCategoryRegistry) Remove(name string) error {
	categories := s.List()

	idx := -1
	for i, c := range categories {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	categories = append(categories[:idx], categories[idx+1:]...)
	return s.Store.Put(database.KeyCategories, categories)
}
