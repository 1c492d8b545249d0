package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/vikash1kr1209/bireenamedico/database"
	"github.com/vikash1kr1209/bireenamedico/models"
	"github.com/vikash1kr1209/bireenamedico/utils"

	"go.uber.org/zap"
)

// ErrServiceNotFound is returned when an update targets an unknown service ID.
var ErrServiceNotFound = errors.New("service not found")

// ServiceCatalog defines business logic for the admin service catalog.
type ServiceCatalog interface {
	// List returns all services in insertion order, seeding the default
	// catalog when storage is empty.
	List() []models.Service
	// ListByCategory returns services whose category contains the filter,
	// case-insensitively. An empty filter or "all" returns everything.
	ListByCategory(filter string) []models.Service
	// Create assigns a fresh ID, normalizes the price, appends and persists.
	Create(input models.Service) (*models.Service, error)
	// Update replaces the record with the given ID in place, keeping its
	// position in the catalog.
	Update(id int64, input models.Service) (*models.Service, error)
	// Delete removes a service. Deleting an unknown ID is a silent no-op.
	Delete(id int64) error
}

// DefaultServiceCatalog is the production implementation.
type DefaultServiceCatalog struct {
	Store *database.Store
}

func (s *DefaultServiceCatalog) List() []models.Service {
	var services []models.Service
	if !s.Store.Get(database.KeyAdminServices, &services) {
		services = models.DefaultServices()
		if err := s.Store.Put(database.KeyAdminServices, services); err != nil {
			utils.GetLogger().Warn("failed to persist seed catalog", zap.Error(err))
		}
	}
	return services
}

func (s *DefaultServiceCatalog) ListByCategory(filter string) []models.Service {
	services := s.List()
	if filter == "" || strings.EqualFold(filter, "all") {
		return services
	}
	filter = strings.ToLower(filter)
	filtered := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if strings.Contains(strings.ToLower(svc.Category), filter) {
			filtered = append(filtered, svc)
		}
	}
	return filtered
}

func (s *DefaultServiceCatalog) Create(input models.Service) (*models.Service, error) {
	services := s.List()

	input.ID = nextID(services)
	input.Price = models.NormalizePrice(input.Price)

	services = append(services, input)
	if err := s.Store.Put(database.KeyAdminServices, services); err != nil {
		return nil, err
	}
	return &input, nil
}

func (s *DefaultServiceCatalog) Update(id int64, input models.Service) (*models.Service, error) {
	services := s.List()

	idx := indexOf(services, id)
	if idx < 0 {
		return nil, ErrServiceNotFound
	}

	input.ID = id
	input.Price = models.NormalizePrice(input.Price)

	services[idx] = input
	if err := s.Store.Put(database.KeyAdminServices, services); err != nil {
		return nil, err
	}
	return &input, nil
}

func (s *DefaultServiceCatalog) Delete(id int64) error {
	services := s.List()

	idx := indexOf(services, id)
	if idx < 0 {
		return nil
	}

	services = append(services[:idx], services[idx+1:]...)
	return s.Store.Put(database.KeyAdminServices, services)
}

func indexOf(services []models.Service, id int64) int {
	for i, svc := range services {
		if svc.ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an ID from the current time, bumping past collisions so IDs
// stay unique even when records are created within the same millisecond.
func nextID(services []models.Service) int64 {
	id := time.Now().UnixMilli()
	for indexOf(services, id) >= 0 {
		id++
	}
	return id
}
