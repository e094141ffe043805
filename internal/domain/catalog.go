package domain

import (
	"errors"
	"fmt"
)

// ServiceID идентификатор услуги из закрытого набора
type ServiceID string

const (
	ServiceShave           ServiceID = "shave"
	ServiceHaircut         ServiceID = "haircut"
	ServiceShaveAndHaircut ServiceID = "shave_and_haircut"
)

var (
	// ErrUnknownService возвращается для услуги вне каталога
	ErrUnknownService = errors.New("unknown service")

	// ErrInvalidCatalog возвращается при некорректной конфигурации каталога
	ErrInvalidCatalog = errors.New("invalid service catalog")
)

// Service represents a bookable service with a fixed price and duration.
type Service struct {
	ID              ServiceID
	Name            string
	Price           float64
	DurationMinutes int
}

// Catalog is the immutable single source of truth for services, prices and
// durations. Both core components receive it at construction; duration and
// price are derived from it server-side and stored on the appointment row,
// so later catalog edits never corrupt existing records.
type Catalog struct {
	services []Service
	byID     map[ServiceID]Service
}

// NewCatalog создает каталог из списка услуг
func NewCatalog(services []Service) (Catalog, error) {
	if len(services) == 0 {
		return Catalog{}, fmt.Errorf("%w: no services", ErrInvalidCatalog)
	}

	byID := make(map[ServiceID]Service, len(services))
	for _, s := range services {
		if s.ID == "" {
			return Catalog{}, fmt.Errorf("%w: service without id", ErrInvalidCatalog)
		}
		if s.DurationMinutes <= 0 {
			return Catalog{}, fmt.Errorf("%w: service %q has non-positive duration", ErrInvalidCatalog, s.ID)
		}
		if s.Price < 0 {
			return Catalog{}, fmt.Errorf("%w: service %q has negative price", ErrInvalidCatalog, s.ID)
		}
		if _, exists := byID[s.ID]; exists {
			return Catalog{}, fmt.Errorf("%w: duplicate service %q", ErrInvalidCatalog, s.ID)
		}
		byID[s.ID] = s
	}

	return Catalog{services: services, byID: byID}, nil
}

// DefaultCatalog возвращает канонический каталог барбершопа
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog([]Service{
		{ID: ServiceShave, Name: "Brijanje", Price: 4, DurationMinutes: 10},
		{ID: ServiceHaircut, Name: "Šišanje", Price: 8, DurationMinutes: 20},
		{ID: ServiceShaveAndHaircut, Name: "Brijanje i Šišanje", Price: 12, DurationMinutes: 30},
	})
	if err != nil {
		panic(err) // невозможен для статических значений
	}
	return catalog
}

// Get возвращает услугу по идентификатору
func (c Catalog) Get(id ServiceID) (Service, error) {
	s, ok := c.byID[id]
	if !ok {
		return Service{}, fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	return s, nil
}

// List возвращает услуги в порядке объявления
func (c Catalog) List() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}
