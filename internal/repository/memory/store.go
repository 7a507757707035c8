package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dodeleye99/car-rental-system/internal/domain/models"
)

// ErrUnknownCarType indicates the requested car type is not part of the
// shop's pricing table.
var ErrUnknownCarType = errors.New("unknown car type")

// ErrNoCarsAvailable indicates every unit of the requested type is
// currently rented out.
var ErrNoCarsAvailable = errors.New("no cars available")

// ErrRentalNotFound indicates no rental exists under the given ID.
var ErrRentalNotFound = errors.New("rental not found")

// ErrRentalClosed indicates the rental was already returned.
var ErrRentalClosed = errors.New("rental already closed")

// Ledger defines the storage operations the shop service needs.
type Ledger interface {
	CarTypes(ctx context.Context) ([]models.CarType, error)
	CarType(ctx context.Context, name string) (models.CarType, error)
	Availability(ctx context.Context) (map[string]int, error)
	RentCar(ctx context.Context, rental models.Rental) (models.Rental, error)
	ReturnRental(ctx context.Context, id string, returnedAt time.Time) (models.Rental, error)
	Rental(ctx context.Context, id string) (models.Rental, error)
	OpenRentals(ctx context.Context) ([]models.Rental, error)
	OpenRentalByCustomer(ctx context.Context, customerNumber string) (models.Rental, error)
}

// Store implements the Ledger interface in process memory. It owns all
// car, pricing and rental records for the lifetime of the process.
type Store struct {
	mu        sync.RWMutex
	types     map[string]models.CarType
	typeOrder []string
	cars      map[string]models.Car // keyed by plate
	held      map[string]string     // plate -> open rental ID
	rentals   map[string]models.Rental
	logger    *zap.Logger
}

// NewStore creates an empty store. Populate it with AddCarType/AddCar
// or SeedDefaultFleet before serving requests.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		types:   make(map[string]models.CarType),
		cars:    make(map[string]models.Car),
		held:    make(map[string]string),
		rentals: make(map[string]models.Rental),
		logger:  logger,
	}
}

// AddCarType registers a car type and its rates. Re-adding a known type
// overwrites its rates.
func (s *Store) AddCarType(t models.CarType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.types[t.Name]; !exists {
		s.typeOrder = append(s.typeOrder, t.Name)
	}
	s.types[t.Name] = t
}

// AddCar adds a unit to the fleet. The car's type must already be
// registered.
func (s *Store) AddCar(c models.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.types[c.Type]; !ok {
		return fmt.Errorf("add car %s: %w", c.Plate, ErrUnknownCarType)
	}
	s.cars[c.Plate] = c
	return nil
}

// CarTypes lists the registered car types in registration order.
func (s *Store) CarTypes(ctx context.Context) ([]models.CarType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CarType, 0, len(s.typeOrder))
	for _, name := range s.typeOrder {
		out = append(out, s.types[name])
	}
	return out, nil
}

// CarType looks up a single car type by name.
func (s *Store) CarType(ctx context.Context, name string) (models.CarType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.types[name]
	if !ok {
		return models.CarType{}, fmt.Errorf("car type %q: %w", name, ErrUnknownCarType)
	}
	return t, nil
}

// Availability counts the un-rented units of every registered type.
func (s *Store) Availability(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.types))
	for name := range s.types {
		counts[name] = 0
	}
	for plate, car := range s.cars {
		if _, rented := s.held[plate]; rented {
			continue
		}
		counts[car.Type]++
	}
	return counts, nil
}

// RentCar claims a free unit of rental.CarType, assigns its plate to
// the rental and records the rental as open. The claimed unit is the
// first free plate in lexical order so behaviour is deterministic.
func (s *Store) RentCar(ctx context.Context, rental models.Rental) (models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.types[rental.CarType]; !ok {
		return models.Rental{}, fmt.Errorf("car type %q: %w", rental.CarType, ErrUnknownCarType)
	}

	plate, ok := s.freePlateLocked(rental.CarType)
	if !ok {
		return models.Rental{}, fmt.Errorf("car type %q: %w", rental.CarType, ErrNoCarsAvailable)
	}

	rental.Plate = plate
	s.held[plate] = rental.ID
	s.rentals[rental.ID] = rental

	s.logger.Debug("car rented",
		zap.String("rental_id", rental.ID),
		zap.String("plate", plate),
		zap.String("car_type", rental.CarType))

	return rental, nil
}

// ReturnRental closes an open rental and frees its unit. A rental can
// only be closed once.
func (s *Store) ReturnRental(ctx context.Context, id string, returnedAt time.Time) (models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental, ok := s.rentals[id]
	if !ok {
		return models.Rental{}, fmt.Errorf("rental %q: %w", id, ErrRentalNotFound)
	}
	if !rental.Open() {
		return models.Rental{}, fmt.Errorf("rental %q: %w", id, ErrRentalClosed)
	}

	rental.ReturnedAt = &returnedAt
	s.rentals[id] = rental
	delete(s.held, rental.Plate)

	s.logger.Debug("car returned",
		zap.String("rental_id", rental.ID),
		zap.String("plate", rental.Plate))

	return rental, nil
}

// Rental looks up a rental by ID, open or closed.
func (s *Store) Rental(ctx context.Context, id string) (models.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rental, ok := s.rentals[id]
	if !ok {
		return models.Rental{}, fmt.Errorf("rental %q: %w", id, ErrRentalNotFound)
	}
	return rental, nil
}

// OpenRentals lists every open rental, oldest first.
func (s *Store) OpenRentals(ctx context.Context) ([]models.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Rental
	for _, rental := range s.rentals {
		if rental.Open() {
			out = append(out, rental)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}

// OpenRentalByCustomer finds the customer's oldest open rental.
func (s *Store) OpenRentalByCustomer(ctx context.Context, customerNumber string) (models.Rental, error) {
	rentals, err := s.OpenRentals(ctx)
	if err != nil {
		return models.Rental{}, err
	}
	for _, rental := range rentals {
		if rental.CustomerNumber == customerNumber {
			return rental, nil
		}
	}
	return models.Rental{}, fmt.Errorf("customer %s: %w", customerNumber, ErrRentalNotFound)
}

func (s *Store) freePlateLocked(typeName string) (string, bool) {
	var plates []string
	for plate, car := range s.cars {
		if car.Type != typeName {
			continue
		}
		if _, rented := s.held[plate]; rented {
			continue
		}
		plates = append(plates, plate)
	}
	if len(plates) == 0 {
		return "", false
	}
	sort.Strings(plates)
	return plates[0], true
}
