package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dodeleye99/car-rental-system/internal/domain/models"
	"github.com/dodeleye99/car-rental-system/internal/repository/memory"
)

// ErrInvalidRequest indicates the rental request itself was malformed:
// non-positive duration, bad customer number or unknown car type.
var ErrInvalidRequest = errors.New("invalid rental request")

// ErrOutOfStock indicates no unit of the requested type is available.
var ErrOutOfStock = errors.New("out of stock")

// ErrUnknownRental indicates the rental reference matches nothing that
// is still open.
var ErrUnknownRental = errors.New("unknown rental")

// StockLine is one row of the shop's stock listing.
type StockLine struct {
	Type      models.CarType
	Available int
}

// Service implements the rental shop operations on top of the ledger.
type Service struct {
	ledger memory.Ledger
	logger *zap.Logger
	now    func() time.Time
}

// NewService constructs a rental shop service.
func NewService(ledger memory.Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// StockListing reports the current availability and rates of every car
// type. It has no side effects.
func (s *Service) StockListing(ctx context.Context) ([]StockLine, error) {
	types, err := s.ledger.CarTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list car types: %w", err)
	}

	counts, err := s.ledger.Availability(ctx)
	if err != nil {
		return nil, fmt.Errorf("count availability: %w", err)
	}

	lines := make([]StockLine, 0, len(types))
	for _, t := range types {
		lines = append(lines, StockLine{Type: t, Available: counts[t.Name]})
	}
	return lines, nil
}

// ProcessRequest rents one unit of the given car type to the customer
// for the given number of days. The daily rate is resolved from the
// type's pricing tiers and locked into the rental record.
func (s *Service) ProcessRequest(ctx context.Context, customer models.Customer, carType string, days int) (models.Rental, error) {
	if days <= 0 {
		return models.Rental{}, fmt.Errorf("%w: rental days must be positive, got %d", ErrInvalidRequest, days)
	}
	if !models.ValidCustomerNumber(customer.Number) {
		return models.Rental{}, fmt.Errorf("%w: customer number must be digits only", ErrInvalidRequest)
	}

	t, err := s.ledger.CarType(ctx, carType)
	if err != nil {
		if errors.Is(err, memory.ErrUnknownCarType) {
			return models.Rental{}, fmt.Errorf("%w: no such car type %q", ErrInvalidRequest, carType)
		}
		return models.Rental{}, fmt.Errorf("resolve car type: %w", err)
	}

	rental := models.Rental{
		ID:             uuid.NewString(),
		CarType:        t.Name,
		CustomerNumber: customer.Number,
		Days:           days,
		DailyRate:      t.DailyRate(days, customer.VIP),
		StartedAt:      s.now().UTC(),
	}

	created, err := s.ledger.RentCar(ctx, rental)
	if err != nil {
		if errors.Is(err, memory.ErrNoCarsAvailable) {
			return models.Rental{}, fmt.Errorf("%w: every %s is rented out", ErrOutOfStock, t.Name)
		}
		return models.Rental{}, fmt.Errorf("rent car: %w", err)
	}

	s.logger.Info("rental created",
		zap.String("rental_id", created.ID),
		zap.String("car_type", created.CarType),
		zap.String("plate", created.Plate),
		zap.String("customer", created.CustomerNumber),
		zap.Int("days", created.Days),
		zap.Float64("daily_rate", created.DailyRate))

	return created, nil
}

// IssueBill closes a rental and returns its bill. The reference may be
// a rental ID or a customer number, in which case the customer's oldest
// open rental is returned.
func (s *Service) IssueBill(ctx context.Context, rentalRef string) (models.Bill, error) {
	id := rentalRef
	if models.ValidCustomerNumber(rentalRef) {
		rental, err := s.ledger.OpenRentalByCustomer(ctx, rentalRef)
		if err != nil {
			if errors.Is(err, memory.ErrRentalNotFound) {
				return models.Bill{}, fmt.Errorf("%w: customer %s has no open rental", ErrUnknownRental, rentalRef)
			}
			return models.Bill{}, fmt.Errorf("find rental for customer: %w", err)
		}
		id = rental.ID
	}

	closed, err := s.ledger.ReturnRental(ctx, id, s.now().UTC())
	if err != nil {
		if errors.Is(err, memory.ErrRentalNotFound) || errors.Is(err, memory.ErrRentalClosed) {
			return models.Bill{}, fmt.Errorf("%w: %s", ErrUnknownRental, rentalRef)
		}
		return models.Bill{}, fmt.Errorf("return rental: %w", err)
	}

	bill := models.BillFor(closed)

	s.logger.Info("rental returned",
		zap.String("rental_id", closed.ID),
		zap.String("plate", closed.Plate),
		zap.String("customer", closed.CustomerNumber),
		zap.Float64("bill", bill.Amount))

	return bill, nil
}

// OpenRentals lists every rental that has not been returned yet,
// oldest first.
func (s *Service) OpenRentals(ctx context.Context) ([]models.Rental, error) {
	rentals, err := s.ledger.OpenRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open rentals: %w", err)
	}
	return rentals, nil
}
