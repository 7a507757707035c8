package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/dodeleye99/car-rental-system/internal/domain/models"
	"github.com/dodeleye99/car-rental-system/internal/service/shop"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

const helpText = `Available commands:
  inquire                                  show car types, rates and availability
  rent <type> <days> <customer> [vip]      rent a car of the given type
  return <rental-id | customer-number>     return a car and receive the bill
  rentals                                  list open rentals
  help                                     show this message
  exit                                     leave the shop`

// Shop defines the rental operations required by the dispatcher.
type Shop interface {
	StockListing(ctx context.Context) ([]shop.StockLine, error)
	ProcessRequest(ctx context.Context, customer models.Customer, carType string, days int) (models.Rental, error)
	IssueBill(ctx context.Context, rentalRef string) (models.Bill, error)
	OpenRentals(ctx context.Context) ([]models.Rental, error)
}

// Service executes parsed commands against the shop and formats the
// terminal replies.
type Service struct {
	shop     Shop
	currency string
	logger   *zap.Logger
}

// NewService constructs a command dispatcher.
func NewService(shopSvc Shop, currency string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		shop:     shopSvc,
		currency: currency,
		logger:   logger,
	}
}

// HandleCommand runs the shop operation behind the command and returns
// the reply to print. Domain errors (out of stock, unknown rental,
// invalid request) pass through for the caller to phrase.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.Any("args", cmd.Args))

	switch cmd.Type {
	case models.CommandInquire:
		return s.handleInquire(ctx)
	case models.CommandRent:
		return s.handleRent(ctx, cmd)
	case models.CommandReturn:
		return s.handleReturn(ctx, cmd)
	case models.CommandRentals:
		return s.handleRentals(ctx)
	case models.CommandHelp:
		return helpText, nil
	default:
		return "", ErrUnsupportedCommand
	}
}

func (s *Service) handleInquire(ctx context.Context) (string, error) {
	lines, err := s.shop.StockListing(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Current stock:")
	for _, line := range lines {
		t := line.Type
		b.WriteString(fmt.Sprintf("\n  %-10s %d available  %s/day (%s/day from %d days, %s/day VIP)",
			t.Name, line.Available,
			s.money(t.ShortTermRate), s.money(t.LongTermRate), models.LongTermDays, s.money(t.VIPRate)))
	}
	return b.String(), nil
}

func (s *Service) handleRent(ctx context.Context, cmd models.Command) (string, error) {
	if len(cmd.Args) < 3 || len(cmd.Args) > 4 {
		return "", fmt.Errorf("%w: usage: rent <type> <days> <customer> [vip]", ErrInvalidArguments)
	}

	carType := cmd.Args[0]
	days, err := strconv.Atoi(cmd.Args[1])
	if err != nil {
		return "", fmt.Errorf("%w: days must be a number, got %q", ErrInvalidArguments, cmd.Args[1])
	}

	customer := models.Customer{Number: cmd.Args[2]}
	if len(cmd.Args) > 3 {
		if cmd.Args[3] != "vip" {
			return "", fmt.Errorf("%w: unexpected argument %q", ErrInvalidArguments, cmd.Args[3])
		}
		customer.VIP = true
	}

	rental, err := s.shop.ProcessRequest(ctx, customer, carType, days)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Rental confirmed: %s %s for %d day(s) at %s/day.\nReference: %s",
		rental.CarType, rental.Plate, rental.Days, s.money(rental.DailyRate), rental.ID), nil
}

func (s *Service) handleReturn(ctx context.Context, cmd models.Command) (string, error) {
	if len(cmd.Args) != 1 {
		return "", fmt.Errorf("%w: usage: return <rental-id | customer-number>", ErrInvalidArguments)
	}

	bill, err := s.shop.IssueBill(ctx, cmd.Args[0])
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Return complete: %s %s.\nBill for customer %s: %d day(s) x %s = %s",
		bill.CarType, bill.Plate, bill.CustomerNumber, bill.Days, s.money(bill.DailyRate), s.money(bill.Amount)), nil
}

func (s *Service) handleRentals(ctx context.Context) (string, error) {
	rentals, err := s.shop.OpenRentals(ctx)
	if err != nil {
		return "", err
	}

	if len(rentals) == 0 {
		return "No open rentals.", nil
	}

	var b strings.Builder
	b.WriteString("Open rentals:")
	for _, r := range rentals {
		b.WriteString(fmt.Sprintf("\n  %s  %s %s  customer %s  %d day(s)",
			r.ID, r.CarType, r.Plate, r.CustomerNumber, r.Days))
	}
	return b.String(), nil
}

func (s *Service) money(amount float64) string {
	return s.currency + humanize.CommafWithDigits(amount, 2)
}
