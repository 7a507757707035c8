package models

import "time"

// Rental is an active agreement: one car unit checked out by a customer
// for a number of days. The daily rate is locked in when the rental is
// created so later price changes cannot alter the bill.
type Rental struct {
	ID             string
	Plate          string
	CarType        string
	CustomerNumber string
	Days           int
	DailyRate      float64
	StartedAt      time.Time
	ReturnedAt     *time.Time
}

// Open reports whether the rental has not been returned yet.
func (r Rental) Open() bool {
	return r.ReturnedAt == nil
}

// Bill is the charge issued when a rental is returned. It is derived
// from the rental and never stored.
type Bill struct {
	RentalID       string
	CustomerNumber string
	CarType        string
	Plate          string
	Days           int
	DailyRate      float64
	Amount         float64
}

// BillFor computes the bill for a rental: locked daily rate times the
// number of days.
func BillFor(r Rental) Bill {
	return Bill{
		RentalID:       r.ID,
		CustomerNumber: r.CustomerNumber,
		CarType:        r.CarType,
		Plate:          r.Plate,
		Days:           r.Days,
		DailyRate:      r.DailyRate,
		Amount:         r.DailyRate * float64(r.Days),
	}
}
