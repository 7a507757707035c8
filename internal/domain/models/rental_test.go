package models

import (
	"testing"
	"time"
)

var sedan = CarType{Name: "sedan", ShortTermRate: 50, LongTermRate: 40, VIPRate: 35}

func TestDailyRate_ShortTerm(t *testing.T) {
	if got := sedan.DailyRate(3, false); got != 50 {
		t.Errorf("expected short-term rate 50, got %v", got)
	}
	if got := sedan.DailyRate(LongTermDays-1, false); got != 50 {
		t.Errorf("expected short-term rate just under the threshold, got %v", got)
	}
}

func TestDailyRate_LongTerm(t *testing.T) {
	if got := sedan.DailyRate(LongTermDays, false); got != 40 {
		t.Errorf("expected long-term rate 40 at the threshold, got %v", got)
	}
	if got := sedan.DailyRate(30, false); got != 40 {
		t.Errorf("expected long-term rate 40, got %v", got)
	}
}

func TestDailyRate_VIPOverridesLength(t *testing.T) {
	if got := sedan.DailyRate(2, true); got != 35 {
		t.Errorf("expected VIP rate 35 for a short rental, got %v", got)
	}
	if got := sedan.DailyRate(30, true); got != 35 {
		t.Errorf("expected VIP rate 35 for a long rental, got %v", got)
	}
}

func TestBillFor(t *testing.T) {
	rental := Rental{
		ID:             "r-1",
		Plate:          "AB123CDE",
		CarType:        "sedan",
		CustomerNumber: "018974",
		Days:           3,
		DailyRate:      50,
		StartedAt:      time.Now(),
	}

	bill := BillFor(rental)

	if bill.Amount != 150 {
		t.Errorf("expected bill 150, got %v", bill.Amount)
	}
	if bill.RentalID != "r-1" || bill.CustomerNumber != "018974" {
		t.Errorf("bill lost its rental identity: %+v", bill)
	}
}

func TestValidCustomerNumber(t *testing.T) {
	valid := []string{"0", "018974", "123456"}
	for _, s := range valid {
		if !ValidCustomerNumber(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "abc", "12a4", "12 4", "-12"}
	for _, s := range invalid {
		if ValidCustomerNumber(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
