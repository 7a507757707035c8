package models

// LongTermDays is the rental length, in days, at which the long-term
// daily rate starts to apply.
const LongTermDays = 7

// CarType groups cars that share a pricing scheme. Rates are daily and
// differ by rental length and customer standing.
type CarType struct {
	Name        string
	Abbreviated bool // the name is an abbreviation (e.g. SUV)

	ShortTermRate float64 // rentals shorter than a week
	LongTermRate  float64 // rentals of a week or more
	VIPRate       float64 // VIP customers, regardless of length
}

// DailyRate resolves the rate that applies to a rental of the given
// length. VIP standing overrides the length-based tiers.
func (t CarType) DailyRate(days int, vip bool) float64 {
	if vip {
		return t.VIPRate
	}
	if days >= LongTermDays {
		return t.LongTermRate
	}
	return t.ShortTermRate
}

// Car is a single physical unit in the fleet, identified by its
// numberplate.
type Car struct {
	Plate string
	Type  string
}
