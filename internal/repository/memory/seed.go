package memory

import (
	"fmt"
	"math/rand"

	"github.com/dodeleye99/car-rental-system/internal/domain/models"
)

// Default pricing table. Rates are daily, in the shop's currency.
var defaultCarTypes = []models.CarType{
	{Name: "hatchback", ShortTermRate: 30, LongTermRate: 25, VIPRate: 20},
	{Name: "sedan", ShortTermRate: 50, LongTermRate: 40, VIPRate: 35},
	{Name: "suv", Abbreviated: true, ShortTermRate: 100, LongTermRate: 90, VIPRate: 80},
}

// Default fleet composition: 10 cars split across the three types.
var defaultFleet = []string{
	"hatchback", "sedan", "sedan", "suv", "suv",
	"hatchback", "hatchback", "hatchback", "sedan", "suv",
}

// SeedDefaultFleet loads the default pricing table and fleet into the
// store. Plates are generated pseudo-randomly from the given seed so a
// fixed seed yields a reproducible fleet.
func (s *Store) SeedDefaultFleet(seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	for _, t := range defaultCarTypes {
		s.AddCarType(t)
	}

	plates := make(map[string]struct{}, len(defaultFleet))
	for _, typeName := range defaultFleet {
		plate := randomPlate(rng)
		for {
			if _, taken := plates[plate]; !taken {
				break
			}
			plate = randomPlate(rng)
		}
		plates[plate] = struct{}{}

		if err := s.AddCar(models.Car{Plate: plate, Type: typeName}); err != nil {
			return fmt.Errorf("seed fleet: %w", err)
		}
	}

	return nil
}

// randomPlate produces a numberplate-style ID of the form LLdddLLL:
// two letters, three digits, three letters.
func randomPlate(rng *rand.Rand) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	const digits = "0123456789"

	buf := make([]byte, 0, 8)
	for i := 0; i < 2; i++ {
		buf = append(buf, letters[rng.Intn(len(letters))])
	}
	for i := 0; i < 3; i++ {
		buf = append(buf, digits[rng.Intn(len(digits))])
	}
	for i := 0; i < 3; i++ {
		buf = append(buf, letters[rng.Intn(len(letters))])
	}
	return string(buf)
}
