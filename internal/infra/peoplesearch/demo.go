package peoplesearch

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"

	"giftscout/config"
	"giftscout/internal/domain/entity"
)

var (
	demoFirstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	}
	demoLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	demoOccupations = []string{
		"Software Engineer", "Teacher", "Nurse", "Accountant", "Sales Manager",
		"Graphic Designer", "Electrician", "Chef", "Real Estate Agent", "Dentist",
	}
	demoIncomes = []string{
		"$35K-$50K", "$50K-$75K", "$75K-$100K", "$100K-$150K", "$150K+",
	}
	demoInterests = []string{
		"Golf", "Cooking", "Travel", "Gardening", "Photography", "Fitness",
		"Reading", "Wine", "Hiking", "Music",
	}
)

// DemoGenerator fabricates a plausible result set around a point when the
// provider has no credentials. Output is deterministic for a fixed seed.
type DemoGenerator struct {
	count  int
	jitter float64
	seed   int64
}

// NewDemoGenerator builds a generator from the search configuration.
func NewDemoGenerator(cfg *config.SearchConfig) *DemoGenerator {
	return &DemoGenerator{
		count:  cfg.DemoCount,
		jitter: cfg.DemoJitterDeg,
		seed:   cfg.DemoSeed,
	}
}

// GeneratePeople returns synthetic people scattered within the jitter bound
// around center. Identities are stable across calls for the same seed.
func (g *DemoGenerator) GeneratePeople(center orb.Point) []entity.Person {
	rng := rand.New(rand.NewSource(g.seed))

	people := make([]entity.Person, 0, g.count)
	for i := 0; i < g.count; i++ {
		first := demoFirstNames[rng.Intn(len(demoFirstNames))]
		last := demoLastNames[rng.Intn(len(demoLastNames))]

		interestCount := 1 + rng.Intn(3)
		interests := make([]string, 0, interestCount)
		for len(interests) < interestCount {
			candidate := demoInterests[rng.Intn(len(demoInterests))]
			if !contains(interests, candidate) {
				interests = append(interests, candidate)
			}
		}

		people = append(people, entity.Person{
			ID:              fmt.Sprintf("demo-person-%d", i+1),
			Latitude:        center.Lat() + (rng.Float64()*2-1)*g.jitter,
			Longitude:       center.Lon() + (rng.Float64()*2-1)*g.jitter,
			FirstName:       first,
			LastName:        last,
			Age:             25 + rng.Intn(50),
			Gender:          []string{"M", "F"}[rng.Intn(2)],
			Address:         fmt.Sprintf("%d Main St", 100+rng.Intn(900)),
			EstimatedIncome: demoIncomes[rng.Intn(len(demoIncomes))],
			HouseholdSize:   1 + rng.Intn(5),
			ChildrenPresent: rng.Intn(2) == 0,
			Homeowner:       rng.Intn(3) > 0,
			Occupation:      demoOccupations[rng.Intn(len(demoOccupations))],
			BusinessOwner:   rng.Intn(5) == 0,
			Interests:       interests,
		})
	}

	return people
}

func contains(values []string, candidate string) bool {
	for _, v := range values {
		if v == candidate {
			return true
		}
	}

	return false
}
