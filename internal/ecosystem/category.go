package ecosystem

import (
	"fmt"
	"strings"
)

// Category is the trophic role of a species.
type Category string

const (
	Producer   Category = "Producer"
	Herbivore  Category = "Herbivore"
	Carnivore  Category = "Carnivore"
	Decomposer Category = "Decomposer"
)

// Categories lists every category in food chain order.
var Categories = []Category{Producer, Herbivore, Carnivore, Decomposer}

var categoryAliases = map[string]Category{
	"producer":   Producer,
	"herbivore":  Herbivore,
	"carnivore":  Carnivore,
	"decomposer": Decomposer,
	"ผู้ผลิต":    Producer,
	"กินพืช":     Herbivore,
	"กินเนื้อ":   Carnivore,
	"ย่อยสลาย":   Decomposer,
}

// ParseCategory converts user input into a Category. Matching on the English
// names is case-insensitive.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) Valid() bool {
	switch c {
	case Producer, Herbivore, Carnivore, Decomposer:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
