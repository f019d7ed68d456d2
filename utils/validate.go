package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Manual-entry bounds. Validation runs in the controller, before any
// repository call; invalid input never reaches the data layer.
const (
	MaxFoodNameLength = 100
	MaxKcal           = 5000
	MaxMacroGrams     = 1000
)

// ValidateManualEntry checks a manual food entry and returns every
// problem found. An empty slice means the entry is valid.
func ValidateManualEntry(name string, kcal float64, protein, carbs, fat *float64) []string {
	var problems []string

	name = strings.TrimSpace(name)
	if name == "" {
		problems = append(problems, "name is required")
	} else if utf8.RuneCountInString(name) > MaxFoodNameLength {
		problems = append(problems, fmt.Sprintf("name must be at most %d characters", MaxFoodNameLength))
	}

	if kcal <= 0 {
		problems = append(problems, "calories must be greater than zero")
	} else if kcal > MaxKcal {
		problems = append(problems, fmt.Sprintf("calories must be at most %d", MaxKcal))
	}

	problems = append(problems, validateMacro("protein", protein)...)
	problems = append(problems, validateMacro("carbs", carbs)...)
	problems = append(problems, validateMacro("fat", fat)...)

	return problems
}

func validateMacro(label string, grams *float64) []string {
	if grams == nil {
		return nil
	}
	if *grams < 0 {
		return []string{label + " cannot be negative"}
	}
	if *grams > MaxMacroGrams {
		return []string{fmt.Sprintf("%s must be at most %dg", label, MaxMacroGrams)}
	}
	return nil
}
