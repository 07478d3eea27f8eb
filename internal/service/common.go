package service

import (
	"strings"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
)

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return ledger.Invalidf("%s must be > 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return ledger.Invalidf("%s must be > 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return ledger.Invalidf("%s must be >= 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// matchesIDOrName reports whether idOrName is the exact id or, ignoring case,
// the name.
func matchesIDOrName(id, name, idOrName string) bool {
	idOrName = strings.TrimSpace(idOrName)
	return id == idOrName || normalizeName(name) == normalizeName(idOrName)
}
