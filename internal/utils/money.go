package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// AmountToCents convertit un montant décimal ("34.99") en centimes sans
// passer par un flottant.
func AmountToCents(amount string) (int64, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(amount), ".")

	switch len(frac) {
	case 0:
		frac = "00"
	case 1:
		frac += "0"
	case 2:
	default:
		return 0, fmt.Errorf("montant invalide: %q", amount)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("montant invalide: %q", amount)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("montant invalide: %q", amount)
	}

	return units*100 + cents, nil
}
