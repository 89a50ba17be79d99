package dice

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/nontransitive/internal/platform/errors"
)

// ErrUnknownCode indicates a die code that names no catalog die.
var ErrUnknownCode = apperrors.New(apperrors.CodeDiceUnknownCode, "unrecognized dice code")

// ErrDuplicate indicates the same die was selected twice.
var ErrDuplicate = apperrors.New(apperrors.CodeDiceDuplicate, "die selected more than once")

// ErrSelectionTooSmall indicates fewer than two dice were selected.
var ErrSelectionTooSmall = apperrors.New(apperrors.CodeDiceSelectionTooSmall, "at least two dice must be selected")

// The canonical non-transitive set. Each die beats two others and loses to
// two others on a single roll.
var (
	Red     = MustNew("Red", [Sides]int{4, 4, 4, 4, 4, 9})
	Blue    = MustNew("Blue", [Sides]int{2, 2, 2, 7, 7, 7})
	Olive   = MustNew("Olive", [Sides]int{0, 5, 5, 5, 5, 5})
	Yellow  = MustNew("Yellow", [Sides]int{3, 3, 3, 3, 8, 8})
	Magenta = MustNew("Magenta", [Sides]int{1, 1, 6, 6, 6, 6})
)

// DefaultCodes selects the whole catalog.
const DefaultCodes = "r,b,o,y,m"

var codes = map[string]Die{
	"r":       Red,
	"red":     Red,
	"b":       Blue,
	"blue":    Blue,
	"o":       Olive,
	"olive":   Olive,
	"g":       Olive,
	"green":   Olive,
	"y":       Yellow,
	"yellow":  Yellow,
	"m":       Magenta,
	"magenta": Magenta,
	"p":       Magenta,
	"purple":  Magenta,
}

// Catalog returns the canonical dice in catalog order.
func Catalog() []Die {
	return []Die{Red, Blue, Olive, Yellow, Magenta}
}

// ParseCode resolves a short, case-insensitive die code such as "r" or
// "purple" to its catalog die.
func ParseCode(code string) (Die, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	d, ok := codes[key]
	if !ok {
		return Die{}, apperrors.Detail(ErrUnknownCode,
			fmt.Sprintf("%q is not a recognized dice code", code),
			map[string]string{"code": code})
	}
	return d, nil
}

// ParseCodes resolves a comma-separated list of die codes, keeping the order
// in which they are listed.
func ParseCodes(list string) ([]Die, error) {
	parts := strings.Split(list, ",")
	selected := make([]Die, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseCode(part)
		if err != nil {
			return nil, err
		}
		if seen[d.Name()] {
			return nil, apperrors.Detail(ErrDuplicate,
				fmt.Sprintf("%s selected more than once", d.Name()),
				map[string]string{"die": d.Name()})
		}
		seen[d.Name()] = true
		selected = append(selected, d)
	}
	if len(selected) < 2 {
		return nil, apperrors.Detail(ErrSelectionTooSmall,
			fmt.Sprintf("at least two dice must be selected, got %d", len(selected)),
			nil)
	}
	return selected, nil
}
