package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidParams marks a page or limit that was supplied but is out of range.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params are normalized page and limit values. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// ParseParams normalizes raw query values.
//
// Blank or non-numeric input falls back to the configured default. A numeric
// value below 1, or a limit above cfg.MaxLimit, is rejected with an error
// wrapping ErrInvalidParams; values are never silently clamped.
func ParseParams(rawLimit, rawPage string, cfg Config) (Params, error) {
	p := Params{Page: cfg.DefaultPage, Limit: cfg.DefaultLimit}

	if limit, ok := parseInt(rawLimit); ok {
		if limit < 1 || (cfg.MaxLimit > 0 && limit > cfg.MaxLimit) {
			return p, fmt.Errorf("%w: limit must be between 1 and %d (raise PAGINATION_MAX_LIMIT for larger pages)", ErrInvalidParams, cfg.MaxLimit)
		}
		p.Limit = limit
	}

	if page, ok := parseInt(rawPage); ok {
		if page < 1 {
			return p, fmt.Errorf("%w: page must be a positive integer", ErrInvalidParams)
		}
		p.Page = page
	}

	return p, nil
}

// Offset is the row offset of the first item on the page.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
