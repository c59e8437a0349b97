package tui

import (
	"errors"
	"fmt"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

// userMessage turns an error into a short status line.
// It never replaces the generic submit notice; it only feeds the debug footer.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return "Missing fields"
	case domain.IsKind(err, domain.KindHTTPStatus):
		var se *domain.StatusError
		if errors.As(err, &se) {
			return fmt.Sprintf("Server returned %d", se.StatusCode)
		}
		return "Server error"
	case domain.IsKind(err, domain.KindTransport):
		return "Backend unreachable"
	case domain.IsKind(err, domain.KindDecode):
		return "Unexpected response from backend"
	case domain.IsKind(err, domain.KindInvalidConfig):
		return "Invalid config"
	case domain.IsKind(err, domain.KindLoad):
		return "Could not load recipes"
	default:
		return "Unexpected error (see logs)"
	}
}
