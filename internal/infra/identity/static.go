// Package identity resolves the user recipedeck acts for.
// There is no authentication yet; a fixed id stands in for it.
package identity

import (
	"strings"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/ports"
)

type Static struct {
	id string
}

// NewStatic returns a provider for id, falling back to domain.DefaultUserID when id is blank.
func NewStatic(id string) *Static {
	id = strings.TrimSpace(id)
	if id == "" {
		id = domain.DefaultUserID
	}
	return &Static{id: id}
}

func (s *Static) UserID() string { return s.id }

var _ ports.IdentityProvider = (*Static)(nil)
