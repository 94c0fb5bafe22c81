package repository

import (
	"context"

	"github.com/Natim/payment-plan-generator/internal/domain"
)

// QuarterRepository defines access to published usury quarter data.
// Quarters are regulatory reference data; they are read, never written,
// by the quoting service.
type QuarterRepository interface {
	// GetByLabel retrieves one quarter publication by its label
	GetByLabel(ctx context.Context, label string) (*domain.Quarter, error)

	// List retrieves all known quarter publications
	List(ctx context.Context) ([]*domain.Quarter, error)
}
