package repository

import (
	"context"
	"time"

	"github.com/Natim/payment-plan-generator/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type quarterRepository struct {
	db *sqlx.DB
}

func NewQuarterRepository(db *sqlx.DB) QuarterRepository {
	return &quarterRepository{db: db}
}

// quarterRow mirrors the usury_quarters table; the day-offset arrays are
// stored as Postgres integer arrays.
type quarterRow struct {
	Label           string        `db:"label"`
	StartDate       time.Time     `db:"start_date"`
	Offsets         pq.Int64Array `db:"offsets"`
	DeferredOffsets pq.Int64Array `db:"deferred_offsets"`
}

func (r quarterRow) toDomain() *domain.Quarter {
	return &domain.Quarter{
		Label:           r.Label,
		Start:           r.StartDate,
		Offsets:         toInts(r.Offsets),
		DeferredOffsets: toInts(r.DeferredOffsets),
	}
}

func toInts(arr pq.Int64Array) []int {
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

func (r *quarterRepository) GetByLabel(ctx context.Context, label string) (*domain.Quarter, error) {
	query := `
		SELECT label, start_date, offsets, deferred_offsets
		FROM usury_quarters
		WHERE label = $1
	`

	var row quarterRow
	if err := r.db.GetContext(ctx, &row, query, label); err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

func (r *quarterRepository) List(ctx context.Context) ([]*domain.Quarter, error) {
	query := `
		SELECT label, start_date, offsets, deferred_offsets
		FROM usury_quarters
		ORDER BY start_date
	`

	var rows []quarterRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	quarters := make([]*domain.Quarter, 0, len(rows))
	for _, row := range rows {
		quarters = append(quarters, row.toDomain())
	}

	return quarters, nil
}
