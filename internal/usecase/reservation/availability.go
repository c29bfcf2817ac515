package reservation

import (
	"context"
	"time"

	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type FindAvailableTables struct {
	repo domain.Repository
}

func NewFindAvailableTables(repo domain.Repository) *FindAvailableTables {
	return &FindAvailableTables{repo: repo}
}

// Execute clamps the requested duration into the bookable range and returns
// every table free for [start, start+duration) under the shared overlap
// predicate.
func (uc *FindAvailableTables) Execute(
	ctx context.Context,
	start time.Time,
	durationMinutes int,
) ([]models.Table, error) {

	minutes := domain.ClampDuration(durationMinutes)
	end := start.Add(time.Duration(minutes) * time.Minute)

	return uc.repo.ListAvailableTables(ctx, start, end)
}
