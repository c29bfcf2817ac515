package reservation

import (
	"context"

	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/models"
)

// GetMyReservation returns the caller's active reservation, or nil when the
// caller holds none.
type GetMyReservation struct {
	repo domain.Repository
}

func NewGetMyReservation(repo domain.Repository) *GetMyReservation {
	return &GetMyReservation{repo: repo}
}

func (uc *GetMyReservation) Execute(
	ctx context.Context,
	email string,
) (*models.Reservation, error) {
	return uc.repo.GetReservationByUserEmail(ctx, email)
}

// ListAllReservations is the admin projection over every active reservation.
type ListAllReservations struct {
	repo domain.Repository
}

func NewListAllReservations(repo domain.Repository) *ListAllReservations {
	return &ListAllReservations{repo: repo}
}

func (uc *ListAllReservations) Execute(
	ctx context.Context,
) ([]models.Reservation, error) {
	return uc.repo.ListReservations(ctx)
}
