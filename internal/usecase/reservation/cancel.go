package reservation

import (
	"context"

	"github.com/bistro-systems/table-reserve/internal/audit"
	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the reservation. Owners may cancel their own booking;
// admins may cancel any. The delete is a single atomic statement, so the
// user and table sides can never disagree about whether it happened.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	requesterEmail string,
	requesterRole string,
	reservationID uint,
) error {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	if requesterRole != models.RoleAdmin && res.User.Email != requesterEmail {
		return httperr.ErrBusiness(httperr.CodeNotReservationOwner)
	}

	if err := uc.repo.DeleteReservation(ctx, reservationID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &res.UserID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &reservationID,
	})

	return nil
}
