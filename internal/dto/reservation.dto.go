package dto

import (
	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/models"
)

// ReservationView is the flat projection returned to clients. Handlers never
// expose the relational entities directly, so no object graph or circular
// reference ever reaches the wire.
type ReservationView struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	TableNumber int    `json:"table_number"`
	Seats       int    `json:"seats"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type TableView struct {
	Number int `json:"number"`
	Seats  int `json:"seats"`
}

func NewReservationView(res *models.Reservation) ReservationView {
	return ReservationView{
		ID:          res.ID,
		Email:       res.User.Email,
		Name:        res.User.Name,
		TableNumber: res.Table.Number,
		Seats:       res.Table.Seats,
		StartTime:   res.StartTime.Format(domain.TimeLayout),
		EndTime:     res.EndTime.Format(domain.TimeLayout),
	}
}

func NewReservationViews(reservations []models.Reservation) []ReservationView {
	views := make([]ReservationView, 0, len(reservations))
	for i := range reservations {
		views = append(views, NewReservationView(&reservations[i]))
	}
	return views
}

func NewTableView(t *models.Table) TableView {
	return TableView{Number: t.Number, Seats: t.Seats}
}

func NewTableViews(tables []models.Table) []TableView {
	views := make([]TableView, 0, len(tables))
	for i := range tables {
		views = append(views, NewTableView(&tables[i]))
	}
	return views
}
