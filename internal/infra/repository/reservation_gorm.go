package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bistro-systems/table-reserve/internal/domain/reservation"
	"github.com/bistro-systems/table-reserve/internal/httperr"
	"github.com/bistro-systems/table-reserve/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *ReservationGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Table
// --------------------------------------------------

func (r *ReservationGormRepository) GetTableByNumber(
	ctx context.Context,
	number int,
) (*models.Table, error) {

	var table models.Table
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *ReservationGormRepository) ListTables(
	ctx context.Context,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *ReservationGormRepository) ListAvailableTables(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Table, error) {

	// Anti-join on the half-open overlap predicate: a table is free iff no
	// reservation satisfies start_time < end AND end_time > start.
	occupied := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("table_id").
		Where("start_time < ? AND end_time > ?", end, start)

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", occupied).
		Order("number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByUserEmail(
	ctx context.Context,
	email string,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Table").
		Joins("JOIN users ON users.id = reservations.user_id").
		Where("users.email = ?", email).
		First(&res).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateReservation closes the check-then-act race: the overlap re-check and
// the insert run in one transaction, with the table row locked FOR UPDATE on
// postgres so concurrent bookings for the same table serialize. SQLite (used
// in tests) has no row locks but runs the whole transaction under its single
// writer lock, which gives the same guarantee. The unique index on
// reservations.user_id is the storage-level backstop for the one-reservation-
// per-user invariant.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var table models.Table
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&table, res.TableID).Error; err != nil {
			return httperr.ErrBusiness(httperr.CodeTableNotFound)
		}

		var count int64
		if err := tx.
			Model(&models.Reservation{}).
			Where(
				"table_id = ? AND start_time < ? AND end_time > ?",
				res.TableID,
				res.EndTime,
				res.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeTableAlreadyReserved)
		}

		if err := tx.
			Model(&models.Reservation{}).
			Where("user_id = ?", res.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeUserAlreadyReserved)
		}

		return tx.Create(res).Error
	})
}

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Table").
		First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteReservation removes the row; user and table sides are plain indexes
// on it, so the single DELETE unlinks both atomically.
func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {

	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}
	return nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Table").
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
