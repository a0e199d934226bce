package repository

import (
	"context"
	"errors"
	"fmt"

	"bank-booking/internal/data/entity"
	"bank-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByDateLocation(ctx context.Context, date, location string) ([]*entity.Booking, error)

	// CreateIfAvailable re-checks the buffer rule and inserts in one
	// transaction. Returns ErrConflict when the slot is taken.
	CreateIfAvailable(ctx context.Context, booking *entity.Booking) error

	// Delete looks the row up first so the caller can return it in the
	// confirmation. Returns ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, name, phone, age, date, time, location, created_at`

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBookingRow(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByDateLocation(ctx context.Context, date, location string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1 AND location = $2
	`

	rows, err := r.db.Query(ctx, query, date, location)
	if err != nil {
		r.log.Error("Failed to find bookings by date and location",
			zap.Error(err),
			zap.String("date", date),
			zap.String("location", location),
		)
		return nil, fmt.Errorf("find bookings for %s at %s: %w", date, location, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent submissions for the same date+location so the
	// availability check and the insert below are atomic. Without the lock two
	// requests for adjacent times could both pass the check and both insert.
	lockKey := booking.Date + "|" + booking.Location
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		r.log.Error("Failed to take slot lock", zap.Error(err), zap.String("key", lockKey))
		return fmt.Errorf("lock slot %s: %w", lockKey, err)
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1 AND location = $2
	`
	rows, err := tx.Query(ctx, query, booking.Date, booking.Location)
	if err != nil {
		return fmt.Errorf("check slot availability: %w", err)
	}
	existing, err := scanBookings(rows)
	if err != nil {
		return fmt.Errorf("check slot availability: %w", err)
	}

	r.warnMalformedTimes(existing)

	minutes, _ := entity.TimeToMinutes(booking.Time)
	if !entity.Available(existing, minutes) {
		return fmt.Errorf("slot %s %s at %s: %w", booking.Date, booking.Time, booking.Location, ErrConflict)
	}

	insert := `
		INSERT INTO bookings (id, name, phone, age, date, time, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.Name,
		booking.Phone,
		booking.Age,
		booking.Date,
		booking.Time,
		booking.Location,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking", zap.Error(err))
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return booking, nil
}

// warnMalformedTimes flags stored rows whose time string does not parse.
// They are still counted at midnight by entity.Available, so a broken row can
// silently block the 00:00 neighborhood; the log line is how we notice.
func (r *bookingRepository) warnMalformedTimes(bookings []*entity.Booking) {
	for _, b := range bookings {
		if _, ok := entity.TimeToMinutes(b.Time); !ok {
			r.log.Warn("Stored booking has malformed time, treated as 00:00",
				zap.String("booking_id", b.ID.String()),
				zap.String("time", b.Time),
			)
		}
	}
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Phone,
			&booking.Age,
			&booking.Date,
			&booking.Time,
			&booking.Location,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

func scanBookingRow(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Phone,
		&booking.Age,
		&booking.Date,
		&booking.Time,
		&booking.Location,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
