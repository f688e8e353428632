package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"

	"github.com/google/uuid"
)

// SlotRepository owns reads and writes of the training_slots-style inventory.
// Every write that depends on a counter or status precondition goes through
// either a conditional UPDATE or an explicit transaction; the database is the
// only coordination point between concurrent requests.
type SlotRepository struct {
	DB *sql.DB
}

const slotColumns = `id, date, start_time, package_name, price, capacity, booked_count, status,
		COALESCE(customer_name, ''), COALESCE(customer_email, ''), COALESCE(user_id, '')`

func scanSlot(row interface{ Scan(...any) error }) (models.Slot, error) {
	var s models.Slot
	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.PackageName,
		&s.Price,
		&s.Capacity,
		&s.BookedCount,
		&s.Status,
		&s.CustomerName,
		&s.CustomerEmail,
		&s.UserID,
	)
	return s, err
}

func (r SlotRepository) GetByID(id string) (models.Slot, error) {
	row := r.DB.QueryRow(`SELECT `+slotColumns+` FROM slots WHERE id = ? LIMIT 1`, id)
	s, err := scanSlot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Slot{}, domain.NotFoundError{Resource: "slot", Err: err}
	}
	if err != nil {
		return models.Slot{}, err
	}
	return s, nil
}

// ListAvailable returns open slots sorted by date and start time.
func (r SlotRepository) ListAvailable() ([]models.Slot, error) {
	return r.list(`SELECT ` + slotColumns + ` FROM slots WHERE status = 'available' ORDER BY date ASC, start_time ASC`)
}

// ListAll returns every slot regardless of status (admin view).
func (r SlotRepository) ListAll() ([]models.Slot, error) {
	return r.list(`SELECT ` + slotColumns + ` FROM slots ORDER BY date ASC, start_time ASC`)
}

func (r SlotRepository) list(query string) ([]models.Slot, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Slot{}
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SlotRepository) Create(s models.Slot) (models.Slot, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.Status = models.SlotStatusAvailable
	s.BookedCount = 0
	_, err := r.DB.Exec(`
		INSERT INTO slots (id, date, start_time, package_name, price, capacity, booked_count, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, 'available', NOW(), NOW())
	`, s.ID, s.Date, s.StartTime, s.PackageName, s.Price, s.Capacity)
	if err != nil {
		return models.Slot{}, err
	}
	return s, nil
}

func (r SlotRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "slot"}
	}
	return nil
}

// MarkPending places the provisional hold for one checkout attempt. The
// conditional WHERE closes the race between two shoppers clicking the same
// slot: only one UPDATE can match status='available'.
func (r SlotRepository) MarkPending(id, customerName, customerEmail, userID string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE slots
		SET status = 'pending', customer_name = ?, customer_email = ?, user_id = ?, updated_at = NOW()
		WHERE id = ? AND status = 'available'
	`, customerName, customerEmail, userID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevertPending releases the hold, but only while it is still a hold. A slot
// that a completion already advanced past 'pending' is left untouched.
func (r SlotRepository) RevertPending(id string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE slots
		SET status = 'available', customer_name = NULL, customer_email = NULL, user_id = NULL, updated_at = NOW()
		WHERE id = ? AND status = 'pending'
	`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FinalizeBooking applies a confirmed payment in one transaction: re-read the
// slot under a row lock, bump the counter, recompute status and append the
// booking row. Returns applied=false when a booking for the same payment
// session already exists, which makes redelivered events no-ops.
func (r SlotRepository) FinalizeBooking(b models.Booking) (applied bool, err error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var dup int
	if err = tx.QueryRow(`SELECT COUNT(*) FROM bookings WHERE session_id = ?`, b.SessionID).Scan(&dup); err != nil {
		return false, err
	}
	if dup > 0 {
		err = tx.Rollback()
		return false, err
	}

	var (
		booked   int
		capacity int
		status   string
	)
	err = tx.QueryRow(`SELECT booked_count, capacity, status FROM slots WHERE id = ? FOR UPDATE`, b.SlotID).
		Scan(&booked, &capacity, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.NotFoundError{Resource: "slot", Err: err}
		return false, err
	}
	if err != nil {
		return false, err
	}

	newBooked := booked + 1
	if newBooked > capacity {
		err = domain.ConflictError{Resource: "slot", Msg: fmt.Sprintf("capacity %d exceeded", capacity)}
		return false, err
	}
	newStatus := models.SlotStatusAvailable
	if newBooked >= capacity {
		newStatus = models.SlotStatusSoldOut
	}

	_, err = tx.Exec(`
		UPDATE slots
		SET booked_count = ?, status = ?, customer_name = NULL, customer_email = NULL, user_id = NULL, updated_at = NOW()
		WHERE id = ?
	`, newBooked, string(newStatus), b.SlotID)
	if err != nil {
		return false, err
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err = tx.Exec(`
		INSERT INTO bookings (id, slot_id, customer_name, customer_email, user_id, session_id, amount_cents, status, created_at, paid_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, b.ID, b.SlotID, b.CustomerName, b.CustomerEmail, b.UserID, b.SessionID, b.AmountCents, string(models.BookingStatusConfirmed))
	if err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
