package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"

	"github.com/google/uuid"
)

// CampRepository manages camp/event inventory. Camps are not held while a
// checkout is in flight; a seat is taken only when a completed payment lands,
// so the capacity check inside FinalizeBooking is the sole admission gate.
type CampRepository struct {
	DB *sql.DB
}

const campColumns = `id, title, description, start_date, end_date, price, capacity, booked_count, status`

func scanCamp(row interface{ Scan(...any) error }) (models.Camp, error) {
	var c models.Camp
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.StartDate,
		&c.EndDate,
		&c.Price,
		&c.Capacity,
		&c.BookedCount,
		&c.Status,
	)
	return c, err
}

func (r CampRepository) GetByID(id string) (models.Camp, error) {
	row := r.DB.QueryRow(`SELECT `+campColumns+` FROM camps WHERE id = ? LIMIT 1`, id)
	c, err := scanCamp(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Camp{}, domain.NotFoundError{Resource: "camp", Err: err}
	}
	if err != nil {
		return models.Camp{}, err
	}
	return c, nil
}

func (r CampRepository) ListActive() ([]models.Camp, error) {
	return r.list(`SELECT ` + campColumns + ` FROM camps WHERE status = 'active' ORDER BY start_date ASC`)
}

func (r CampRepository) ListAll() ([]models.Camp, error) {
	return r.list(`SELECT ` + campColumns + ` FROM camps ORDER BY start_date ASC`)
}

func (r CampRepository) list(query string) ([]models.Camp, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Camp{}
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CampRepository) Create(c models.Camp) (models.Camp, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Status = models.CampStatusActive
	c.BookedCount = 0
	_, err := r.DB.Exec(`
		INSERT INTO camps (id, title, description, start_date, end_date, price, capacity, booked_count, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, 'active', NOW(), NOW())
	`, c.ID, c.Title, c.Description, c.StartDate, c.EndDate, c.Price, c.Capacity)
	if err != nil {
		return models.Camp{}, err
	}
	return c, nil
}

func (r CampRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM camps WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "camp"}
	}
	return nil
}

// FinalizeBooking takes one camp seat for a confirmed payment. Same
// transactional shape as the slot path: row lock, duplicate-session check,
// capacity guard, counter bump with status recompute, booking append.
func (r CampRepository) FinalizeBooking(b models.Booking) (applied bool, err error) {
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
	err = tx.QueryRow(`SELECT booked_count, capacity, status FROM camps WHERE id = ? FOR UPDATE`, b.CampID).
		Scan(&booked, &capacity, &status)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.NotFoundError{Resource: "camp", Err: err}
		return false, err
	}
	if err != nil {
		return false, err
	}

	newBooked := booked + 1
	if newBooked > capacity {
		err = domain.ConflictError{Resource: "camp", Msg: fmt.Sprintf("capacity %d exceeded", capacity)}
		return false, err
	}
	newStatus := models.CampStatusActive
	if newBooked >= capacity {
		newStatus = models.CampStatusFull
	}

	_, err = tx.Exec(`
		UPDATE camps SET booked_count = ?, status = ?, updated_at = NOW() WHERE id = ?
	`, newBooked, string(newStatus), b.CampID)
	if err != nil {
		return false, err
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err = tx.Exec(`
		INSERT INTO bookings (id, camp_id, customer_name, customer_email, user_id, session_id, amount_cents, status, created_at, paid_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, b.ID, b.CampID, b.CustomerName, b.CustomerEmail, b.UserID, b.SessionID, b.AmountCents, string(models.BookingStatusConfirmed))
	if err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
