package repositories

import (
	"database/sql"
	"errors"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"
)

// BookingRepository reads the durable booking records. Writes happen only
// inside the slot/camp finalize transactions; rows are append-only.
type BookingRepository struct {
	DB *sql.DB
}

// ExistsBySessionID is the idempotency guard for redelivered payment events.
func (r BookingRepository) ExistsBySessionID(sessionID string) (bool, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE session_id = ?`, sessionID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

const bookingDetailQuery = `
	SELECT b.id, COALESCE(b.slot_id, ''), COALESCE(b.camp_id, ''),
		b.customer_name, b.customer_email, b.user_id,
		b.session_id, b.amount_cents, b.status, b.created_at, b.paid_at,
		COALESCE(s.date, ''), COALESCE(s.start_time, ''), COALESCE(s.package_name, ''),
		COALESCE(c.title, '')
	FROM bookings b
	LEFT JOIN slots s ON s.id = b.slot_id
	LEFT JOIN camps c ON c.id = b.camp_id
`

func scanBookingDetail(row interface{ Scan(...any) error }) (models.BookingDetail, error) {
	var (
		d      models.BookingDetail
		paidAt sql.NullTime
	)
	err := row.Scan(
		&d.ID,
		&d.SlotID,
		&d.CampID,
		&d.CustomerName,
		&d.CustomerEmail,
		&d.UserID,
		&d.SessionID,
		&d.AmountCents,
		&d.Status,
		&d.CreatedAt,
		&paidAt,
		&d.SlotDate,
		&d.SlotStartTime,
		&d.PackageName,
		&d.CampTitle,
	)
	if err != nil {
		return models.BookingDetail{}, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		d.PaidAt = &t
	}
	return d, nil
}

func (r BookingRepository) GetDetailByID(id string) (models.BookingDetail, error) {
	row := r.DB.QueryRow(bookingDetailQuery+` WHERE b.id = ? LIMIT 1`, id)
	d, err := scanBookingDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookingDetail{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.BookingDetail{}, err
	}
	return d, nil
}

// ListByUserID returns a customer's bookings, newest session first.
func (r BookingRepository) ListByUserID(userID string) ([]models.BookingDetail, error) {
	rows, err := r.DB.Query(bookingDetailQuery+` WHERE b.user_id = ? ORDER BY s.date DESC, b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListBySlotID lists the roster of a slot (admin view).
func (r BookingRepository) ListBySlotID(slotID string) ([]models.BookingDetail, error) {
	rows, err := r.DB.Query(bookingDetailQuery+` WHERE b.slot_id = ? ORDER BY b.created_at ASC`, slotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
