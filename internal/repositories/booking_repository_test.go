package repositories

import (
	"testing"
	"time"

	"github.com/RGA-goaltending/rga/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestExistsBySessionID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("cs_123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := BookingRepository{DB: db}
	exists, err := repo.ExistsBySessionID("cs_123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !exists {
		t.Fatalf("expected session to exist")
	}
}

func TestGetDetailByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT b.id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingDetailColumns()))

	repo := BookingRepository{DB: db}
	_, err = repo.GetDetailByID("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListByUserIDScansJoinedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(bookingDetailColumns()).
		AddRow("b1", "slot-1", "", "Jane", "jane@example.com", "u1",
			"cs_123", int64(12000), "confirmed", created, created,
			"2026-03-15", "09:00", "Elite Session", "")

	mock.ExpectQuery("SELECT b.id").
		WithArgs("u1").
		WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	out, err := repo.ListByUserID("u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(out))
	}
	d := out[0]
	if d.PackageName != "Elite Session" || d.SlotDate != "2026-03-15" {
		t.Fatalf("joined slot fields not scanned: %+v", d)
	}
	if d.PaidAt == nil {
		t.Fatalf("paid_at should be set")
	}
}

func bookingDetailColumns() []string {
	return []string{
		"id", "slot_id", "camp_id",
		"customer_name", "customer_email", "user_id",
		"session_id", "amount_cents", "status", "created_at", "paid_at",
		"date", "start_time", "package_name", "title",
	}
}
