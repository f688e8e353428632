package services

import (
	"errors"
	"testing"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/gateway"
	"github.com/RGA-goaltending/rga/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHandleEventRejectsBadSignature(t *testing.T) {
	gw := &fakeGateway{
		verifyFn: func([]byte, string) (gateway.Event, error) {
			return gateway.Event{}, errors.New("signature mismatch")
		},
	}
	svc := ConfirmationService{Gateway: gw}

	err := svc.HandleEvent([]byte(`{}`), "t=1,v1=bad")
	if !domain.IsSignature(err) {
		t.Fatalf("expected signature error, got %v", err)
	}
}

func TestHandleEventAcksUnknownType(t *testing.T) {
	gw := &fakeGateway{
		verifyFn: func([]byte, string) (gateway.Event, error) {
			return gateway.Event{Kind: gateway.EventIgnored, RawType: "invoice.paid"}, nil
		},
	}
	svc := ConfirmationService{Gateway: gw}

	if err := svc.HandleEvent(nil, "sig"); err != nil {
		t.Fatalf("unknown event types must be acknowledged, got %v", err)
	}
}

func TestHandleCompletedWithoutInventoryReference(t *testing.T) {
	gw := &fakeGateway{
		verifyFn: func([]byte, string) (gateway.Event, error) {
			return gateway.Event{
				Kind:      gateway.EventCompleted,
				SessionID: "cs_orphan",
				Metadata:  map[string]string{},
			}, nil
		},
	}
	svc := ConfirmationService{Gateway: gw}

	err := svc.HandleEvent(nil, "sig")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing metadata, got %v", err)
	}
}

func TestHandleCompletedDuplicateDelivery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("cs_dup").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := ConfirmationService{
		BookingRepo: repositories.BookingRepository{DB: db},
		Gateway:     completedGateway("cs_dup", map[string]string{"slotId": "slot-1"}),
	}
	if err := svc.HandleEvent(nil, "sig"); err != nil {
		t.Fatalf("duplicate delivery must be acknowledged, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected inventory writes on duplicate: %v", err)
	}
}

func TestHandleCompletedConfirmsSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("cs_ok").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs("cs_ok").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT booked_count, capacity, status FROM slots").
		WithArgs("slot-1").
		WillReturnRows(sqlmock.NewRows([]string{"booked_count", "capacity", "status"}).AddRow(0, 1, "pending"))
	mock.ExpectExec("UPDATE slots").
		WithArgs(1, "sold_out", "slot-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := ConfirmationService{
		SlotRepo:    repositories.SlotRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		Gateway:     completedGateway("cs_ok", map[string]string{"slotId": "slot-1", "userId": "u1"}),
	}
	if err := svc.HandleEvent(nil, "sig"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHandleCompletedMissingInventoryIsRetryable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT booked_count, capacity, status FROM slots").
		WillReturnRows(sqlmock.NewRows([]string{"booked_count", "capacity", "status"}))
	mock.ExpectRollback()

	svc := ConfirmationService{
		SlotRepo:    repositories.SlotRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		Gateway:     completedGateway("cs_ghost", map[string]string{"slotId": "gone"}),
	}
	err = svc.HandleEvent(nil, "sig")
	if !domain.IsInternal(err) {
		t.Fatalf("missing inventory must surface retryable, got %v", err)
	}
}

func TestHandleExpiredReleasesHold(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE slots").
		WithArgs("slot-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ConfirmationService{
		SlotRepo: repositories.SlotRepository{DB: db},
		Gateway: &fakeGateway{
			verifyFn: func([]byte, string) (gateway.Event, error) {
				return gateway.Event{
					Kind:      gateway.EventExpired,
					SessionID: "cs_expired",
					Metadata:  map[string]string{"slotId": "slot-1"},
				}, nil
			},
		},
	}
	if err := svc.HandleEvent(nil, "sig"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("hold was not released: %v", err)
	}
}

func TestHandleExpiredAlreadyConfirmedIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// completion won the race; conditional revert matches zero rows
	mock.ExpectExec("UPDATE slots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := ConfirmationService{
		SlotRepo: repositories.SlotRepository{DB: db},
		Gateway: &fakeGateway{
			verifyFn: func([]byte, string) (gateway.Event, error) {
				return gateway.Event{
					Kind:      gateway.EventExpired,
					SessionID: "cs_late",
					Metadata:  map[string]string{"slotId": "slot-1"},
				}, nil
			},
		},
	}
	if err := svc.HandleEvent(nil, "sig"); err != nil {
		t.Fatalf("late expiry must be acknowledged, got %v", err)
	}
}

func TestHandleFailedWithoutHoldAcks(t *testing.T) {
	svc := ConfirmationService{
		Gateway: &fakeGateway{
			verifyFn: func([]byte, string) (gateway.Event, error) {
				return gateway.Event{
					Kind:      gateway.EventFailed,
					SessionID: "cs_camp",
					Metadata:  map[string]string{"campId": "camp-1"},
				}, nil
			},
		},
	}
	if err := svc.HandleEvent(nil, "sig"); err != nil {
		t.Fatalf("camp failure holds nothing, must be acknowledged, got %v", err)
	}
}

func completedGateway(sessionID string, metadata map[string]string) *fakeGateway {
	return &fakeGateway{
		verifyFn: func([]byte, string) (gateway.Event, error) {
			return gateway.Event{
				Kind:          gateway.EventCompleted,
				RawType:       "checkout.session.completed",
				SessionID:     sessionID,
				Metadata:      metadata,
				CustomerName:  "Jane",
				CustomerEmail: "jane@example.com",
				AmountCents:   15000,
			}, nil
		},
	}
}
