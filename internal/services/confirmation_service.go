package services

import (
	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"
	"github.com/RGA-goaltending/rga/internal/gateway"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/utils"
)

// ConfirmationService consumes signed payment-provider events and finalizes
// or releases inventory. Signature verification is the sole authentication
// boundary for every inventory mutation in the system; nothing below it runs
// on an unverified payload.
//
// The provider delivers at least once, so every branch must tolerate
// redelivery: completed events are deduplicated on the payment-session id,
// expiry reverts are conditional on the slot still being pending.
type ConfirmationService struct {
	SlotRepo    repositories.SlotRepository
	CampRepo    repositories.CampRepository
	BookingRepo repositories.BookingRepository
	Gateway     gateway.PaymentGateway
	RequestID   string
}

// HandleEvent authenticates and dispatches one provider callback.
// A nil return means "acknowledge"; a SignatureError or ValidationError means
// reject without retry; anything else tells the caller to answer with a
// retryable status so the provider redelivers.
func (s ConfirmationService) HandleEvent(payload []byte, sigHeader string) error {
	ev, err := s.Gateway.VerifyEvent(payload, sigHeader)
	if err != nil {
		utils.LogEvent(s.RequestID, "webhook", "verify", "signature rejected: "+err.Error())
		return domain.SignatureError{Err: err}
	}

	switch ev.Kind {
	case gateway.EventCompleted:
		return s.handleCompleted(ev)
	case gateway.EventExpired, gateway.EventFailed:
		return s.handleNotCompleted(ev)
	default:
		utils.LogEvent(s.RequestID, "webhook", "dispatch", "ignoring event type "+ev.RawType)
		return nil
	}
}

func (s ConfirmationService) handleCompleted(ev gateway.Event) error {
	slotID := ev.Metadata["slotId"]
	campID := ev.Metadata["campId"]
	if slotID == "" && campID == "" {
		// A session this service never created; retrying will not grow metadata.
		utils.LogEvent(s.RequestID, "webhook", "completed", "no inventory reference in metadata, session="+ev.SessionID)
		return domain.ValidationError{Field: "metadata", Msg: "no slotId or campId in event metadata"}
	}

	if exists, err := s.BookingRepo.ExistsBySessionID(ev.SessionID); err != nil {
		return domain.InternalError{Msg: "idempotency lookup failed", Err: err}
	} else if exists {
		utils.LogEvent(s.RequestID, "webhook", "completed", "duplicate delivery ignored, session="+ev.SessionID)
		return nil
	}

	booking := models.Booking{
		SlotID:        slotID,
		CampID:        campID,
		CustomerName:  ev.CustomerName,
		CustomerEmail: ev.CustomerEmail,
		UserID:        ev.Metadata["userId"],
		SessionID:     ev.SessionID,
		AmountCents:   ev.AmountCents,
	}

	var (
		applied bool
		err     error
	)
	if slotID != "" {
		applied, err = s.SlotRepo.FinalizeBooking(booking)
	} else {
		applied, err = s.CampRepo.FinalizeBooking(booking)
	}

	switch {
	case domain.IsNotFound(err):
		// Metadata points at inventory that no longer exists. Referential
		// integrity between provider and store is broken; surface retryable
		// so delivery is not silently dropped while the operator looks.
		utils.LogCritical(s.RequestID, "webhook", "completed",
			"paid session "+ev.SessionID+" references missing inventory slot="+slotID+" camp="+campID)
		return domain.InternalError{Msg: "inventory record missing", Err: err}
	case domain.IsConflict(err):
		utils.LogCritical(s.RequestID, "webhook", "completed",
			"paid session "+ev.SessionID+" rejected by capacity guard slot="+slotID+" camp="+campID)
		return domain.InternalError{Msg: "capacity exceeded on confirmation", Err: err}
	case err != nil:
		return domain.InternalError{Msg: "booking transaction failed", Err: err}
	case !applied:
		utils.LogEvent(s.RequestID, "webhook", "completed", "duplicate delivery ignored, session="+ev.SessionID)
		return nil
	}

	utils.LogEvent(s.RequestID, "webhook", "completed",
		"booking confirmed slot="+slotID+" camp="+campID+" session="+ev.SessionID)
	return nil
}

// handleNotCompleted releases a provisional hold after the checkout session
// died. Camps never hold inventory before payment, so only slot references
// matter here; a slot already finalized by a completion is left alone.
func (s ConfirmationService) handleNotCompleted(ev gateway.Event) error {
	slotID := ev.Metadata["slotId"]
	if slotID == "" {
		utils.LogEvent(s.RequestID, "webhook", ev.Kind.String(), "no held inventory, session="+ev.SessionID)
		return nil
	}

	reverted, err := s.SlotRepo.RevertPending(slotID)
	if err != nil {
		utils.LogCritical(s.RequestID, "webhook", ev.Kind.String(),
			"failed to release slot "+slotID+": "+err.Error())
		return domain.InternalError{Msg: "hold release failed", Err: err}
	}
	if reverted {
		utils.LogEvent(s.RequestID, "webhook", ev.Kind.String(), "slot "+slotID+" released")
	} else {
		utils.LogEvent(s.RequestID, "webhook", ev.Kind.String(), "slot "+slotID+" not pending, nothing to release")
	}
	return nil
}
