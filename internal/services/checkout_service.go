package services

import (
	"fmt"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"
	"github.com/RGA-goaltending/rga/internal/gateway"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/utils"
)

// CheckoutService takes a slot or camp seat from "available" to a redirectable
// payment session, holding slot inventory while the customer pays. Everything
// after the redirect is driven by ConfirmationService.
type CheckoutService struct {
	SlotRepo  repositories.SlotRepository
	CampRepo  repositories.CampRepository
	Gateway   gateway.PaymentGateway
	RequestID string
}

type CheckoutInput struct {
	SlotID        string
	CustomerName  string
	CustomerEmail string
	UserID        string
	Origin        string
}

type CampCheckoutInput struct {
	CampID        string
	CustomerName  string
	CustomerEmail string
	UserID        string
	Origin        string
}

type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// InitiateCheckout validates the slot, places the provisional hold and asks
// the payment gateway for a hosted checkout session. On any failure after the
// hold is taken it reverts the slot, but only while it is still pending.
func (s CheckoutService) InitiateCheckout(in CheckoutInput) (CheckoutResult, error) {
	in.SlotID = utils.TrimOrEmpty(in.SlotID)
	in.CustomerName = utils.TrimOrEmpty(in.CustomerName)
	in.CustomerEmail = utils.TrimOrEmpty(in.CustomerEmail)
	in.UserID = utils.TrimOrEmpty(in.UserID)

	if in.SlotID == "" || in.CustomerName == "" || in.CustomerEmail == "" || in.UserID == "" {
		return CheckoutResult{}, domain.ValidationError{Msg: "missing required session information"}
	}
	origin := utils.TrimOrEmpty(in.Origin)
	if origin == "" {
		return CheckoutResult{}, domain.ValidationError{Field: "origin", Msg: "missing request origin"}
	}

	slot, err := s.SlotRepo.GetByID(in.SlotID)
	if err != nil {
		if domain.IsNotFound(err) {
			return CheckoutResult{}, domain.ConflictError{Resource: "slot", Msg: "this slot is no longer available"}
		}
		return CheckoutResult{}, err
	}
	if slot.Status != models.SlotStatusAvailable {
		return CheckoutResult{}, domain.ConflictError{Resource: "slot", Msg: "this slot is no longer available"}
	}

	if slot.Price <= 0 || slot.PackageName == "" || slot.Date == "" || slot.StartTime == "" {
		utils.LogEvent(s.RequestID, "checkout", "validate", "invalid slot record id="+slot.ID)
		return CheckoutResult{}, domain.CorruptDataError{Resource: "slot", Msg: "record fails integrity checks"}
	}
	trainingDate, err := utils.ParseDate(slot.Date)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "validate", "invalid slot date id="+slot.ID+" date="+slot.Date)
		return CheckoutResult{}, domain.CorruptDataError{Resource: "slot", Msg: "unparseable date"}
	}

	locked, err := s.SlotRepo.MarkPending(in.SlotID, in.CustomerName, in.CustomerEmail, in.UserID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !locked {
		// Someone else's hold or sale landed between the read and the write.
		return CheckoutResult{}, domain.ConflictError{Resource: "slot", Msg: "this slot is no longer available"}
	}

	session, err := s.Gateway.CreateSession(gateway.SessionInput{
		ProductName: slot.PackageName,
		Description: fmt.Sprintf("Training session on %s at %s",
			utils.FormatDateHuman(trainingDate), utils.FormatTime12h(slot.StartTime)),
		AmountCents:   utils.DollarsToCents(slot.Price),
		CustomerEmail: in.CustomerEmail,
		SuccessURL:    origin + "/book?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/book?canceled=true",
		Metadata: map[string]string{
			"slotId": in.SlotID,
			"userId": in.UserID,
		},
	})
	if err != nil {
		s.revertHold(in.SlotID)
		return CheckoutResult{}, domain.GatewayError{Op: "create session", Err: err}
	}

	utils.LogEvent(s.RequestID, "checkout", "initiate", "slot_id="+in.SlotID+" session_id="+session.ID)
	return CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

// InitiateCampCheckout sells camp seats without a provisional hold: the seat
// is taken only when the completed payment lands, so concurrent shoppers all
// reach checkout and first confirmed payment wins.
func (s CheckoutService) InitiateCampCheckout(in CampCheckoutInput) (CheckoutResult, error) {
	in.CampID = utils.TrimOrEmpty(in.CampID)
	in.CustomerName = utils.TrimOrEmpty(in.CustomerName)
	in.CustomerEmail = utils.TrimOrEmpty(in.CustomerEmail)
	in.UserID = utils.TrimOrEmpty(in.UserID)

	if in.CampID == "" || in.CustomerName == "" || in.CustomerEmail == "" || in.UserID == "" {
		return CheckoutResult{}, domain.ValidationError{Msg: "missing required session information"}
	}
	origin := utils.TrimOrEmpty(in.Origin)
	if origin == "" {
		return CheckoutResult{}, domain.ValidationError{Field: "origin", Msg: "missing request origin"}
	}

	camp, err := s.CampRepo.GetByID(in.CampID)
	if err != nil {
		if domain.IsNotFound(err) {
			return CheckoutResult{}, domain.ConflictError{Resource: "camp", Msg: "this camp is no longer open for registration"}
		}
		return CheckoutResult{}, err
	}
	if camp.Status != models.CampStatusActive || camp.BookedCount >= camp.Capacity {
		return CheckoutResult{}, domain.ConflictError{Resource: "camp", Msg: "this camp is no longer open for registration"}
	}

	if camp.Price <= 0 || camp.Title == "" || camp.StartDate == "" {
		utils.LogEvent(s.RequestID, "checkout", "validate", "invalid camp record id="+camp.ID)
		return CheckoutResult{}, domain.CorruptDataError{Resource: "camp", Msg: "record fails integrity checks"}
	}
	startDate, err := utils.ParseDate(camp.StartDate)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "validate", "invalid camp date id="+camp.ID+" date="+camp.StartDate)
		return CheckoutResult{}, domain.CorruptDataError{Resource: "camp", Msg: "unparseable start date"}
	}

	description := "Camp starting " + utils.FormatDateHuman(startDate)
	if d := utils.NormalizeSpace(camp.Description); d != "" {
		description = d
	}

	session, err := s.Gateway.CreateSession(gateway.SessionInput{
		ProductName:   camp.Title,
		Description:   description,
		AmountCents:   utils.DollarsToCents(camp.Price),
		CustomerEmail: in.CustomerEmail,
		SuccessURL:    origin + "/camps?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/camps?canceled=true",
		Metadata: map[string]string{
			"campId": in.CampID,
			"userId": in.UserID,
		},
	})
	if err != nil {
		return CheckoutResult{}, domain.GatewayError{Op: "create session", Err: err}
	}

	utils.LogEvent(s.RequestID, "checkout", "initiate_camp", "camp_id="+in.CampID+" session_id="+session.ID)
	return CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

// revertHold is best effort; a failure here leaves the slot stuck in pending
// until the gateway's session-expiry event arrives, so it is logged for the
// operator. The caller's original error stays primary either way.
func (s CheckoutService) revertHold(slotID string) {
	reverted, err := s.SlotRepo.RevertPending(slotID)
	if err != nil {
		utils.LogCritical(s.RequestID, "checkout", "revert",
			"failed to revert slot "+slotID+" to available: "+err.Error())
		return
	}
	if reverted {
		utils.LogEvent(s.RequestID, "checkout", "revert", "slot "+slotID+" reverted to available")
	}
}
