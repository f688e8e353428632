package handlers

import (
	"net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/domain/models"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/utils"

	"github.com/gin-gonic/gin"
)

func slotRepo() repositories.SlotRepository {
	return repositories.SlotRepository{DB: intconfig.DB}
}

// GET /api/slots lists open inventory for the booking page.
func GetSlots(c *gin.Context) {
	slots, err := slotRepo().ListAvailable()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load slots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GET /api/admin/slots lists every slot, any status (admin dashboard).
func GetAllSlots(c *gin.Context) {
	slots, err := slotRepo().ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load slots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GET /api/slots/:id
func GetSlotByID(c *gin.Context) {
	slot, err := slotRepo().GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

type createSlotRequest struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	PackageName string `json:"packageName"`
	Price       int64  `json:"price"`
	Capacity    int    `json:"capacity"`
}

// POST /api/admin/slots
func CreateSlot(c *gin.Context) {
	var req createSlotRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.PackageName == "" || req.Price <= 0 {
		RespondError(c, http.StatusBadRequest, "packageName and a positive price are required", nil)
		return
	}
	if _, err := utils.CombineDateTime(req.Date, req.StartTime); err != nil {
		RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD and startTime HH:MM", err)
		return
	}
	if req.Capacity < 1 {
		req.Capacity = 1
	}

	slot, err := slotRepo().Create(models.Slot{
		Date:        req.Date,
		StartTime:   req.StartTime,
		PackageName: req.PackageName,
		Price:       req.Price,
		Capacity:    req.Capacity,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create slot", err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// DELETE /api/admin/slots/:id
func DeleteSlot(c *gin.Context) {
	if err := slotRepo().Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/admin/slots/:id/bookings lists the roster for one slot.
func GetSlotBookings(c *gin.Context) {
	bookings, err := repositories.BookingRepository{DB: intconfig.DB}.ListBySlotID(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
