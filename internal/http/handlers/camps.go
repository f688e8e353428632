package handlers

import (
	"net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/domain/models"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/utils"

	"github.com/gin-gonic/gin"
)

func campRepo() repositories.CampRepository {
	return repositories.CampRepository{DB: intconfig.DB}
}

// GET /api/camps lists active camps for the public page.
func GetCamps(c *gin.Context) {
	camps, err := campRepo().ListActive()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load camps", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"camps": camps})
}

// GET /api/admin/camps
func GetAllCamps(c *gin.Context) {
	camps, err := campRepo().ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load camps", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"camps": camps})
}

type createCampRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Price       int64  `json:"price"`
	Capacity    int    `json:"capacity"`
}

// POST /api/admin/camps
func CreateCamp(c *gin.Context) {
	var req createCampRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Title == "" || req.Price <= 0 {
		RespondError(c, http.StatusBadRequest, "title and a positive price are required", nil)
		return
	}
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		RespondError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD", err)
		return
	}
	if req.EndDate != "" {
		if _, err := utils.ParseDate(req.EndDate); err != nil {
			RespondError(c, http.StatusBadRequest, "endDate must be YYYY-MM-DD", err)
			return
		}
	}
	if req.Capacity < 1 {
		req.Capacity = 1
	}

	camp, err := campRepo().Create(models.Camp{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Price:       req.Price,
		Capacity:    req.Capacity,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create camp", err)
		return
	}
	c.JSON(http.StatusCreated, camp)
}

// DELETE /api/admin/camps/:id
func DeleteCamp(c *gin.Context) {
	if err := campRepo().Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
