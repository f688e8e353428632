package handlers

import (
	"net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/domain/models"
	"github.com/RGA-goaltending/rga/internal/repositories"

	"github.com/gin-gonic/gin"
)

func packageRepo() repositories.PackageRepository {
	return repositories.PackageRepository{DB: intconfig.DB}
}

// GET /api/packages
func GetPackages(c *gin.Context) {
	tiers, err := packageRepo().List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load packages", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": tiers})
}

type createPackageRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Price5      int64  `json:"price5"`
	Price10     int64  `json:"price10"`
	PeopleCount int    `json:"peopleCount"`
	MaxQuantity int    `json:"maxQuantity"`
	SortOrder   int    `json:"order"`
}

// POST /api/admin/packages. Bundle prices of 0 disable multi-pack options.
func CreatePackage(c *gin.Context) {
	var req createPackageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Name == "" || req.Price <= 0 {
		RespondError(c, http.StatusBadRequest, "name and a positive price are required", nil)
		return
	}
	if req.PeopleCount < 1 {
		req.PeopleCount = 1
	}

	tier, err := packageRepo().Create(models.PackageTier{
		Name:        req.Name,
		Price:       req.Price,
		Price5:      req.Price5,
		Price10:     req.Price10,
		PeopleCount: req.PeopleCount,
		MaxQuantity: req.MaxQuantity,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create package", err)
		return
	}
	c.JSON(http.StatusCreated, tier)
}

// DELETE /api/admin/packages/:id
func DeletePackage(c *gin.Context) {
	if err := packageRepo().Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
