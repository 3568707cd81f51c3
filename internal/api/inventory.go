package api

import (
	"net/http"

	"github.com/RavDas/fleet-management-backend/internal/inventory"
	"github.com/gin-gonic/gin"
)

type partCreateRequest struct {
	Name        string   `json:"name"`
	PartNumber  string   `json:"partNumber"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity"`
	MinQuantity int      `json:"minQuantity"`
	UnitCost    float64  `json:"unitCost"`
	Supplier    string   `json:"supplier"`
	Location    string   `json:"location"`
	UsedIn      []string `json:"usedIn"`
}

func handlePartCreate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req partCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		part, err := svcs.Inventory.Create(c.Request.Context(), inventory.CreateOpts{
			Name:        req.Name,
			PartNumber:  req.PartNumber,
			Category:    req.Category,
			Quantity:    req.Quantity,
			MinQuantity: req.MinQuantity,
			UnitCost:    req.UnitCost,
			Supplier:    req.Supplier,
			Location:    req.Location,
			UsedIn:      req.UsedIn,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, part)
	}
}

func handlePartList(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts, err := svcs.Inventory.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": parts})
	}
}

func handlePartLowStock(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts, err := svcs.Inventory.LowStock(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": parts})
	}
}

func handlePartGet(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		part, err := svcs.Inventory.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, part)
	}
}

type partUpdateRequest struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Quantity    *int      `json:"quantity"`
	MinQuantity *int      `json:"minQuantity"`
	UnitCost    *float64  `json:"unitCost"`
	Supplier    *string   `json:"supplier"`
	Location    *string   `json:"location"`
	UsedIn      *[]string `json:"usedIn"`
}

func handlePartUpdate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req partUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		part, err := svcs.Inventory.Update(c.Request.Context(), c.Param("id"), inventory.UpdateOpts{
			Name:        req.Name,
			Category:    req.Category,
			Quantity:    req.Quantity,
			MinQuantity: req.MinQuantity,
			UnitCost:    req.UnitCost,
			Supplier:    req.Supplier,
			Location:    req.Location,
			UsedIn:      req.UsedIn,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, part)
	}
}

func handlePartDelete(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Inventory.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
