package api

import (
	"net/http"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/schedule"
	"github.com/gin-gonic/gin"
)

type scheduleCreateRequest struct {
	Name              string           `json:"name"`
	VehicleID         string           `json:"vehicleId"`
	MaintenanceType   string           `json:"maintenanceType"`
	Description       string           `json:"description"`
	Frequency         models.Frequency `json:"frequency"`
	FrequencyValue    int              `json:"frequencyValue"`
	EstimatedCost     float64          `json:"estimatedCost"`
	EstimatedDuration float64          `json:"estimatedDuration"`
	AssignedTo        string           `json:"assignedTo"`
}

func handleScheduleCreate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scheduleCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		sched, err := svcs.Schedules.Create(c.Request.Context(), schedule.CreateOpts{
			Name:              req.Name,
			VehicleID:         req.VehicleID,
			MaintenanceType:   req.MaintenanceType,
			Description:       req.Description,
			Frequency:         req.Frequency,
			FrequencyValue:    req.FrequencyValue,
			EstimatedCost:     req.EstimatedCost,
			EstimatedDuration: req.EstimatedDuration,
			AssignedTo:        req.AssignedTo,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sched)
	}
}

func handleScheduleList(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active") == "true"
		scheds, err := svcs.Schedules.List(c.Request.Context(), activeOnly)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": scheds})
	}
}

func handleScheduleGet(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sched, err := svcs.Schedules.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sched)
	}
}

type scheduleUpdateRequest struct {
	Name              *string           `json:"name"`
	Description       *string           `json:"description"`
	Frequency         *models.Frequency `json:"frequency"`
	FrequencyValue    *int              `json:"frequencyValue"`
	EstimatedCost     *float64          `json:"estimatedCost"`
	EstimatedDuration *float64          `json:"estimatedDuration"`
	AssignedTo        *string           `json:"assignedTo"`
	IsActive          *bool             `json:"isActive"`
}

func handleScheduleUpdate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scheduleUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		sched, err := svcs.Schedules.Update(c.Request.Context(), c.Param("id"), schedule.UpdateOpts{
			Name:              req.Name,
			Description:       req.Description,
			Frequency:         req.Frequency,
			FrequencyValue:    req.FrequencyValue,
			EstimatedCost:     req.EstimatedCost,
			EstimatedDuration: req.EstimatedDuration,
			AssignedTo:        req.AssignedTo,
			IsActive:          req.IsActive,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sched)
	}
}

func handleScheduleDelete(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Schedules.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleScheduleExecute(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sched, err := svcs.Schedules.MarkExecuted(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sched)
	}
}
