package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/maintenance"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/gin-gonic/gin"
)

type maintenanceCreateRequest struct {
	VehicleID          string             `json:"vehicleId"`
	Type               string             `json:"type"`
	Description        string             `json:"description"`
	Priority           models.Priority    `json:"priority"`
	DueDate            time.Time          `json:"dueDate"`
	ScheduledDate      *time.Time         `json:"scheduledDate"`
	CurrentMileage     int                `json:"currentMileage"`
	DueMileage         int                `json:"dueMileage"`
	EstimatedCost      float64            `json:"estimatedCost"`
	AssignedTo         string             `json:"assignedTo"`
	AssignedTechnician string             `json:"assignedTechnician"`
	Notes              string             `json:"notes"`
	PartsNeeded        models.PartLines   `json:"partsNeeded"`
	Attachments        models.Attachments `json:"attachments"`
}

func handleMaintenanceCreate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req maintenanceCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		item, err := svcs.Maintenance.Create(c.Request.Context(), maintenance.CreateOpts{
			VehicleID:          req.VehicleID,
			Type:               req.Type,
			Description:        req.Description,
			Priority:           req.Priority,
			DueDate:            req.DueDate,
			ScheduledDate:      req.ScheduledDate,
			CurrentMileage:     req.CurrentMileage,
			DueMileage:         req.DueMileage,
			EstimatedCost:      req.EstimatedCost,
			AssignedTo:         req.AssignedTo,
			AssignedTechnician: req.AssignedTechnician,
			Notes:              req.Notes,
			PartsNeeded:        req.PartsNeeded,
			Attachments:        req.Attachments,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// parseDay reads a YYYY-MM-DD query value.
func parseDay(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	return &t, true
}

func handleMaintenanceList(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := store.MaintenanceFilter{
			VehicleID: c.Query("vehicleId"),
			Assignee:  c.Query("assignee"),
			Type:      c.Query("type"),
			Search:    c.Query("search"),
		}
		if raw := c.Query("status"); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				f.Statuses = append(f.Statuses, models.Status(s))
			}
		}
		if raw := c.Query("priority"); raw != "" {
			for _, p := range strings.Split(raw, ",") {
				f.Priorities = append(f.Priorities, models.Priority(p))
			}
		}
		var ok bool
		if f.DueFrom, ok = parseDay(c, "dueFrom"); !ok {
			return
		}
		if f.DueTo, ok = parseDay(c, "dueTo"); !ok {
			return
		}

		page := store.Page{
			Number: queryInt(c, "page", 1),
			Size:   queryInt(c, "pageSize", store.DefaultPageSize),
		}
		result, err := svcs.Maintenance.List(c.Request.Context(), f, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": result.Items,
			"total": result.Total,
			"page":  result.Page,
			"pages": result.Pages,
		})
	}
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func handleMaintenanceGet(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svcs.Maintenance.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

type maintenanceUpdateRequest struct {
	Type               *string             `json:"type"`
	Description        *string             `json:"description"`
	Status             *models.Status      `json:"status"`
	Priority           *models.Priority    `json:"priority"`
	DueDate            *time.Time          `json:"dueDate"`
	ScheduledDate      *time.Time          `json:"scheduledDate"`
	CurrentMileage     *int                `json:"currentMileage"`
	DueMileage         *int                `json:"dueMileage"`
	EstimatedCost      *float64            `json:"estimatedCost"`
	ActualCost         *float64            `json:"actualCost"`
	AssignedTo         *string             `json:"assignedTo"`
	AssignedTechnician *string             `json:"assignedTechnician"`
	Notes              *string             `json:"notes"`
	PartsNeeded        *models.PartLines   `json:"partsNeeded"`
	Attachments        *models.Attachments `json:"attachments"`
}

// explicitNull reports whether the request body carried key with a literal
// JSON null. A null clears the stored value; an absent key leaves it alone.
func explicitNull(body map[string]json.RawMessage, key string) bool {
	v, ok := body[key]
	return ok && string(bytes.TrimSpace(v)) == "null"
}

func handleMaintenanceUpdate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			badRequest(c, err)
			return
		}
		var req maintenanceUpdateRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			badRequest(c, err)
			return
		}
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			badRequest(c, err)
			return
		}
		item, err := svcs.Maintenance.Update(c.Request.Context(), c.Param("id"), maintenance.UpdateOpts{
			Type:               req.Type,
			Description:        req.Description,
			Status:             req.Status,
			Priority:           req.Priority,
			DueDate:            req.DueDate,
			ScheduledDate:      req.ScheduledDate,
			CurrentMileage:     req.CurrentMileage,
			DueMileage:         req.DueMileage,
			EstimatedCost:      req.EstimatedCost,
			ActualCost:         req.ActualCost,
			AssignedTo:         req.AssignedTo,
			AssignedTechnician: req.AssignedTechnician,
			Notes:              req.Notes,
			PartsNeeded:        req.PartsNeeded,
			Attachments:        req.Attachments,
			ClearScheduledDate: explicitNull(keys, "scheduledDate"),
			ClearActualCost:    explicitNull(keys, "actualCost"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func handleMaintenanceDelete(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Maintenance.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleVehicleHistory(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svcs.Maintenance.History(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicleId": c.Param("id"), "items": items})
	}
}

func handleReconcile(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		changed, err := svcs.Reconciler.Run(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"changed": changed})
	}
}
