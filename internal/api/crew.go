package api

import (
	"net/http"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/crew"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/gin-gonic/gin"
)

type technicianCreateRequest struct {
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Specialization []string                `json:"specialization"`
	Status         models.TechnicianStatus `json:"status"`
	Rating         float64                 `json:"rating"`
	Certifications []string                `json:"certifications"`
	HourlyRate     float64                 `json:"hourlyRate"`
	JoinDate       *time.Time              `json:"joinDate"`
}

func handleTechnicianCreate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req technicianCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		opts := crew.CreateOpts{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Specialization: req.Specialization,
			Status:         req.Status,
			Rating:         req.Rating,
			Certifications: req.Certifications,
			HourlyRate:     req.HourlyRate,
		}
		if req.JoinDate != nil {
			opts.JoinDate = *req.JoinDate
		}
		tech, err := svcs.Crew.Create(c.Request.Context(), opts)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tech)
	}
}

func handleTechnicianList(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.TechnicianStatus(c.Query("status"))
		techs, err := svcs.Crew.List(c.Request.Context(), status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": techs})
	}
}

func handleTechnicianGet(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		tech, err := svcs.Crew.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tech)
	}
}

type technicianUpdateRequest struct {
	Name           *string                  `json:"name"`
	Email          *string                  `json:"email"`
	Phone          *string                  `json:"phone"`
	Specialization *[]string                `json:"specialization"`
	Status         *models.TechnicianStatus `json:"status"`
	Rating         *float64                 `json:"rating"`
	CompletedJobs  *int                     `json:"completedJobs"`
	ActiveJobs     *int                     `json:"activeJobs"`
	Certifications *[]string                `json:"certifications"`
	HourlyRate     *float64                 `json:"hourlyRate"`
}

func handleTechnicianUpdate(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req technicianUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		tech, err := svcs.Crew.Update(c.Request.Context(), c.Param("id"), crew.UpdateOpts{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Specialization: req.Specialization,
			Status:         req.Status,
			Rating:         req.Rating,
			CompletedJobs:  req.CompletedJobs,
			ActiveJobs:     req.ActiveJobs,
			Certifications: req.Certifications,
			HourlyRate:     req.HourlyRate,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tech)
	}
}

func handleTechnicianDelete(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Crew.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
