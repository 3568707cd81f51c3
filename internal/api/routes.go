package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all API routes on the gin router.
func registerRoutes(router *gin.Engine, svcs Services) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	m := v1.Group("/maintenance")
	m.POST("", handleMaintenanceCreate(svcs))
	m.GET("", handleMaintenanceList(svcs))
	m.GET("/summary", handleSummary(svcs))
	m.GET("/costs", handleCosts(svcs))
	m.GET("/trends", handleTrends(svcs))
	m.POST("/reconcile", handleReconcile(svcs))
	m.GET("/:id", handleMaintenanceGet(svcs))
	m.PUT("/:id", handleMaintenanceUpdate(svcs))
	m.DELETE("/:id", handleMaintenanceDelete(svcs))

	v1.GET("/vehicles/:id/history", handleVehicleHistory(svcs))

	s := v1.Group("/schedules")
	s.POST("", handleScheduleCreate(svcs))
	s.GET("", handleScheduleList(svcs))
	s.GET("/:id", handleScheduleGet(svcs))
	s.PUT("/:id", handleScheduleUpdate(svcs))
	s.DELETE("/:id", handleScheduleDelete(svcs))
	s.POST("/:id/execute", handleScheduleExecute(svcs))

	t := v1.Group("/technicians")
	t.POST("", handleTechnicianCreate(svcs))
	t.GET("", handleTechnicianList(svcs))
	t.GET("/:id", handleTechnicianGet(svcs))
	t.PUT("/:id", handleTechnicianUpdate(svcs))
	t.DELETE("/:id", handleTechnicianDelete(svcs))

	p := v1.Group("/parts")
	p.POST("", handlePartCreate(svcs))
	p.GET("", handlePartList(svcs))
	p.GET("/low-stock", handlePartLowStock(svcs))
	p.GET("/:id", handlePartGet(svcs))
	p.PUT("/:id", handlePartUpdate(svcs))
	p.DELETE("/:id", handlePartDelete(svcs))
}
