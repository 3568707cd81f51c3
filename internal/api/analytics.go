package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func handleSummary(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svcs.Analytics.Summary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func handleCosts(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		costs, err := svcs.Analytics.Costs(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, costs)
	}
}

func handleTrends(svcs Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.DefaultQuery("period", "month")
		buckets, err := svcs.Analytics.Trends(c.Request.Context(), period, queryInt(c, "limit", 0))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"period": period, "buckets": buckets})
	}
}
