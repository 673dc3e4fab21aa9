package handlers

import (
	"net/http"

	"styleforage/services/catalog"

	"github.com/gin-gonic/gin"
)

// GetServices handles GET /api/services.
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

// GetServiceByID handles GET /api/services/:id.
func GetServiceByID(c *gin.Context) {
	id := c.Param("id")
	svc, err := catalog.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "service not found",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetSlots handles GET /api/slots. The date parameter is accepted for
// symmetry with a real calendar backend; the slot table is static.
func GetSlots(c *gin.Context) {
	date := c.Query("date")
	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": catalog.SlotsForDate(date),
	})
}
