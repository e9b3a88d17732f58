package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary API root
// @Description Identifies the service
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "bizbooks backend", "status": "running"})
}
