package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Service banner
// @Description Returns the service name, useful as a smoke check behind auth
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /home [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "ledger-reports"})
}

func registerHomeRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", GetHome)
}
