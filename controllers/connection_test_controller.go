package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"dbgatewayapi/models"
	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/services"
	"dbgatewayapi/utils"

	"github.com/gin-gonic/gin"
)

var connectionTestSrv services.ConnectionTestService

// SetConnectionTestService sets the connection test service used by the handler.
func SetConnectionTestService(s services.ConnectionTestService) {
	connectionTestSrv = s
}

// TestConnection tests database connection status
// @Summary Test database connection
// @Description Opens and pings the connection profile and stores enabled or disabled as its status
// @Tags Connection
// @Produce json
// @Param id path int true "Connection profile ID"
// @Success 200 {object} map[string]interface{} "Connection test completed"
// @Failure 400 {object} GatewayErrorResponse "Bad request"
// @Failure 404 {object} GatewayErrorResponse "Connection not found"
// @Failure 500 {object} GatewayErrorResponse "Internal server error"
// @Router /connection/test/{id} [post]
func testConnection(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, fmt.Errorf("connection ID must be a positive integer, got %q", idParam))
		return
	}

	logger.Infof("Testing connection for ID: %d", id)
	result, err := connectionTestSrv.TestConnection(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": result.Status == models.StatusEnabled,
		"message": "Connection test completed",
		"data":    result,
	})
}

// RegisterConnectionTestRoutes registers connection test routes
func RegisterConnectionTestRoutes(rg *gin.RouterGroup) {
	connection := rg.Group("/connection")
	{
		connection.POST("/test/:id", testConnection)
	}
}
