package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/services"
	"dbgatewayapi/utils"

	"github.com/gin-gonic/gin"
)

var schemaSrv services.SchemaService

// SetSchemaService sets the schema introspection service used by the handlers.
func SetSchemaService(s services.SchemaService) {
	schemaSrv = s
}

// GetDatabaseStructure lists schemas, tables, views, functions, triggers and sequences
// @Summary Get database structure
// @Description Reads the catalog of the connection profile. The engine comes from the stored profile.
// @Tags Schema
// @Produce json
// @Param connectionId path int true "Connection profile ID"
// @Success 200 {object} SchemaStructureResponse "Schema structure"
// @Failure 400 {object} GatewayErrorResponse "Invalid connection ID"
// @Failure 404 {object} GatewayErrorResponse "Connection profile not found"
// @Failure 500 {object} GatewayErrorResponse "Connection or catalog failure"
// @Router /database/{connectionId}/structure [get]
func getDatabaseStructure(c *gin.Context) {
	idParam := c.Param("connectionId")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, fmt.Errorf("connection ID must be a positive integer, got %q", idParam))
		return
	}

	model, err := schemaSrv.GetStructure(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, model)
}

// GetTableDetails describes a single table
// @Summary Get table details
// @Description Returns columns, constraints, indexes, policies and triggers of a table
// @Tags Schema
// @Accept json
// @Produce json
// @Param request body TableDetailsRequest true "Table reference"
// @Success 200 {object} TableDetailResponse "Table details"
// @Failure 400 {object} GatewayErrorResponse "Invalid body or unsupported database type"
// @Failure 404 {object} GatewayErrorResponse "Connection profile not found"
// @Failure 500 {object} GatewayErrorResponse "Connection failure or unknown table"
// @Router /get-table-details [post]
func getTableDetails(c *gin.Context) {
	var req TableDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Reading details of %s.%s for connection %d", req.Schema, req.TableName, req.ConnectionID)
	detail, err := schemaSrv.GetTableDetails(c.Request.Context(), req.ConnectionID, req.DBType, req.Schema, req.TableName)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, detail)
}

// RegisterSchemaRoutes registers the introspection routes.
func RegisterSchemaRoutes(rg *gin.RouterGroup) {
	rg.GET("/database/:connectionId/structure", getDatabaseStructure)
	rg.POST("/get-table-details", getTableDetails)
}
