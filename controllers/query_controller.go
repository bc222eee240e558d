package controllers

import (
	"net/http"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/services"
	"dbgatewayapi/utils"

	"github.com/gin-gonic/gin"
)

var querySrv services.QueryService

// SetQueryService sets the query service used by the handlers.
func SetQueryService(s services.QueryService) {
	querySrv = s
}

// ExecuteQuery runs an ad hoc query against a saved connection
// @Summary Execute query
// @Description Runs the query text verbatim on the connection profile and returns every row. For MongoDB the query is an Extended JSON command document.
// @Tags Query
// @Accept json
// @Produce json
// @Param request body ExecuteQueryRequest true "Query request"
// @Success 200 {object} QueryResultResponse "Query rows"
// @Failure 400 {object} GatewayErrorResponse "Invalid body or unsupported database type"
// @Failure 404 {object} GatewayErrorResponse "Connection profile not found"
// @Failure 500 {object} GatewayErrorResponse "Connection or execution failure"
// @Router /execute-query [post]
func executeQuery(c *gin.Context) {
	var req ExecuteQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Executing query for connection %d (dbType=%s)", req.ConnectionID, req.DBType)
	rows, err := querySrv.Execute(c.Request.Context(), req.ConnectionID, req.Query, req.DBType)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, QueryResultResponse{Results: rows})
}

// RegisterQueryRoutes registers the query execution route.
func RegisterQueryRoutes(rg *gin.RouterGroup) {
	rg.POST("/execute-query", executeQuery)
}
