package controllers

import (
	"net/http"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/services"
	"dbgatewayapi/utils"

	"github.com/gin-gonic/gin"
)

var ddlSrv services.DDLService

// SetDDLService sets the DDL service used by the handlers.
func SetDDLService(s services.DDLService) {
	ddlSrv = s
}

// UpdateTableComment applies a caller-built table comment statement
// @Summary Update table comment
// @Description Executes the supplied statement verbatim against the connection profile
// @Tags DDL
// @Accept json
// @Produce json
// @Param request body UpdateTableCommentRequest true "Statement"
// @Success 200 {object} SuccessResponse "Statement applied"
// @Failure 400 {object} GatewayErrorResponse "Invalid body or unsupported database type"
// @Failure 404 {object} GatewayErrorResponse "Connection profile not found"
// @Failure 500 {object} GatewayErrorResponse "Connection or execution failure"
// @Router /update-table-comment [post]
func updateTableComment(c *gin.Context) {
	var req UpdateTableCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Updating comment of %s.%s on connection %d", req.Schema, req.TableName, req.ConnectionID)
	if err := ddlSrv.ApplyStatement(c.Request.Context(), req.ConnectionID, req.DBType, req.SQL); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, SuccessResponse{Success: true})
}

// UpdateColumn applies a caller-built column change
// @Summary Update column
// @Description Executes the supplied ALTER statement verbatim. dbType is optional and defaults to the stored engine.
// @Tags DDL
// @Accept json
// @Produce json
// @Param request body UpdateColumnRequest true "Column change"
// @Success 200 {object} SuccessResponse "Statement applied"
// @Failure 400 {object} GatewayErrorResponse "Invalid body or unsupported database type"
// @Failure 404 {object} GatewayErrorResponse "Connection profile not found"
// @Failure 500 {object} GatewayErrorResponse "Connection or execution failure"
// @Router /update-column [post]
func updateColumn(c *gin.Context) {
	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Updating column %s.%s.%s on connection %d (rename=%q type=%q)",
		req.Schema, req.TableName, req.ColumnName, req.ConnectionID, req.NewColumnName, req.NewDataType)
	if err := ddlSrv.ApplyStatement(c.Request.Context(), req.ConnectionID, req.DBType, req.SQL); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, SuccessResponse{Success: true})
}

// RegisterDDLRoutes registers the statement pass-through routes.
func RegisterDDLRoutes(rg *gin.RouterGroup) {
	rg.POST("/update-table-comment", updateTableComment)
	rg.POST("/update-column", updateColumn)
}
