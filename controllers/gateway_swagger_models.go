package controllers

import "dbgatewayapi/models"

// ExecuteQueryRequest is the body of POST /execute-query.
type ExecuteQueryRequest struct {
	ConnectionID uint   `json:"connectionId" validate:"required" example:"5"`
	Query        string `json:"query" validate:"required,notblank" example:"SELECT * FROM orders"`
	DBType       string `json:"dbType" validate:"required" example:"mysql"`
}

// QueryResultResponse wraps the rows returned by a query.
type QueryResultResponse struct {
	Results []map[string]interface{} `json:"results"`
}

// TableDetailsRequest is the body of POST /get-table-details.
type TableDetailsRequest struct {
	ConnectionID uint   `json:"connectionId" validate:"required" example:"7"`
	DBType       string `json:"dbType" validate:"required" example:"pgsql"`
	Schema       string `json:"schema" validate:"required" example:"public"`
	TableName    string `json:"tableName" validate:"required" example:"users"`
}

// UpdateTableCommentRequest is the body of POST /update-table-comment. SQL is
// built by the caller and applied verbatim.
type UpdateTableCommentRequest struct {
	ConnectionID uint   `json:"connectionId" validate:"required" example:"7"`
	DBType       string `json:"dbType" validate:"required" example:"pgsql"`
	Schema       string `json:"schema" example:"public"`
	TableName    string `json:"tableName" validate:"required" example:"users"`
	SQL          string `json:"sql" validate:"required,notblank" example:"COMMENT ON TABLE public.users IS 'application users'"`
}

// UpdateColumnRequest is the body of POST /update-column. The column fields
// describe the change for logging; SQL is what gets executed.
type UpdateColumnRequest struct {
	ConnectionID  uint   `json:"connectionId" validate:"required" example:"5"`
	DBType        string `json:"dbType" example:"mysql"`
	Schema        string `json:"schema" example:"shop"`
	TableName     string `json:"tableName" validate:"required" example:"orders"`
	ColumnName    string `json:"columnName" validate:"required" example:"customer"`
	NewColumnName string `json:"newColumnName" example:"customer_name"`
	NewDataType   string `json:"newDataType" example:"VARCHAR(128)"`
	NewComment    string `json:"newComment" example:"buyer display name"`
	SQL           string `json:"sql" validate:"required,notblank" example:"ALTER TABLE shop.orders CHANGE customer customer_name VARCHAR(128)"`
}

// SuccessResponse acknowledges a statement that returns no rows.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// GatewayErrorResponse is returned for every failed gateway operation.
type GatewayErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"La tabla no existe"`
	Details string `json:"details" example:"ERROR: relation \"foo\" does not exist (SQLSTATE 42P01)"`
	Kind    string `json:"kind,omitempty" example:"MissingRelation"`
}

// SchemaStructureResponse documents the structure payload.
type SchemaStructureResponse = models.SchemaModel

// TableDetailResponse documents the table detail payload.
type TableDetailResponse = models.TableDetail
