package sqlserver

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
	"dbgatewayapi/services/engine/enginetest"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(engine.Profile{
		Host:           "mssql.internal",
		User:           "sa",
		Password:       "Str0ng;Pass",
		Database:       "Sales",
		ConnectTimeout: 10 * time.Second,
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "sqlserver", u.Scheme)
	assert.Equal(t, "mssql.internal:1433", u.Host)
	pass, _ := u.User.Password()
	assert.Equal(t, "Str0ng;Pass", pass)
	assert.Equal(t, "Sales", u.Query().Get("database"))
	assert.Equal(t, "10", u.Query().Get("dial timeout"))
}

func TestStructure(t *testing.T) {
	q := enginetest.NewQuerier().
		On(querySchemas, map[string]any{"schema_name": "dbo"}, map[string]any{"schema_name": "sales"}).
		On(queryTables, map[string]any{"schema_name": "sales", "object_name": "Orders"}).
		On(queryViews).
		On(queryRoutines, map[string]any{"schema_name": "dbo", "object_name": "usp_Refresh"}).
		On(queryTriggers, map[string]any{"schema_name": "sales", "table_name": "Orders", "object_name": "trg_Orders_Audit"}).
		On(querySequences, map[string]any{"schema_name": "sales", "object_name": "OrderNumbers"})

	model, err := Structure(context.Background(), q)
	require.NoError(t, err)

	assert.Len(t, model.Schemas, 2)
	assert.Equal(t, models.SchemaObject{Name: "Orders", Schema: "sales", Type: models.ObjectTable}, model.Tables[0])
	assert.NotNil(t, model.Views)
	assert.Empty(t, model.Views)
	assert.Equal(t, models.ObjectFunction, model.Functions[0].Type)
	assert.Equal(t, "Orders", model.Triggers[0].Table)
	assert.Equal(t, models.ObjectSequence, model.Sequences[0].Type)
}

func TestStructure_ExcludesSystemSchemas(t *testing.T) {
	q := enginetest.NewQuerier().
		On(querySchemas).On(queryTables).On(queryViews).
		On(queryRoutines).On(queryTriggers).On(querySequences)

	_, err := Structure(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, q.Calls, 6)
	for _, call := range q.Calls {
		assert.Contains(t, call.Query, userSchemaFilter)
	}
}

func TestTableDetails(t *testing.T) {
	q := enginetest.NewQuerier().
		On(queryTableHeader, map[string]any{"owner": "dbo", "tablespace": "PRIMARY", "table_comment": "Customer orders"}).
		On(queryColumns,
			map[string]any{"column_name": "OrderID", "data_type": "int", "max_length": nil, "is_nullable": "NO", "column_default": nil, "is_primary_key": int64(1), "column_comment": ""},
			map[string]any{"column_name": "Notes", "data_type": "nvarchar", "max_length": int64(-1), "is_nullable": "YES", "column_default": "('')", "is_primary_key": int64(0), "column_comment": "free text"}).
		On(queryConstraints,
			map[string]any{"constraint_name": "PK_Orders", "constraint_type": "PRIMARY KEY", "definition": ""},
			map[string]any{"constraint_name": "CK_Orders_Total", "constraint_type": "CHECK", "definition": "([Total]>=(0))"}).
		On(queryIndexes,
			map[string]any{"index_name": "PK_Orders", "index_type": "CLUSTERED", "is_unique": true, "is_primary": true, "columns": "OrderID"}).
		On(queryTableTriggers,
			map[string]any{"trigger_name": "trg_Orders_Audit", "is_disabled": false, "is_instead_of": false, "definition": "CREATE TRIGGER ...", "event": "INSERT OR UPDATE"})

	detail, err := TableDetails(context.Background(), q, "sales", "Orders")
	require.NoError(t, err)

	assert.Equal(t, "dbo", detail.Owner)
	assert.Equal(t, "PRIMARY", detail.Tablespace)
	assert.Equal(t, "Customer orders", detail.Comment)
	require.Len(t, detail.Columns, 2)
	assert.True(t, detail.Columns[0].IsPrimaryKey)
	assert.False(t, detail.Columns[1].IsPrimaryKey)
	assert.Equal(t, "('')", *detail.Columns[1].DefaultValue)
	assert.Equal(t, "([Total]>=(0))", detail.Constraints[1].Definition)
	assert.Equal(t, "CLUSTERED (OrderID)", detail.Indexes[0].Definition)
	assert.Equal(t, "AFTER", detail.Triggers[0].Timing)
	assert.True(t, detail.Triggers[0].Enabled)
	assert.NotNil(t, detail.Policies)

	for _, call := range q.Calls {
		assert.Equal(t, []any{"sales", "Orders"}, call.Args)
	}
}

func TestTableDetails_UnknownTable(t *testing.T) {
	q := enginetest.NewQuerier().On(queryTableHeader)

	_, err := TableDetails(context.Background(), q, "dbo", "Missing")
	assert.True(t, dberror.Is(err, dberror.MissingRelation))
}
