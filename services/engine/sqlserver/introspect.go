package sqlserver

import (
	"context"
	"fmt"
	"strings"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

// Structure lists user schemas and their objects from the sys catalog views.
func Structure(ctx context.Context, q engine.Querier) (*models.SchemaModel, error) {
	model := models.NewSchemaModel()

	lists := []struct {
		what  string
		query string
		add   func(row map[string]any)
	}{
		{"schemas", querySchemas, func(row map[string]any) {
			model.AddSchema(engine.String(row, "schema_name"))
		}},
		{"tables", queryTables, func(row map[string]any) {
			model.AddTable(engine.String(row, "schema_name"), engine.String(row, "object_name"))
		}},
		{"views", queryViews, func(row map[string]any) {
			model.AddView(engine.String(row, "schema_name"), engine.String(row, "object_name"))
		}},
		{"routines", queryRoutines, func(row map[string]any) {
			model.AddFunction(engine.String(row, "schema_name"), engine.String(row, "object_name"))
		}},
		{"triggers", queryTriggers, func(row map[string]any) {
			model.AddTrigger(engine.String(row, "schema_name"), engine.String(row, "table_name"), engine.String(row, "object_name"))
		}},
		{"sequences", querySequences, func(row map[string]any) {
			model.AddSequence(engine.String(row, "schema_name"), engine.String(row, "object_name"))
		}},
	}

	for _, list := range lists {
		rows, err := q.QueryRows(ctx, list.query)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", list.what, err)
		}
		for _, row := range rows {
			list.add(row)
		}
	}
	return model, nil
}

// TableDetails describes a table or view. SQL Server has no row level policies
// in the PostgreSQL sense, Policies stays empty.
func TableDetails(ctx context.Context, q engine.Querier, schema, table string) (*models.TableDetail, error) {
	header, err := q.QueryRows(ctx, queryTableHeader, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s.%s: %w", schema, table, err)
	}
	if len(header) == 0 {
		return nil, dberror.TableNotFound(models.EngineSQLServer, schema, table)
	}

	detail := models.NewTableDetail(schema, table)
	detail.Owner = engine.String(header[0], "owner")
	detail.Tablespace = engine.String(header[0], "tablespace")
	detail.Comment = engine.String(header[0], "table_comment")

	columns, err := q.QueryRows(ctx, queryColumns, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	for _, row := range columns {
		detail.Columns = append(detail.Columns, models.ColumnDetail{
			Name:         engine.String(row, "column_name"),
			DataType:     engine.String(row, "data_type"),
			Length:       engine.Int64Ptr(row, "max_length"),
			Nullable:     engine.Bool(row, "is_nullable"),
			IsPrimaryKey: engine.Bool(row, "is_primary_key"),
			DefaultValue: engine.StringPtr(row, "column_default"),
			Comment:      engine.String(row, "column_comment"),
		})
	}

	constraints, err := q.QueryRows(ctx, queryConstraints, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read constraints: %w", err)
	}
	for _, row := range constraints {
		detail.Constraints = append(detail.Constraints, models.ConstraintDetail{
			Name:       engine.String(row, "constraint_name"),
			Type:       engine.String(row, "constraint_type"),
			Definition: engine.String(row, "definition"),
		})
	}

	indexes, err := q.QueryRows(ctx, queryIndexes, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read indexes: %w", err)
	}
	for _, row := range indexes {
		cols := engine.SplitList(engine.String(row, "columns"))
		detail.Indexes = append(detail.Indexes, models.IndexDetail{
			Name:       engine.String(row, "index_name"),
			Definition: fmt.Sprintf("%s (%s)", engine.String(row, "index_type"), strings.Join(cols, ", ")),
			Columns:    cols,
			IsUnique:   engine.Bool(row, "is_unique"),
			IsPrimary:  engine.Bool(row, "is_primary"),
		})
	}

	triggers, err := q.QueryRows(ctx, queryTableTriggers, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read triggers: %w", err)
	}
	for _, row := range triggers {
		timing := "AFTER"
		if engine.Bool(row, "is_instead_of") {
			timing = "INSTEAD OF"
		}
		detail.Triggers = append(detail.Triggers, models.TriggerDetail{
			Name:       engine.String(row, "trigger_name"),
			Timing:     timing,
			Event:      engine.String(row, "event"),
			Definition: engine.String(row, "definition"),
			Enabled:    !engine.Bool(row, "is_disabled"),
		})
	}

	detail.Normalize()
	return detail, nil
}
