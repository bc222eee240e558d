package postgres

import (
	"context"
	"fmt"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

type catalogList struct {
	what  string
	query string
	add   func(m *models.SchemaModel, row map[string]any)
}

var structureCatalog = []catalogList{
	{"schemas", querySchemas, func(m *models.SchemaModel, row map[string]any) {
		m.AddSchema(engine.String(row, "schema_name"))
	}},
	{"tables", queryTables, func(m *models.SchemaModel, row map[string]any) {
		m.AddTable(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}},
	{"views", queryViews, func(m *models.SchemaModel, row map[string]any) {
		m.AddView(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}},
	{"functions", queryFunctions, func(m *models.SchemaModel, row map[string]any) {
		m.AddFunction(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}},
	{"triggers", queryTriggers, func(m *models.SchemaModel, row map[string]any) {
		m.AddTrigger(engine.String(row, "schema_name"), engine.String(row, "table_name"), engine.String(row, "object_name"))
	}},
	{"sequences", querySequences, func(m *models.SchemaModel, row map[string]any) {
		m.AddSequence(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}},
}

// Structure lists user schemas and their objects. System schemas, TOAST and
// temporary namespaces are skipped.
func Structure(ctx context.Context, q engine.Querier) (*models.SchemaModel, error) {
	model := models.NewSchemaModel()
	for _, list := range structureCatalog {
		rows, err := q.QueryRows(ctx, list.query)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", list.what, err)
		}
		for _, row := range rows {
			list.add(model, row)
		}
	}
	return model, nil
}

// TableDetails describes a table, view or materialized view including its row
// level security policies.
func TableDetails(ctx context.Context, q engine.Querier, schema, table string) (*models.TableDetail, error) {
	header, err := q.QueryRows(ctx, queryTableHeader, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s.%s: %w", schema, table, err)
	}
	if len(header) == 0 {
		return nil, dberror.TableNotFound(models.EnginePostgres, schema, table)
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
		kind := engine.String(row, "constraint_type")
		if name, ok := constraintTypes[kind]; ok {
			kind = name
		}
		detail.Constraints = append(detail.Constraints, models.ConstraintDetail{
			Name:       engine.String(row, "constraint_name"),
			Type:       kind,
			Definition: engine.String(row, "definition"),
		})
	}

	indexes, err := q.QueryRows(ctx, queryIndexes, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read indexes: %w", err)
	}
	for _, row := range indexes {
		detail.Indexes = append(detail.Indexes, models.IndexDetail{
			Name:       engine.String(row, "index_name"),
			Definition: engine.String(row, "definition"),
			Columns:    engine.SplitList(engine.String(row, "columns")),
			IsUnique:   engine.Bool(row, "is_unique"),
			IsPrimary:  engine.Bool(row, "is_primary"),
		})
	}

	policies, err := q.QueryRows(ctx, queryPolicies, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read policies: %w", err)
	}
	for _, row := range policies {
		detail.Policies = append(detail.Policies, models.PolicyDetail{
			Name:       engine.String(row, "policy_name"),
			Command:    engine.String(row, "command"),
			Permissive: engine.Bool(row, "permissive"),
			Roles:      engine.SplitList(engine.String(row, "roles")),
			Using:      engine.String(row, "using_expr"),
			WithCheck:  engine.String(row, "with_check"),
		})
	}

	triggers, err := q.QueryRows(ctx, queryTableTriggers, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read triggers: %w", err)
	}
	for _, row := range triggers {
		detail.Triggers = append(detail.Triggers, models.TriggerDetail{
			Name:       engine.String(row, "trigger_name"),
			Timing:     engine.String(row, "timing"),
			Event:      engine.String(row, "event"),
			Definition: engine.String(row, "definition"),
			Enabled:    engine.Bool(row, "enabled"),
		})
	}

	detail.Normalize()
	return detail, nil
}
