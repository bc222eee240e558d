package mysql

import (
	"context"
	"fmt"
	"strings"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

// Structure lists every non-system schema with its tables, views, routines and
// triggers. MySQL has no sequences.
func Structure(ctx context.Context, q engine.Querier) (*models.SchemaModel, error) {
	model := models.NewSchemaModel()

	schemas, err := q.QueryRows(ctx, querySchemas)
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}
	for _, row := range schemas {
		model.AddSchema(engine.String(row, "schema_name"))
	}

	tables, err := q.QueryRows(ctx, queryTables)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	for _, row := range tables {
		model.AddTable(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}

	views, err := q.QueryRows(ctx, queryViews)
	if err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}
	for _, row := range views {
		model.AddView(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}

	routines, err := q.QueryRows(ctx, queryRoutines)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	for _, row := range routines {
		model.AddFunction(engine.String(row, "schema_name"), engine.String(row, "object_name"))
	}

	triggers, err := q.QueryRows(ctx, queryTriggers)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	for _, row := range triggers {
		model.AddTrigger(engine.String(row, "schema_name"), engine.String(row, "table_name"), engine.String(row, "object_name"))
	}

	return model, nil
}

// TableDetails describes one table. MySQL has no tablespaces per table or row
// level policies, both stay empty.
func TableDetails(ctx context.Context, q engine.Querier, schema, table string) (*models.TableDetail, error) {
	header, err := q.QueryRows(ctx, queryTableComment, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s.%s: %w", schema, table, err)
	}
	if len(header) == 0 {
		return nil, dberror.TableNotFound(models.EngineMySQL, schema, table)
	}

	detail := models.NewTableDetail(schema, table)
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
			IsPrimaryKey: engine.String(row, "column_key") == "PRI",
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
			Name: engine.String(row, "constraint_name"),
			Type: engine.String(row, "constraint_type"),
		})
	}

	indexRows, err := q.QueryRows(ctx, queryShowIndex(schema, table))
	if err != nil {
		return nil, fmt.Errorf("failed to read indexes: %w", err)
	}
	detail.Indexes = groupIndexes(indexRows)

	triggers, err := q.QueryRows(ctx, queryShowTriggers(schema, table))
	if err != nil {
		return nil, fmt.Errorf("failed to read triggers: %w", err)
	}
	for _, row := range triggers {
		if engine.String(row, "Table") != table {
			continue
		}
		detail.Triggers = append(detail.Triggers, models.TriggerDetail{
			Name:       engine.String(row, "Trigger"),
			Timing:     engine.String(row, "Timing"),
			Event:      engine.String(row, "Event"),
			Definition: engine.String(row, "Statement"),
			Enabled:    true,
		})
	}

	detail.Normalize()
	return detail, nil
}

// groupIndexes folds SHOW INDEX output, one row per indexed column, into one
// entry per key in the order the server reports them.
func groupIndexes(rows []map[string]any) []models.IndexDetail {
	indexes := []models.IndexDetail{}
	position := map[string]int{}
	for _, row := range rows {
		name := engine.String(row, "Key_name")
		i, seen := position[name]
		if !seen {
			i = len(indexes)
			position[name] = i
			indexes = append(indexes, models.IndexDetail{
				Name:      name,
				IsUnique:  !engine.Bool(row, "Non_unique"),
				IsPrimary: name == "PRIMARY",
				Columns:   []string{},
			})
		}
		if column := engine.String(row, "Column_name"); column != "" {
			indexes[i].Columns = append(indexes[i].Columns, column)
		}
	}
	for i := range indexes {
		kind := "INDEX"
		if indexes[i].IsPrimary {
			kind = "PRIMARY KEY"
		} else if indexes[i].IsUnique {
			kind = "UNIQUE INDEX"
		}
		indexes[i].Definition = fmt.Sprintf("%s (%s)", kind, strings.Join(indexes[i].Columns, ", "))
	}
	return indexes
}
