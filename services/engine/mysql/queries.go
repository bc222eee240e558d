package mysql

import "strings"

const systemSchemaFilter = `('information_schema', 'mysql', 'performance_schema', 'sys')`

const querySchemas = `
	SELECT SCHEMA_NAME AS schema_name
	FROM information_schema.SCHEMATA
	WHERE SCHEMA_NAME NOT IN ` + systemSchemaFilter + `
	ORDER BY SCHEMA_NAME`

const queryTables = `
	SELECT TABLE_SCHEMA AS schema_name, TABLE_NAME AS object_name
	FROM information_schema.TABLES
	WHERE TABLE_TYPE = 'BASE TABLE'
		AND TABLE_SCHEMA NOT IN ` + systemSchemaFilter + `
	ORDER BY TABLE_SCHEMA, TABLE_NAME`

const queryViews = `
	SELECT TABLE_SCHEMA AS schema_name, TABLE_NAME AS object_name
	FROM information_schema.VIEWS
	WHERE TABLE_SCHEMA NOT IN ` + systemSchemaFilter + `
	ORDER BY TABLE_SCHEMA, TABLE_NAME`

const queryRoutines = `
	SELECT ROUTINE_SCHEMA AS schema_name, ROUTINE_NAME AS object_name
	FROM information_schema.ROUTINES
	WHERE ROUTINE_SCHEMA NOT IN ` + systemSchemaFilter + `
	ORDER BY ROUTINE_SCHEMA, ROUTINE_NAME`

const queryTriggers = `
	SELECT TRIGGER_SCHEMA AS schema_name, TRIGGER_NAME AS object_name, EVENT_OBJECT_TABLE AS table_name
	FROM information_schema.TRIGGERS
	WHERE TRIGGER_SCHEMA NOT IN ` + systemSchemaFilter + `
	ORDER BY TRIGGER_SCHEMA, TRIGGER_NAME`

const queryTableComment = `
	SELECT TABLE_COMMENT AS table_comment
	FROM information_schema.TABLES
	WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`

const queryColumns = `
	SELECT
		COLUMN_NAME AS column_name,
		DATA_TYPE AS data_type,
		CHARACTER_MAXIMUM_LENGTH AS max_length,
		IS_NULLABLE AS is_nullable,
		COLUMN_KEY AS column_key,
		COLUMN_DEFAULT AS column_default,
		COLUMN_COMMENT AS column_comment
	FROM information_schema.COLUMNS
	WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
	ORDER BY ORDINAL_POSITION`

const queryConstraints = `
	SELECT CONSTRAINT_NAME AS constraint_name, CONSTRAINT_TYPE AS constraint_type
	FROM information_schema.TABLE_CONSTRAINTS
	WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
	ORDER BY CONSTRAINT_NAME`

// SHOW statements cannot take placeholders, identifiers and the LIKE pattern are
// quoted instead.
func queryShowIndex(schema, table string) string {
	return "SHOW INDEX FROM " + quoteIdent(schema) + "." + quoteIdent(table)
}

func queryShowTriggers(schema, table string) string {
	return "SHOW TRIGGERS FROM " + quoteIdent(schema) + " LIKE " + quoteLiteral(escapeLike(table))
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func quoteLiteral(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `''`)
	return "'" + value + "'"
}

func escapeLike(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `%`, `\%`)
	return strings.ReplaceAll(value, `_`, `\_`)
}
