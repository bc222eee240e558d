package sqlserver

// Fixed database roles own a schema each (db_owner, db_datareader, ...).
const userSchemaFilter = `s.name NOT IN ('sys', 'INFORMATION_SCHEMA', 'guest') AND s.name NOT LIKE 'db[_]%'`

const querySchemas = `
	SELECT s.name AS schema_name
	FROM sys.schemas s
	WHERE ` + userSchemaFilter + `
	ORDER BY s.name`

const queryTables = `
	SELECT s.name AS schema_name, t.name AS object_name
	FROM sys.tables t
	JOIN sys.schemas s ON s.schema_id = t.schema_id
	WHERE t.is_ms_shipped = 0 AND ` + userSchemaFilter + `
	ORDER BY s.name, t.name`

const queryViews = `
	SELECT s.name AS schema_name, v.name AS object_name
	FROM sys.views v
	JOIN sys.schemas s ON s.schema_id = v.schema_id
	WHERE v.is_ms_shipped = 0 AND ` + userSchemaFilter + `
	ORDER BY s.name, v.name`

const queryRoutines = `
	SELECT s.name AS schema_name, o.name AS object_name
	FROM sys.objects o
	JOIN sys.schemas s ON s.schema_id = o.schema_id
	WHERE o.type IN ('FN', 'IF', 'TF', 'FS', 'FT', 'P', 'PC')
		AND o.is_ms_shipped = 0 AND ` + userSchemaFilter + `
	ORDER BY s.name, o.name`

const queryTriggers = `
	SELECT s.name AS schema_name, o.name AS table_name, tr.name AS object_name
	FROM sys.triggers tr
	JOIN sys.objects o ON o.object_id = tr.parent_id
	JOIN sys.schemas s ON s.schema_id = o.schema_id
	WHERE tr.parent_class = 1 AND tr.is_ms_shipped = 0 AND ` + userSchemaFilter + `
	ORDER BY s.name, tr.name`

const querySequences = `
	SELECT s.name AS schema_name, sq.name AS object_name
	FROM sys.sequences sq
	JOIN sys.schemas s ON s.schema_id = sq.schema_id
	WHERE ` + userSchemaFilter + `
	ORDER BY s.name, sq.name`

const queryTableHeader = `
	SELECT
		COALESCE(USER_NAME(COALESCE(o.principal_id, s.principal_id)), '') AS owner,
		COALESCE(ds.name, '') AS tablespace,
		COALESCE(CAST(ep.value AS NVARCHAR(4000)), '') AS table_comment
	FROM sys.objects o
	JOIN sys.schemas s ON s.schema_id = o.schema_id
	LEFT JOIN sys.indexes i ON i.object_id = o.object_id AND i.index_id IN (0, 1)
	LEFT JOIN sys.data_spaces ds ON ds.data_space_id = i.data_space_id
	LEFT JOIN sys.extended_properties ep
		ON ep.class = 1 AND ep.major_id = o.object_id AND ep.minor_id = 0 AND ep.name = 'MS_Description'
	WHERE s.name = @p1 AND o.name = @p2 AND o.type IN ('U', 'V')`

const queryColumns = `
	SELECT
		c.COLUMN_NAME AS column_name,
		c.DATA_TYPE AS data_type,
		c.CHARACTER_MAXIMUM_LENGTH AS max_length,
		c.IS_NULLABLE AS is_nullable,
		c.COLUMN_DEFAULT AS column_default,
		CASE WHEN pk.COLUMN_NAME IS NULL THEN 0 ELSE 1 END AS is_primary_key,
		COALESCE(CAST(ep.value AS NVARCHAR(4000)), '') AS column_comment
	FROM INFORMATION_SCHEMA.COLUMNS c
	LEFT JOIN (
		SELECT ku.TABLE_SCHEMA, ku.TABLE_NAME, ku.COLUMN_NAME
		FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
		JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE ku
			ON ku.CONSTRAINT_SCHEMA = tc.CONSTRAINT_SCHEMA AND ku.CONSTRAINT_NAME = tc.CONSTRAINT_NAME
		WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
	) pk ON pk.TABLE_SCHEMA = c.TABLE_SCHEMA AND pk.TABLE_NAME = c.TABLE_NAME AND pk.COLUMN_NAME = c.COLUMN_NAME
	LEFT JOIN sys.extended_properties ep
		ON ep.class = 1
		AND ep.major_id = OBJECT_ID(QUOTENAME(c.TABLE_SCHEMA) + '.' + QUOTENAME(c.TABLE_NAME))
		AND ep.minor_id = COLUMNPROPERTY(OBJECT_ID(QUOTENAME(c.TABLE_SCHEMA) + '.' + QUOTENAME(c.TABLE_NAME)), c.COLUMN_NAME, 'ColumnId')
		AND ep.name = 'MS_Description'
	WHERE c.TABLE_SCHEMA = @p1 AND c.TABLE_NAME = @p2
	ORDER BY c.ORDINAL_POSITION`

const queryConstraints = `
	SELECT
		tc.CONSTRAINT_NAME AS constraint_name,
		tc.CONSTRAINT_TYPE AS constraint_type,
		COALESCE(cc.CHECK_CLAUSE, '') AS definition
	FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
	LEFT JOIN INFORMATION_SCHEMA.CHECK_CONSTRAINTS cc
		ON cc.CONSTRAINT_SCHEMA = tc.CONSTRAINT_SCHEMA AND cc.CONSTRAINT_NAME = tc.CONSTRAINT_NAME
	WHERE tc.TABLE_SCHEMA = @p1 AND tc.TABLE_NAME = @p2
	ORDER BY tc.CONSTRAINT_NAME`

// FOR XML PATH keeps column aggregation working on servers older than 2017.
const queryIndexes = `
	SELECT
		i.name AS index_name,
		i.type_desc AS index_type,
		i.is_unique AS is_unique,
		i.is_primary_key AS is_primary,
		COALESCE(STUFF((
			SELECT ',' + col.name
			FROM sys.index_columns ic
			JOIN sys.columns col ON col.object_id = ic.object_id AND col.column_id = ic.column_id
			WHERE ic.object_id = i.object_id AND ic.index_id = i.index_id AND ic.is_included_column = 0
			ORDER BY ic.key_ordinal
			FOR XML PATH('')
		), 1, 1, ''), '') AS columns
	FROM sys.indexes i
	WHERE i.object_id = OBJECT_ID(QUOTENAME(@p1) + '.' + QUOTENAME(@p2))
		AND i.type > 0
	ORDER BY i.name`

const queryTableTriggers = `
	SELECT
		tr.name AS trigger_name,
		tr.is_disabled AS is_disabled,
		tr.is_instead_of_trigger AS is_instead_of,
		COALESCE(OBJECT_DEFINITION(tr.object_id), '') AS definition,
		COALESCE(STUFF((
			SELECT ' OR ' + te.type_desc
			FROM sys.trigger_events te
			WHERE te.object_id = tr.object_id
			FOR XML PATH('')
		), 1, 4, ''), '') AS event
	FROM sys.triggers tr
	WHERE tr.parent_id = OBJECT_ID(QUOTENAME(@p1) + '.' + QUOTENAME(@p2))
	ORDER BY tr.name`
