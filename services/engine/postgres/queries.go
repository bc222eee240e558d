package postgres

const systemSchemaFilter = `NOT IN ('pg_catalog', 'information_schema')`

const querySchemas = `
	SELECT nspname AS schema_name
	FROM pg_namespace
	WHERE nspname ` + systemSchemaFilter + `
		AND nspname NOT LIKE 'pg_toast%'
		AND nspname NOT LIKE 'pg_temp_%'
	ORDER BY nspname`

const queryTables = `
	SELECT schemaname AS schema_name, tablename AS object_name
	FROM pg_tables
	WHERE schemaname ` + systemSchemaFilter + `
		AND schemaname NOT LIKE 'pg_toast%'
	ORDER BY schemaname, tablename`

const queryViews = `
	SELECT schemaname AS schema_name, viewname AS object_name
	FROM pg_views
	WHERE schemaname ` + systemSchemaFilter + `
	ORDER BY schemaname, viewname`

const queryFunctions = `
	SELECT n.nspname AS schema_name, p.proname AS object_name
	FROM pg_proc p
	JOIN pg_namespace n ON n.oid = p.pronamespace
	WHERE n.nspname ` + systemSchemaFilter + `
		AND n.nspname NOT LIKE 'pg_toast%'
	ORDER BY n.nspname, p.proname`

const queryTriggers = `
	SELECT n.nspname AS schema_name, c.relname AS table_name, t.tgname AS object_name
	FROM pg_trigger t
	JOIN pg_class c ON c.oid = t.tgrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE NOT t.tgisinternal
		AND n.nspname ` + systemSchemaFilter + `
	ORDER BY n.nspname, c.relname, t.tgname`

const querySequences = `
	SELECT n.nspname AS schema_name, c.relname AS object_name
	FROM pg_class c
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE c.relkind = 'S'
		AND n.nspname ` + systemSchemaFilter + `
	ORDER BY n.nspname, c.relname`

const queryTableHeader = `
	SELECT
		COALESCE(t.tableowner, pg_get_userbyid(c.relowner)) AS owner,
		COALESCE(t.tablespace, ts.spcname, '') AS tablespace,
		COALESCE(obj_description(c.oid, 'pg_class'), '') AS table_comment
	FROM pg_class c
	JOIN pg_namespace n ON n.oid = c.relnamespace
	LEFT JOIN pg_tables t ON t.schemaname = n.nspname AND t.tablename = c.relname
	LEFT JOIN pg_tablespace ts ON ts.oid = c.reltablespace
	WHERE n.nspname = $1 AND c.relname = $2
		AND c.relkind IN ('r', 'p', 'v', 'm', 'f')`

const queryColumns = `
	SELECT
		a.attname AS column_name,
		format_type(a.atttypid, a.atttypmod) AS data_type,
		CASE WHEN a.atttypid IN (1042, 1043) AND a.atttypmod > 4 THEN a.atttypmod - 4 END AS max_length,
		NOT a.attnotnull AS is_nullable,
		pg_get_expr(d.adbin, d.adrelid) AS column_default,
		COALESCE(col_description(a.attrelid, a.attnum), '') AS column_comment,
		EXISTS (
			SELECT 1 FROM pg_constraint pk
			WHERE pk.conrelid = a.attrelid
				AND pk.contype = 'p'
				AND a.attnum = ANY (pk.conkey)
		) AS is_primary_key
	FROM pg_attribute a
	JOIN pg_class c ON c.oid = a.attrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	LEFT JOIN pg_attrdef d ON d.adrelid = a.attrelid AND d.adnum = a.attnum
	WHERE n.nspname = $1 AND c.relname = $2
		AND a.attnum > 0
		AND NOT a.attisdropped
	ORDER BY a.attnum`

const queryConstraints = `
	SELECT
		con.conname AS constraint_name,
		con.contype::text AS constraint_type,
		pg_get_constraintdef(con.oid) AS definition
	FROM pg_constraint con
	JOIN pg_class c ON c.oid = con.conrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = $1 AND c.relname = $2
	ORDER BY con.conname`

const queryIndexes = `
	SELECT
		i.relname AS index_name,
		pg_get_indexdef(ix.indexrelid) AS definition,
		ix.indisunique AS is_unique,
		ix.indisprimary AS is_primary,
		COALESCE((
			SELECT string_agg(a.attname, ',' ORDER BY k.ord)
			FROM unnest(ix.indkey::int2[]) WITH ORDINALITY AS k(attnum, ord)
			JOIN pg_attribute a ON a.attrelid = ix.indrelid AND a.attnum = k.attnum
		), '') AS columns
	FROM pg_index ix
	JOIN pg_class i ON i.oid = ix.indexrelid
	JOIN pg_class c ON c.oid = ix.indrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = $1 AND c.relname = $2
	ORDER BY i.relname`

const queryPolicies = `
	SELECT
		pol.polname AS policy_name,
		CASE pol.polcmd
			WHEN 'r' THEN 'SELECT'
			WHEN 'a' THEN 'INSERT'
			WHEN 'w' THEN 'UPDATE'
			WHEN 'd' THEN 'DELETE'
			ELSE 'ALL'
		END AS command,
		pol.polpermissive AS permissive,
		COALESCE((
			SELECT string_agg(CASE WHEN r = 0 THEN 'public' ELSE pg_get_userbyid(r) END, ',')
			FROM unnest(pol.polroles) AS r
		), '') AS roles,
		COALESCE(pg_get_expr(pol.polqual, pol.polrelid), '') AS using_expr,
		COALESCE(pg_get_expr(pol.polwithcheck, pol.polrelid), '') AS with_check
	FROM pg_policy pol
	JOIN pg_class c ON c.oid = pol.polrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = $1 AND c.relname = $2
	ORDER BY pol.polname`

const queryTableTriggers = `
	SELECT
		t.tgname AS trigger_name,
		pg_get_triggerdef(t.oid) AS definition,
		t.tgenabled <> 'D' AS enabled,
		CASE
			WHEN t.tgtype::int & 2 = 2 THEN 'BEFORE'
			WHEN t.tgtype::int & 64 = 64 THEN 'INSTEAD OF'
			ELSE 'AFTER'
		END AS timing,
		concat_ws(' OR ',
			CASE WHEN t.tgtype::int & 4 = 4 THEN 'INSERT' END,
			CASE WHEN t.tgtype::int & 8 = 8 THEN 'DELETE' END,
			CASE WHEN t.tgtype::int & 16 = 16 THEN 'UPDATE' END,
			CASE WHEN t.tgtype::int & 32 = 32 THEN 'TRUNCATE' END
		) AS event
	FROM pg_trigger t
	JOIN pg_class c ON c.oid = t.tgrelid
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = $1 AND c.relname = $2
		AND NOT t.tgisinternal
	ORDER BY t.tgname`

var constraintTypes = map[string]string{
	"p": "PRIMARY KEY",
	"f": "FOREIGN KEY",
	"u": "UNIQUE",
	"c": "CHECK",
	"x": "EXCLUDE",
	"t": "CONSTRAINT TRIGGER",
}
