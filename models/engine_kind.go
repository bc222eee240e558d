package models

import "strings"

// EngineKind identifies which connector and catalog queries apply to a profile.
type EngineKind string

// Supported engine kinds.
const (
	EngineMySQL     EngineKind = "mysql"
	EnginePostgres  EngineKind = "postgresql"
	EngineSQLServer EngineKind = "sqlserver"
	EngineMongoDB   EngineKind = "mongodb"
)

var engineAliases = map[string]EngineKind{
	"mysql":      EngineMySQL,
	"pgsql":      EnginePostgres,
	"postgres":   EnginePostgres,
	"postgresql": EnginePostgres,
	"sqlserver":  EngineSQLServer,
	"mssql":      EngineSQLServer,
	"mongodb":    EngineMongoDB,
	"mongo":      EngineMongoDB,
}

// ParseEngineKind matches a caller-supplied engine name case-insensitively.
// Returns false for anything outside the supported set.
func ParseEngineKind(name string) (EngineKind, bool) {
	kind, ok := engineAliases[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// SupportedEngineKinds lists every kind in display order.
func SupportedEngineKinds() []EngineKind {
	return []EngineKind{EngineMySQL, EnginePostgres, EngineSQLServer, EngineMongoDB}
}

func (k EngineKind) String() string {
	return string(k)
}
