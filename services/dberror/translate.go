package dberror

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"dbgatewayapi/models"
)

// Humanized messages for the PostgreSQL text heuristics. Existing API clients
// match on these strings, keep them stable.
const (
	MsgMissingTable        = "La tabla no existe"
	msgMissingColumnFormat = "La columna \"%s\" no existe"
	unknownColumnName      = "desconocida"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// MySQL server error numbers.
const (
	mysqlNoSuchTable   = 1146
	mysqlBadFieldError = 1054
	mysqlAccessDenied  = 1045
	mysqlBadDBError    = 1049
)

// SQL Server error numbers.
const (
	mssqlInvalidObjectName = 208
	mssqlInvalidColumnName = 207
	mssqlLoginFailed       = 18456
)

// Translate maps a raw driver error to the normalized taxonomy. Errors already
// classified by a connector pass through unchanged.
func Translate(engine models.EngineKind, err error) *ExecutionError {
	if err == nil {
		return nil
	}

	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		if execErr.Engine == "" {
			execErr.Engine = engine
		}
		return execErr
	}

	raw := err.Error()
	kind := classify(err)

	if engine == models.EnginePostgres {
		if heuristicKind, message, ok := translatePostgres(err); ok {
			return &ExecutionError{Kind: heuristicKind, Engine: engine, Message: message, Details: raw, Err: err}
		}
	}

	return &ExecutionError{Kind: kind, Engine: engine, Message: driverMessage(err), Details: raw, Err: err}
}

// classify inspects structured driver errors.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return SyntaxOrExecutionError
	}
	if errors.Is(err, driver.ErrBadConn) {
		return ConnectionFailure
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUndefinedTable:
			return MissingRelation
		case pgErr.Code == pgUndefinedColumn:
			return MissingColumn
		case strings.HasPrefix(pgErr.Code, "28"), strings.HasPrefix(pgErr.Code, "08"):
			return ConnectionFailure
		default:
			return SyntaxOrExecutionError
		}
	}
	var pgConnectErr *pgconn.ConnectError
	if errors.As(err, &pgConnectErr) {
		return ConnectionFailure
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlNoSuchTable:
			return MissingRelation
		case mysqlBadFieldError:
			return MissingColumn
		case mysqlAccessDenied, mysqlBadDBError:
			return ConnectionFailure
		default:
			return SyntaxOrExecutionError
		}
	}

	var msErr mssql.Error
	if errors.As(err, &msErr) {
		switch msErr.Number {
		case mssqlInvalidObjectName:
			return MissingRelation
		case mssqlInvalidColumnName:
			return MissingColumn
		case mssqlLoginFailed:
			return ConnectionFailure
		default:
			return SyntaxOrExecutionError
		}
	}

	if mongo.IsNetworkError(err) {
		return ConnectionFailure
	}
	var mongoErr mongo.ServerError
	if errors.As(err, &mongoErr) {
		return SyntaxOrExecutionError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ConnectionFailure
	}

	return UnknownDriverError
}

// postgresMessage prefers the bare server message over the decorated Error() text.
func postgresMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}

// driverMessage returns the engine's own message without driver decorations.
func driverMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Message
	}
	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return msErr.Message
	}
	return err.Error()
}

// translatePostgres humanizes missing relations and columns. A SQLSTATE code
// decides when the driver exposes one; otherwise the message text does.
func translatePostgres(err error) (Kind, string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedColumn:
			return MissingColumn, missingColumnMessage(extractColumnName(pgErr.Message)), true
		case pgUndefinedTable:
			return MissingRelation, MsgMissingTable, true
		}
	}
	return translatePostgresMessage(postgresMessage(err))
}

// translatePostgresMessage applies the text heuristics. ok is false when no rule
// matches and the original message must be kept.
func translatePostgresMessage(message string) (Kind, string, bool) {
	if !strings.Contains(message, "does not exist") {
		return "", "", false
	}
	if strings.Contains(message, "relation") {
		return MissingRelation, MsgMissingTable, true
	}
	if strings.Contains(message, "column") {
		return MissingColumn, missingColumnMessage(extractColumnName(message)), true
	}
	return "", "", false
}

// extractColumnName pulls the quoted name after `column "`. It stops at the
// closing quote so `column "x" of relation "y"` yields x.
func extractColumnName(message string) string {
	const prefix = `column "`

	start := strings.Index(message, prefix)
	if start < 0 {
		return unknownColumnName
	}
	rest := message[start+len(prefix):]
	end := strings.IndexByte(rest, '"')
	if end <= 0 {
		return unknownColumnName
	}
	return rest[:end]
}

func missingColumnMessage(column string) string {
	return fmt.Sprintf(msgMissingColumnFormat, column)
}
