// Package engine defines the contract every database connector implements and
// the single dispatch point used by the gateway services.
package engine

import (
	"context"
	"time"

	"dbgatewayapi/models"
)

// DefaultConnectTimeout bounds open+ping when a profile does not set one.
const DefaultConnectTimeout = 10 * time.Second

// Profile carries the connection parameters a connector needs. It is built from a
// stored models.ConnectionProfile and never persisted.
type Profile struct {
	ID             uint
	Kind           models.EngineKind
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	ConnectTimeout time.Duration
}

// ProfileFromModel converts a stored profile into connector parameters.
func ProfileFromModel(p *models.ConnectionProfile, kind models.EngineKind, connectTimeout time.Duration) Profile {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	return Profile{
		ID:             p.ID,
		Kind:           kind,
		Host:           p.Host,
		Port:           p.Port,
		User:           p.Username,
		Password:       p.Password,
		Database:       p.Database,
		ConnectTimeout: connectTimeout,
	}
}

// PortOr returns the profile port or def when unset.
func (p Profile) PortOr(def int) int {
	if p.Port > 0 {
		return p.Port
	}
	return def
}

// Connector opens sessions for one engine kind.
type Connector interface {
	Kind() models.EngineKind
	// Open establishes and verifies a transient client. Failures must be
	// classified as dberror.ConnectionFailure.
	Open(ctx context.Context, profile Profile) (Session, error)
}

// Session is a transient client bound to one request.
type Session interface {
	Ping(ctx context.Context) error
	// Query runs caller text verbatim, without parameter binding, and returns
	// every row.
	Query(ctx context.Context, query string) ([]map[string]any, error)
	// Exec runs a single caller-built statement verbatim.
	Exec(ctx context.Context, statement string) error
	Structure(ctx context.Context) (*models.SchemaModel, error)
	TableDetails(ctx context.Context, schema, table string) (*models.TableDetail, error)
	Close() error
}

// Querier runs catalog queries with bound parameters. Introspection code is
// written against it so it can be exercised without a live server.
type Querier interface {
	QueryRows(ctx context.Context, query string, args ...any) ([]map[string]any, error)
}
