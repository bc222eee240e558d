package engine

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
)

// OpenSQL opens a database/sql handle limited to one physical connection and
// verifies it with a ping. The handle is closed again if the ping fails.
func OpenSQL(ctx context.Context, kind models.EngineKind, driverName, dsn string) (*SQLSession, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, dberror.ConnectionFailed(kind, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	session := NewSQLSession(kind, db)
	if err := session.Ping(ctx); err != nil {
		_ = session.Close()
		return nil, dberror.ConnectionFailed(kind, err)
	}
	return session, nil
}

// SQLSession is the database/sql part of a session shared by the MySQL and SQL
// Server connectors. Engine packages embed it and add introspection.
type SQLSession struct {
	kind      models.EngineKind
	db        *sql.DB
	closeOnce sync.Once
	closeErr  error
}

// NewSQLSession wraps an already opened handle.
func NewSQLSession(kind models.EngineKind, db *sql.DB) *SQLSession {
	return &SQLSession{kind: kind, db: db}
}

// DB exposes the handle for engine-specific statements.
func (s *SQLSession) DB() *sql.DB {
	return s.db
}

// Ping verifies the connection is alive.
func (s *SQLSession) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Query runs text verbatim with no arguments.
func (s *SQLSession) Query(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return CollectRows(rows)
}

// QueryRows runs a catalog query with bound parameters.
func (s *SQLSession) QueryRows(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	return CollectRows(rows)
}

// Exec runs a single statement verbatim.
func (s *SQLSession) Exec(ctx context.Context, statement string) error {
	_, err := s.db.ExecContext(ctx, statement)
	return err
}

// Close releases the handle. Repeated calls return the first result.
func (s *SQLSession) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}
