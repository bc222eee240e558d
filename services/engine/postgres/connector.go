// Package postgres implements the PostgreSQL connector over a single pgx
// connection per session.
package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

// DefaultPort is used when a profile does not set one.
const DefaultPort = 5432

const closeTimeout = 5 * time.Second

// Connector opens transient PostgreSQL sessions.
type Connector struct {
	applicationName string
}

// NewConnector creates a PostgreSQL connector.
func NewConnector() *Connector {
	return &Connector{applicationName: "dbgatewayapi"}
}

// Kind implements engine.Connector.
func (c *Connector) Kind() models.EngineKind {
	return models.EnginePostgres
}

// Open implements engine.Connector.
func (c *Connector) Open(ctx context.Context, profile engine.Profile) (engine.Session, error) {
	cfg, err := pgx.ParseConfig(c.BuildDSN(profile))
	if err != nil {
		return nil, dberror.ConnectionFailed(models.EnginePostgres, err)
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, dberror.ConnectionFailed(models.EnginePostgres, err)
	}

	s := &session{conn: conn}
	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, dberror.ConnectionFailed(models.EnginePostgres, err)
	}
	return s, nil
}

// BuildDSN renders a postgres:// URL for a profile.
func (c *Connector) BuildDSN(profile engine.Profile) string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(profile.User, profile.Password),
		Host:   net.JoinHostPort(profile.Host, strconv.Itoa(profile.PortOr(DefaultPort))),
		Path:   "/" + profile.Database,
	}

	q := url.Values{}
	if profile.ConnectTimeout > 0 {
		seconds := int(profile.ConnectTimeout.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		q.Set("connect_timeout", strconv.Itoa(seconds))
	}
	if c.applicationName != "" {
		q.Set("application_name", c.applicationName)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

type session struct {
	conn      *pgx.Conn
	closeOnce sync.Once
	closeErr  error
}

func (s *session) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

// Query runs caller text over the simple protocol so it is never prepared or
// bound, matching what psql would send.
func (s *session) Query(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := s.conn.Query(ctx, query, pgx.QueryExecModeSimpleProtocol)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (s *session) QueryRows(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	return collectRows(rows)
}

func (s *session) Exec(ctx context.Context, statement string) error {
	_, err := s.conn.Exec(ctx, statement, pgx.QueryExecModeSimpleProtocol)
	return err
}

func (s *session) Structure(ctx context.Context) (*models.SchemaModel, error) {
	return Structure(ctx, s)
}

func (s *session) TableDetails(ctx context.Context, schema, table string) (*models.TableDetail, error) {
	return TableDetails(ctx, s, schema, table)
}

func (s *session) Close() error {
	s.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		s.closeErr = s.conn.Close(ctx)
	})
	return s.closeErr
}

func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	results := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to decode row: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, field := range fields {
			row[field.Name] = normalizeValue(values[i])
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// normalizeValue renders uuid columns, which pgx decodes to [16]byte, in their
// canonical text form.
func normalizeValue(v any) any {
	if b, ok := v.([16]byte); ok {
		return uuid.UUID(b).String()
	}
	return engine.NormalizeValue(v)
}
