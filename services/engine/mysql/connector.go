// Package mysql implements the MySQL connector over go-sql-driver/mysql.
package mysql

import (
	"context"
	"net"
	"strconv"

	driver "github.com/go-sql-driver/mysql"

	"dbgatewayapi/models"
	"dbgatewayapi/services/engine"
)

// DefaultPort is used when a profile does not set one.
const DefaultPort = 3306

// Connector opens transient MySQL sessions.
type Connector struct{}

// NewConnector creates a MySQL connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Kind implements engine.Connector.
func (c *Connector) Kind() models.EngineKind {
	return models.EngineMySQL
}

// Open implements engine.Connector.
func (c *Connector) Open(ctx context.Context, profile engine.Profile) (engine.Session, error) {
	sqlSession, err := engine.OpenSQL(ctx, models.EngineMySQL, "mysql", BuildDSN(profile))
	if err != nil {
		return nil, err
	}
	return &session{SQLSession: sqlSession}, nil
}

// BuildDSN renders the go-sql-driver DSN for a profile. Queries are sent with
// the text protocol since caller text is never bound.
func BuildDSN(profile engine.Profile) string {
	cfg := driver.NewConfig()
	cfg.User = profile.User
	cfg.Passwd = profile.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(profile.Host, strconv.Itoa(profile.PortOr(DefaultPort)))
	cfg.DBName = profile.Database
	cfg.ParseTime = true
	cfg.Timeout = profile.ConnectTimeout
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

type session struct {
	*engine.SQLSession
}

func (s *session) Structure(ctx context.Context) (*models.SchemaModel, error) {
	return Structure(ctx, s)
}

func (s *session) TableDetails(ctx context.Context, schema, table string) (*models.TableDetail, error) {
	return TableDetails(ctx, s, schema, table)
}
