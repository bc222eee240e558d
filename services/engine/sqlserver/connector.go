// Package sqlserver implements the SQL Server connector over go-mssqldb. Every
// session owns its own client, nothing is shared between requests.
package sqlserver

import (
	"context"
	"net"
	"net/url"
	"strconv"

	_ "github.com/microsoft/go-mssqldb"

	"dbgatewayapi/models"
	"dbgatewayapi/services/engine"
)

// DefaultPort is used when a profile does not set one.
const DefaultPort = 1433

// Connector opens transient SQL Server sessions.
type Connector struct{}

// NewConnector creates a SQL Server connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Kind implements engine.Connector.
func (c *Connector) Kind() models.EngineKind {
	return models.EngineSQLServer
}

// Open implements engine.Connector.
func (c *Connector) Open(ctx context.Context, profile engine.Profile) (engine.Session, error) {
	sqlSession, err := engine.OpenSQL(ctx, models.EngineSQLServer, "sqlserver", BuildDSN(profile))
	if err != nil {
		return nil, err
	}
	return &session{SQLSession: sqlSession}, nil
}

// BuildDSN renders a sqlserver:// URL. Query and login deadlines come from the
// context, only the dial is bounded here.
func BuildDSN(profile engine.Profile) string {
	q := url.Values{}
	if profile.Database != "" {
		q.Set("database", profile.Database)
	}
	if profile.ConnectTimeout > 0 {
		seconds := int(profile.ConnectTimeout.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		q.Set("dial timeout", strconv.Itoa(seconds))
	}
	q.Set("app name", "dbgatewayapi")
	q.Set("TrustServerCertificate", "true")

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(profile.User, profile.Password),
		Host:     net.JoinHostPort(profile.Host, strconv.Itoa(profile.PortOr(DefaultPort))),
		RawQuery: q.Encode(),
	}
	return u.String()
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
