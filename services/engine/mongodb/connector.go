// Package mongodb implements the MongoDB connector. Query text is a MongoDB
// Extended JSON command document run against the profile database.
package mongodb

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

// DefaultPort is used when a profile does not set one.
const DefaultPort = 27017

const disconnectTimeout = 5 * time.Second

// Connector opens transient MongoDB sessions.
type Connector struct{}

// NewConnector creates a MongoDB connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Kind implements engine.Connector.
func (c *Connector) Kind() models.EngineKind {
	return models.EngineMongoDB
}

// Open implements engine.Connector.
func (c *Connector) Open(ctx context.Context, profile engine.Profile) (engine.Session, error) {
	opts := options.Client().ApplyURI(BuildURI(profile))
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, dberror.ConnectionFailed(models.EngineMongoDB, err)
	}

	s := &session{client: client, db: client.Database(profile.Database)}
	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, dberror.ConnectionFailed(models.EngineMongoDB, err)
	}
	return s, nil
}

// BuildURI renders a mongodb:// URI. Credentials are checked against the admin
// database.
func BuildURI(profile engine.Profile) string {
	u := &url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(profile.Host, strconv.Itoa(profile.PortOr(DefaultPort))),
		Path:   "/" + profile.Database,
	}

	q := url.Values{}
	if profile.User != "" {
		u.User = url.UserPassword(profile.User, profile.Password)
		q.Set("authSource", "admin")
	}
	if profile.ConnectTimeout > 0 {
		ms := strconv.FormatInt(profile.ConnectTimeout.Milliseconds(), 10)
		q.Set("connectTimeoutMS", ms)
		q.Set("serverSelectionTimeoutMS", ms)
	}
	q.Set("appName", "dbgatewayapi")
	u.RawQuery = q.Encode()
	return u.String()
}

type session struct {
	client    *mongo.Client
	db        *mongo.Database
	closeOnce sync.Once
	closeErr  error
}

func (s *session) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *session) Query(ctx context.Context, query string) ([]map[string]any, error) {
	return runCommand(ctx, s.db, query)
}

func (s *session) Exec(ctx context.Context, statement string) error {
	return execCommand(ctx, s.db, statement)
}

func (s *session) Structure(ctx context.Context) (*models.SchemaModel, error) {
	return structure(ctx, s.db)
}

func (s *session) TableDetails(ctx context.Context, schema, table string) (*models.TableDetail, error) {
	db := s.db
	if schema != "" && schema != db.Name() {
		db = s.client.Database(schema)
	}
	return collectionDetails(ctx, db, table)
}

func (s *session) Close() error {
	s.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		s.closeErr = s.client.Disconnect(ctx)
	})
	return s.closeErr
}
