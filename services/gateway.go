package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dbgatewayapi/models"
	"dbgatewayapi/repository"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

// Default operation bounds, overridden from config.
const (
	DefaultConnectTimeout = engine.DefaultConnectTimeout
	DefaultQueryTimeout   = 60 * time.Second
)

// Timeouts bounds connection setup and each gateway operation.
type Timeouts struct {
	Connect time.Duration
	Query   time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Connect <= 0 {
		t.Connect = DefaultConnectTimeout
	}
	if t.Query <= 0 {
		t.Query = DefaultQueryTimeout
	}
	return t
}

// target is a resolved profile ready for a connector.
type target struct {
	record    *models.ConnectionProfile
	kind      models.EngineKind
	connector engine.Connector
	profile   engine.Profile
}

// resolver turns a connection id and an optional engine hint into a connector
// and its parameters. No network I/O happens here.
type resolver struct {
	profiles repository.ConnectionRepository
	registry *engine.Registry
	timeouts Timeouts
}

func newResolver(profiles repository.ConnectionRepository, registry *engine.Registry, timeouts Timeouts) resolver {
	return resolver{profiles: profiles, registry: registry, timeouts: timeouts.withDefaults()}
}

// resolve loads the profile, then checks the hint against the stored kind. The
// stored kind decides the connector; a hint naming another engine is rejected.
func (r resolver) resolve(connectionID uint, hint string) (*target, error) {
	record, err := r.profiles.GetByID(nil, connectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dberror.Newf(dberror.ProfileNotFound, "connection profile %d not found", connectionID)
		}
		return nil, fmt.Errorf("failed to load connection profile %d: %w", connectionID, err)
	}

	kind, ok := record.EngineKind()
	if !ok {
		return nil, dberror.Newf(dberror.UnsupportedEngine, "connection profile %d has unsupported database type %q", connectionID, record.DBType)
	}

	if hint != "" {
		hinted, ok := models.ParseEngineKind(hint)
		if !ok {
			return nil, dberror.Newf(dberror.UnsupportedEngine, "database type %q is not supported", hint)
		}
		if hinted != kind {
			return nil, dberror.Newf(dberror.EngineMismatch, "database type %q does not match connection profile %d (%s)", hint, connectionID, kind)
		}
	}

	connector, err := r.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	return &target{
		record:    record,
		kind:      kind,
		connector: connector,
		profile:   engine.ProfileFromModel(record, kind, r.timeouts.Connect),
	}, nil
}

// run executes fn in a session for t under the query timeout and translates any
// failure. The session is closed before run returns.
func (r resolver) run(ctx context.Context, t *target, fn func(ctx context.Context, s engine.Session) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeouts.Query)
	defer cancel()

	err := engine.WithSession(ctx, t.connector, t.profile, func(s engine.Session) error {
		return fn(ctx, s)
	})
	if err != nil {
		return dberror.Translate(t.kind, err)
	}
	return nil
}
