package services

import (
	"context"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/repository"
	"dbgatewayapi/services/engine"
)

// QueryService runs ad hoc queries against saved connection profiles.
type QueryService interface {
	Execute(ctx context.Context, connectionID uint, query, dbType string) ([]map[string]any, error)
}

type queryService struct {
	resolver
}

// NewQueryService creates a query service.
func NewQueryService(profiles repository.ConnectionRepository, registry *engine.Registry, timeouts Timeouts) QueryService {
	return &queryService{resolver: newResolver(profiles, registry, timeouts)}
}

// Execute runs query verbatim and returns every row. Errors are
// *dberror.ExecutionError.
func (s *queryService) Execute(ctx context.Context, connectionID uint, query, dbType string) ([]map[string]any, error) {
	t, err := s.resolve(connectionID, dbType)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Executing query on connection id=%d (%s %s:%d/%s)",
		connectionID, t.kind, t.profile.Host, t.profile.Port, t.profile.Database)

	var rows []map[string]any
	err = s.run(ctx, t, func(ctx context.Context, session engine.Session) error {
		var qerr error
		rows, qerr = session.Query(ctx, query)
		return qerr
	})
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []map[string]any{}
	}
	logger.Infof("Query on connection id=%d returned %d rows", connectionID, len(rows))
	return rows, nil
}
