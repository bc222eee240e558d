package services

import (
	"context"
	"strings"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/repository"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

// DDLService applies caller-built statements such as ALTER TABLE or COMMENT ON.
type DDLService interface {
	ApplyStatement(ctx context.Context, connectionID uint, dbType, statement string) error
}

type ddlService struct {
	resolver
}

// NewDDLService creates a DDL pass-through service.
func NewDDLService(profiles repository.ConnectionRepository, registry *engine.Registry, timeouts Timeouts) DDLService {
	return &ddlService{resolver: newResolver(profiles, registry, timeouts)}
}

// ApplyStatement runs statement verbatim. An empty dbType uses the stored kind.
func (s *ddlService) ApplyStatement(ctx context.Context, connectionID uint, dbType, statement string) error {
	t, err := s.resolve(connectionID, dbType)
	if err != nil {
		return err
	}
	if strings.TrimSpace(statement) == "" {
		return dberror.New(dberror.SyntaxOrExecutionError, "statement is empty")
	}

	err = s.run(ctx, t, func(ctx context.Context, session engine.Session) error {
		return session.Exec(ctx, statement)
	})
	if err != nil {
		return err
	}

	logger.Infof("Applied statement on connection id=%d (%s)", connectionID, t.kind)
	return nil
}
