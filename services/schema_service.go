package services

import (
	"context"

	"dbgatewayapi/models"
	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/repository"
	"dbgatewayapi/services/engine"
)

// SchemaService reads catalog metadata for saved connection profiles.
type SchemaService interface {
	GetStructure(ctx context.Context, connectionID uint) (*models.SchemaModel, error)
	GetTableDetails(ctx context.Context, connectionID uint, dbType, schema, table string) (*models.TableDetail, error)
}

type schemaService struct {
	resolver
}

// NewSchemaService creates a schema introspection service.
func NewSchemaService(profiles repository.ConnectionRepository, registry *engine.Registry, timeouts Timeouts) SchemaService {
	return &schemaService{resolver: newResolver(profiles, registry, timeouts)}
}

// GetStructure lists schemas and their objects. The engine comes from the
// stored profile.
func (s *schemaService) GetStructure(ctx context.Context, connectionID uint) (*models.SchemaModel, error) {
	t, err := s.resolve(connectionID, "")
	if err != nil {
		return nil, err
	}

	var model *models.SchemaModel
	err = s.run(ctx, t, func(ctx context.Context, session engine.Session) error {
		var serr error
		model, serr = session.Structure(ctx)
		return serr
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Read structure of connection id=%d: %d schemas, %d tables, %d views",
		connectionID, len(model.Schemas), len(model.Tables), len(model.Views))
	return model, nil
}

// GetTableDetails describes one table.
func (s *schemaService) GetTableDetails(ctx context.Context, connectionID uint, dbType, schema, table string) (*models.TableDetail, error) {
	t, err := s.resolve(connectionID, dbType)
	if err != nil {
		return nil, err
	}

	var detail *models.TableDetail
	err = s.run(ctx, t, func(ctx context.Context, session engine.Session) error {
		var derr error
		detail, derr = session.TableDetails(ctx, schema, table)
		return derr
	})
	if err != nil {
		return nil, err
	}

	detail.Normalize()
	logger.Debugf("Read details of %s.%s on connection id=%d: %d columns", schema, table, connectionID, len(detail.Columns))
	return detail, nil
}
