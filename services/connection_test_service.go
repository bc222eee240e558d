package services

import (
	"context"
	"fmt"
	"time"

	"dbgatewayapi/models"
	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/repository"
	"dbgatewayapi/services/engine"
)

// ConnectionTestResult is the outcome of opening and pinging a profile.
type ConnectionTestResult struct {
	ConnectionID uint              `json:"connection_id"`
	Engine       models.EngineKind `json:"engine"`
	Status       string            `json:"status"`
	Message      string            `json:"test_result"`
	Latency      string            `json:"latency"`
}

// ConnectionTestService interface defines connection testing operations
type ConnectionTestService interface {
	TestConnection(ctx context.Context, id uint) (*ConnectionTestResult, error)
}

type connectionTestService struct {
	resolver
}

// NewConnectionTestService creates a new connection test service instance
func NewConnectionTestService(profiles repository.ConnectionRepository, registry *engine.Registry, timeouts Timeouts) ConnectionTestService {
	return &connectionTestService{resolver: newResolver(profiles, registry, timeouts)}
}

// TestConnection opens the profile, pings it and stores enabled or disabled as
// the profile status. An unreachable database is a result, not an error; errors
// are reserved for lookup and status update failures.
func (s *connectionTestService) TestConnection(ctx context.Context, id uint) (*ConnectionTestResult, error) {
	if id == 0 {
		return nil, fmt.Errorf("invalid connection ID: must be greater than 0")
	}

	t, err := s.resolve(id, "")
	if err != nil {
		return nil, err
	}

	logger.Infof("Testing connection: id=%d, type=%s, host=%s:%d, database=%s",
		id, t.kind, t.profile.Host, t.profile.Port, t.profile.Database)

	start := time.Now()
	err = s.run(ctx, t, func(ctx context.Context, session engine.Session) error {
		return session.Ping(ctx)
	})

	result := &ConnectionTestResult{
		ConnectionID: id,
		Engine:       t.kind,
		Latency:      time.Since(start).Round(time.Millisecond).String(),
	}
	if err != nil {
		result.Status = models.StatusDisabled
		result.Message = fmt.Sprintf("Connection failed: %v", err)
		logger.Warnf("Connection test failed for id=%d: %v", id, err)
	} else {
		result.Status = models.StatusEnabled
		result.Message = fmt.Sprintf("Connected to %s at %s successfully", t.kind, t.profile.Host)
		logger.Infof("Connection test successful for id=%d", id)
	}

	if err := s.profiles.UpdateStatus(nil, id, result.Status); err != nil {
		logger.Errorf("Failed to update connection status for id=%d: %v", id, err)
		return nil, fmt.Errorf("failed to update connection status: %w", err)
	}

	logger.Infof("Updated connection status for id=%d to %s", id, result.Status)
	return result, nil
}
