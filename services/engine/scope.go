package engine

import (
	"context"

	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/services/dberror"
)

// WithSession opens a session, hands it to fn and closes it exactly once when fn
// returns or panics. A close failure is logged, never returned, so it cannot
// mask the outcome of fn.
func WithSession(ctx context.Context, c Connector, profile Profile, fn func(Session) error) error {
	timeout := profile.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	openCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session, err := c.Open(openCtx, profile)
	if err != nil {
		if dberror.KindOf(err) == dberror.UnknownDriverError {
			err = dberror.ConnectionFailed(c.Kind(), err)
		}
		return err
	}
	logger.Debugf("Opened %s session for profile id=%d (%s:%d)", c.Kind(), profile.ID, profile.Host, profile.Port)

	defer func() {
		if cerr := session.Close(); cerr != nil {
			logger.Warnf("Failed to close %s session for profile id=%d: %v", c.Kind(), profile.ID, cerr)
			return
		}
		logger.Debugf("Closed %s session for profile id=%d", c.Kind(), profile.ID)
	}()

	return fn(session)
}
