// Package memserver runs an in-process MySQL-compatible server on a free local
// port. It backs connector and handler tests that need a real wire protocol
// peer without an external database.
package memserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"

	"dbgatewayapi/pkg/logger"
)

// User is the account accepted by the server. It has no password.
const User = "root"

// Server is a running in-memory MySQL server.
type Server struct {
	Host     string
	Port     int
	Database string

	server   *server.Server
	engine   *sqle.Engine
	provider *memory.DbProvider
}

// Start creates database, applies the seed statements to it and starts serving.
// Returns once the port accepts connections or after a 5 second timeout.
func Start(ctx context.Context, database string, seed ...string) (*Server, error) {
	port, err := FreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	db := memory.NewDatabase(database)
	provider := memory.NewDBProvider(db)
	engine := sqle.NewDefault(provider)

	s := &Server{
		Host:     "127.0.0.1",
		Port:     port,
		Database: database,
		engine:   engine,
		provider: provider,
	}
	for _, stmt := range seed {
		if _, err := s.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", database, err)
		}
	}

	config := server.Config{
		Protocol: "tcp",
		Address:  s.Addr(),
	}
	srv, err := server.NewServer(config, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	s.server = srv

	go func() {
		if err := srv.Start(); err != nil {
			logger.Debugf("In-memory MySQL server on %s stopped: %v", s.Addr(), err)
		}
	}()

	readyCtx, readyCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readyCancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-readyCtx.Done():
			_ = srv.Close()
			return nil, fmt.Errorf("server on %s failed to start: %w", s.Addr(), readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", s.Addr(), 100*time.Millisecond)
			if err == nil {
				_ = conn.Close()
				logger.Debugf("Started in-memory MySQL server on %s with database %s", s.Addr(), database)
				return s, nil
			}
		}
	}
}

// Addr is host:port of the listener.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, fmt.Sprint(s.Port))
}

// Exec runs a statement directly against the engine in the server database and
// drains its result, returning the number of rows produced.
func (s *Server) Exec(ctx context.Context, statement string) (int, error) {
	session := memory.NewSession(sql.NewBaseSession(), s.provider)
	sqlCtx := sql.NewContext(ctx, sql.WithSession(session))
	sqlCtx.SetCurrentDatabase(s.Database)

	_, rowIter, _, err := s.engine.Query(sqlCtx, statement)
	if err != nil {
		return 0, fmt.Errorf("statement failed: %w", err)
	}
	defer rowIter.Close(sqlCtx)

	n := 0
	for {
		_, err := rowIter.Next(sqlCtx)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("failed to fetch row: %w", err)
		}
		n++
	}
}

// Close stops the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Close(); err != nil {
		return fmt.Errorf("failed to close server: %w", err)
	}
	return nil
}

// FreePort finds an available TCP port.
func FreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}
