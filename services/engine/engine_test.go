package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
)

type countingSession struct {
	closes int
}

func (s *countingSession) Ping(context.Context) error { return nil }
func (s *countingSession) Query(context.Context, string) ([]map[string]any, error) {
	return nil, nil
}
func (s *countingSession) Exec(context.Context, string) error { return nil }
func (s *countingSession) Structure(context.Context) (*models.SchemaModel, error) {
	return models.NewSchemaModel(), nil
}
func (s *countingSession) TableDetails(_ context.Context, schema, table string) (*models.TableDetail, error) {
	return models.NewTableDetail(schema, table), nil
}
func (s *countingSession) Close() error {
	s.closes++
	return nil
}

type countingConnector struct {
	kind     models.EngineKind
	opens    int
	openErr  error
	session  *countingSession
	deadline bool
}

func (c *countingConnector) Kind() models.EngineKind { return c.kind }

func (c *countingConnector) Open(ctx context.Context, _ Profile) (Session, error) {
	c.opens++
	_, c.deadline = ctx.Deadline()
	if c.openErr != nil {
		return nil, c.openErr
	}
	c.session = &countingSession{}
	return c.session, nil
}

func TestRegistry_Resolve(t *testing.T) {
	mysqlConn := &countingConnector{kind: models.EngineMySQL}
	pgConn := &countingConnector{kind: models.EnginePostgres}
	reg := NewRegistry(mysqlConn, pgConn)

	got, err := reg.Resolve("PGSQL")
	require.NoError(t, err)
	assert.Same(t, pgConn, got)

	_, err = reg.Resolve("oracle")
	require.Error(t, err)
	assert.True(t, dberror.Is(err, dberror.UnsupportedEngine))

	// Known to the parser but not registered.
	_, err = reg.Resolve("mongodb")
	assert.True(t, dberror.Is(err, dberror.UnsupportedEngine))

	assert.Equal(t, 0, mysqlConn.opens+pgConn.opens)
	assert.Equal(t, []models.EngineKind{models.EngineMySQL, models.EnginePostgres}, reg.Kinds())
}

func TestWithSession_ClosesOnSuccess(t *testing.T) {
	conn := &countingConnector{kind: models.EngineMySQL}

	err := WithSession(context.Background(), conn, Profile{ConnectTimeout: time.Second}, func(Session) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, conn.opens)
	assert.Equal(t, 1, conn.session.closes)
	assert.True(t, conn.deadline, "open must run under a deadline")
}

func TestWithSession_ClosesOnError(t *testing.T) {
	conn := &countingConnector{kind: models.EngineMySQL}
	boom := errors.New("boom")

	err := WithSession(context.Background(), conn, Profile{}, func(Session) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, conn.session.closes)
}

func TestWithSession_ClosesOnPanic(t *testing.T) {
	conn := &countingConnector{kind: models.EngineMySQL}

	assert.Panics(t, func() {
		_ = WithSession(context.Background(), conn, Profile{}, func(Session) error {
			panic("driver bug")
		})
	})
	assert.Equal(t, 1, conn.session.closes)
}

func TestWithSession_OpenFailureIsConnectionFailure(t *testing.T) {
	conn := &countingConnector{kind: models.EngineSQLServer, openErr: errors.New("dial tcp 10.0.0.1:1433: i/o timeout")}
	called := false

	err := WithSession(context.Background(), conn, Profile{}, func(Session) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.True(t, dberror.Is(err, dberror.ConnectionFailure))
	assert.Nil(t, conn.session)
}

func TestCollectRows_NormalizesBytes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT id, name FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), []byte("first")).
			AddRow(int64(2), nil))

	rows, err := db.Query("SELECT id, name FROM orders")
	require.NoError(t, err)

	results, err := CollectRows(rows)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0]["id"])
	assert.Equal(t, "first", results[0]["name"])
	assert.Nil(t, results[1]["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectRows_EmptyResultIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := db.Query("SELECT id FROM orders WHERE 1 = 0")
	require.NoError(t, err)

	results, err := CollectRows(rows)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSQLSession_QueryAndCloseOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))
	mock.ExpectExec("ALTER TABLE users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	session := NewSQLSession(models.EngineMySQL, db)
	rows, err := session.Query(context.Background(), "SELECT 1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, session.Exec(context.Background(), "ALTER TABLE users COMMENT = 'x'"))

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRowAccessors(t *testing.T) {
	row := map[string]any{
		"name":     []byte("users"),
		"nullable": "YES",
		"pk":       int64(1),
		"flag":     true,
		"length":   "255",
		"nothing":  nil,
		"float":    float64(12),
	}

	assert.Equal(t, "users", String(row, "name"))
	assert.Equal(t, "", String(row, "nothing"))
	assert.Nil(t, StringPtr(row, "nothing"))
	assert.Equal(t, "users", *StringPtr(row, "name"))
	assert.True(t, Bool(row, "nullable"))
	assert.True(t, Bool(row, "pk"))
	assert.True(t, Bool(row, "flag"))
	assert.False(t, Bool(row, "nothing"))
	assert.Equal(t, int64(255), *Int64Ptr(row, "length"))
	assert.Equal(t, int64(12), *Int64Ptr(row, "float"))
	assert.Nil(t, Int64Ptr(row, "nothing"))
	assert.Nil(t, Int64Ptr(row, "name"))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b "))
}
