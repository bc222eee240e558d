package mongodb

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
	"dbgatewayapi/services/engine"
)

func TestBuildURI(t *testing.T) {
	uri := BuildURI(engine.Profile{
		Host:           "mongo.internal",
		User:           "reader",
		Password:       "pa:ss",
		Database:       "catalog",
		ConnectTimeout: 3 * time.Second,
	})

	u, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "mongo.internal:27017", u.Host)
	assert.Equal(t, "/catalog", u.Path)
	pass, _ := u.User.Password()
	assert.Equal(t, "pa:ss", pass)
	assert.Equal(t, "admin", u.Query().Get("authSource"))
	assert.Equal(t, "3000", u.Query().Get("serverSelectionTimeoutMS"))
}

func TestBuildURI_Anonymous(t *testing.T) {
	uri := BuildURI(engine.Profile{Host: "localhost", Port: 27018, Database: "test"})
	assert.NotContains(t, uri, "@")
	assert.NotContains(t, uri, "authSource")
	assert.Contains(t, uri, "localhost:27018/test")
}

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand(`{"find": "orders", "filter": {"status": "paid"}, "limit": 5}`)
	require.NoError(t, err)
	assert.Equal(t, "find", cmd[0].Key)
	assert.Equal(t, "orders", cmd[0].Value)
	assert.True(t, isCursorCommand(cmd))

	cmd, err = parseCommand(`{"count": "orders"}`)
	require.NoError(t, err)
	assert.False(t, isCursorCommand(cmd))
}

func TestParseCommand_RejectsNonJSON(t *testing.T) {
	for _, text := range []string{"SELECT * FROM orders", "", "   ", "{}"} {
		_, err := parseCommand(text)
		require.Error(t, err, text)
		assert.True(t, dberror.Is(err, dberror.SyntaxOrExecutionError), text)
	}
}

// fakeRunner answers commands from preloaded driver cursors and replies.
type fakeRunner struct {
	docs     []any
	reply    any
	err      error
	commands []bson.D
}

func (f *fakeRunner) RunCommand(_ context.Context, cmd any, _ ...options.Lister[options.RunCmdOptions]) *mongo.SingleResult {
	f.commands = append(f.commands, cmd.(bson.D))
	reply := f.reply
	if reply == nil {
		reply = bson.D{{Key: "ok", Value: 1.0}}
	}
	return mongo.NewSingleResultFromDocument(reply, f.err, nil)
}

func (f *fakeRunner) RunCommandCursor(_ context.Context, cmd any, _ ...options.Lister[options.RunCmdOptions]) (*mongo.Cursor, error) {
	f.commands = append(f.commands, cmd.(bson.D))
	if f.err != nil {
		return nil, f.err
	}
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

func TestRunCommand_DrainsCursor(t *testing.T) {
	first, second := bson.NewObjectID(), bson.NewObjectID()
	runner := &fakeRunner{docs: []any{
		bson.D{{Key: "_id", Value: first}, {Key: "status", Value: "paid"}},
		bson.D{{Key: "_id", Value: second}, {Key: "status", Value: "paid"}},
	}}

	rows, err := runCommand(context.Background(), runner, `{"find": "orders", "filter": {"status": "paid"}}`)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.Hex(), rows[0]["_id"])
	assert.Equal(t, second.Hex(), rows[1]["_id"])
	assert.Equal(t, "paid", rows[1]["status"])

	require.Len(t, runner.commands, 1)
	assert.Equal(t, "find", runner.commands[0][0].Key)
}

func TestRunCommand_EmptyCursorIsEmptySlice(t *testing.T) {
	rows, err := runCommand(context.Background(), &fakeRunner{}, `{"aggregate": "orders", "pipeline": [], "cursor": {}}`)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRunCommand_SingleReply(t *testing.T) {
	runner := &fakeRunner{reply: bson.D{{Key: "n", Value: int32(3)}, {Key: "ok", Value: 1.0}}}

	rows, err := runCommand(context.Background(), runner, `{"count": "orders"}`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(3), rows[0]["n"])
	assert.Equal(t, 1.0, rows[0]["ok"])
	assert.Equal(t, "count", runner.commands[0][0].Key)
}

func TestRunCommand_DriverErrors(t *testing.T) {
	boom := errors.New("server selection timeout")

	_, err := runCommand(context.Background(), &fakeRunner{err: boom}, `{"find": "orders"}`)
	assert.ErrorIs(t, err, boom)

	_, err = runCommand(context.Background(), &fakeRunner{err: boom}, `{"count": "orders"}`)
	assert.ErrorIs(t, err, boom)
}

func TestExecCommand(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, execCommand(context.Background(), runner,
		`{"collMod": "orders", "validator": {"$jsonSchema": {"bsonType": "object"}}}`))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "collMod", runner.commands[0][0].Key)

	boom := errors.New("ns does not exist")
	assert.ErrorIs(t, execCommand(context.Background(), &fakeRunner{err: boom}, `{"drop": "ghosts"}`), boom)

	skipped := &fakeRunner{}
	err := execCommand(context.Background(), skipped, "ALTER TABLE orders ADD note TEXT")
	assert.True(t, dberror.Is(err, dberror.SyntaxOrExecutionError))
	assert.Empty(t, skipped.commands)
}

func TestNormalizeDocument(t *testing.T) {
	id := bson.NewObjectID()
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	doc := normalizeDocument(bson.M{
		"_id":     id,
		"created": bson.NewDateTimeFromTime(when),
		"items":   bson.A{bson.D{{Key: "sku", Value: "A1"}, {Key: "ref", Value: id}}},
		"meta":    bson.M{"source": "web"},
		"total":   12.5,
	})

	assert.Equal(t, id.Hex(), doc["_id"])
	assert.Equal(t, when, doc["created"])
	items := doc["items"].([]any)
	assert.Equal(t, map[string]any{"sku": "A1", "ref": id.Hex()}, items[0])
	assert.Equal(t, map[string]any{"source": "web"}, doc["meta"])
	assert.Equal(t, 12.5, doc["total"])
}

func TestStructureFromCollections(t *testing.T) {
	model := structureFromCollections("shop", []collectionInfo{
		{Name: "orders", Type: "collection"},
		{Name: "paid_orders", Type: "view"},
		{Name: "system.views", Type: "collection"},
	})

	assert.Equal(t, []models.SchemaObject{{Name: "shop", Type: models.ObjectSchema}}, model.Schemas)
	assert.Equal(t, []models.SchemaObject{{Name: "orders", Schema: "shop", Type: models.ObjectTable}}, model.Tables)
	assert.Equal(t, []models.SchemaObject{{Name: "paid_orders", Schema: "shop", Type: models.ObjectView}}, model.Views)
	assert.Empty(t, model.Functions)
	assert.NotNil(t, model.Triggers)
	assert.NotNil(t, model.Sequences)
}

func TestIndexFromSpec(t *testing.T) {
	primary := indexFromSpec(bson.D{
		{Key: "v", Value: int32(2)},
		{Key: "key", Value: bson.D{{Key: "_id", Value: int32(1)}}},
		{Key: "name", Value: "_id_"},
	})
	assert.True(t, primary.IsPrimary)
	assert.True(t, primary.IsUnique)
	assert.Equal(t, []string{"_id"}, primary.Columns)

	compound := indexFromSpec(bson.D{
		{Key: "key", Value: bson.D{{Key: "customer", Value: int32(1)}, {Key: "created", Value: int32(-1)}}},
		{Key: "name", Value: "customer_1_created_-1"},
		{Key: "unique", Value: true},
	})
	assert.False(t, compound.IsPrimary)
	assert.True(t, compound.IsUnique)
	assert.Equal(t, []string{"customer", "created"}, compound.Columns)
	assert.Contains(t, compound.Definition, `"customer"`)
}

func TestColumnsFromSample(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: bson.NewObjectID()},
		{Key: "customer", Value: "alice"},
		{Key: "total", Value: 12.5},
	})
	require.NoError(t, err)

	columns := columnsFromSample(bson.Raw(raw))
	require.Len(t, columns, 3)
	assert.True(t, columns[0].IsPrimaryKey)
	assert.False(t, columns[0].Nullable)
	assert.Equal(t, "customer", columns[1].Name)
	assert.Equal(t, "string", columns[1].DataType)
	assert.Equal(t, "double", columns[2].DataType)
}
