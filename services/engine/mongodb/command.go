package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
)

// commandRunner is the part of *mongo.Database that runs commands.
type commandRunner interface {
	RunCommand(ctx context.Context, runCommand any, opts ...options.Lister[options.RunCmdOptions]) *mongo.SingleResult
	RunCommandCursor(ctx context.Context, runCommand any, opts ...options.Lister[options.RunCmdOptions]) (*mongo.Cursor, error)
}

// Commands whose reply is a cursor. Every batch is drained into the result.
var cursorCommands = map[string]bool{
	"find":            true,
	"aggregate":       true,
	"listcollections": true,
	"listindexes":     true,
}

// parseCommand decodes an Extended JSON command document. Key order is kept
// because the server reads the command name from the first field.
func parseCommand(text string) (bson.D, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, dberror.New(dberror.SyntaxOrExecutionError, "empty command document")
	}

	var cmd bson.D
	if err := bson.UnmarshalExtJSON([]byte(text), false, &cmd); err != nil {
		return nil, dberror.Wrap(dberror.SyntaxOrExecutionError, models.EngineMongoDB,
			"query must be a MongoDB command document such as {\"find\": \"orders\"}", err)
	}
	if len(cmd) == 0 {
		return nil, dberror.New(dberror.SyntaxOrExecutionError, "command document has no command name")
	}
	return cmd, nil
}

func isCursorCommand(cmd bson.D) bool {
	return len(cmd) > 0 && cursorCommands[strings.ToLower(cmd[0].Key)]
}

func runCommand(ctx context.Context, db commandRunner, text string) ([]map[string]any, error) {
	cmd, err := parseCommand(text)
	if err != nil {
		return nil, err
	}

	if isCursorCommand(cmd) {
		cursor, err := db.RunCommandCursor(ctx, cmd)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		var docs []bson.M
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, fmt.Errorf("failed to read cursor: %w", err)
		}
		results := make([]map[string]any, 0, len(docs))
		for _, doc := range docs {
			results = append(results, normalizeDocument(doc))
		}
		return results, nil
	}

	var reply bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&reply); err != nil {
		return nil, err
	}
	return []map[string]any{normalizeDocument(reply)}, nil
}

// execCommand runs a command for its side effect and discards the reply.
func execCommand(ctx context.Context, db commandRunner, text string) error {
	cmd, err := parseCommand(text)
	if err != nil {
		return err
	}
	return db.RunCommand(ctx, cmd).Err()
}

// normalizeDocument converts BSON-specific values into types that marshal to
// plain JSON: ObjectIDs become hex strings and dates become time.Time.
func normalizeDocument(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = normalizeBSON(v)
	}
	return out
}

func normalizeBSON(v any) any {
	switch val := v.(type) {
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC()
	case bson.Decimal128:
		return val.String()
	case bson.Binary:
		return val.Data
	case bson.M:
		return normalizeDocument(val)
	case bson.D:
		m := make(map[string]any, len(val))
		for _, elem := range val {
			m[elem.Key] = normalizeBSON(elem.Value)
		}
		return m
	case bson.A:
		arr := make([]any, len(val))
		for i, item := range val {
			arr[i] = normalizeBSON(item)
		}
		return arr
	default:
		return v
	}
}
