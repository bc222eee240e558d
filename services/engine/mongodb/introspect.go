package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
)

type collectionInfo struct {
	Name string `bson:"name"`
	Type string `bson:"type"`
}

// The database is the only schema. Collections map to tables and views to
// views; MongoDB has no functions, triggers or sequences to list.
func structure(ctx context.Context, db *mongo.Database) (*models.SchemaModel, error) {
	cursor, err := db.ListCollections(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	var infos []collectionInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("failed to read collections: %w", err)
	}
	return structureFromCollections(db.Name(), infos), nil
}

func structureFromCollections(database string, infos []collectionInfo) *models.SchemaModel {
	model := models.NewSchemaModel()
	model.AddSchema(database)
	for _, info := range infos {
		if strings.HasPrefix(info.Name, "system.") {
			continue
		}
		if info.Type == "view" {
			model.AddView(database, info.Name)
			continue
		}
		model.AddTable(database, info.Name)
	}
	return model
}

func collectionDetails(ctx context.Context, db *mongo.Database, name string) (*models.TableDetail, error) {
	cursor, err := db.ListCollections(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return nil, fmt.Errorf("failed to look up collection %s: %w", name, err)
	}
	var infos []collectionInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if len(infos) == 0 {
		return nil, dberror.TableNotFound(models.EngineMongoDB, db.Name(), name)
	}

	detail := models.NewTableDetail(db.Name(), name)
	coll := db.Collection(name)

	// Fields are sampled from one document, collections have no declared columns.
	sample, err := coll.FindOne(ctx, bson.D{}).Raw()
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
	case err != nil:
		return nil, fmt.Errorf("failed to sample collection %s: %w", name, err)
	default:
		detail.Columns = columnsFromSample(sample)
	}

	if infos[0].Type != "view" {
		indexCursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list indexes for %s: %w", name, err)
		}
		var specs []bson.D
		if err := indexCursor.All(ctx, &specs); err != nil {
			return nil, fmt.Errorf("failed to read indexes for %s: %w", name, err)
		}
		for _, spec := range specs {
			detail.Indexes = append(detail.Indexes, indexFromSpec(spec))
		}
	}

	detail.Normalize()
	return detail, nil
}

func columnsFromSample(doc bson.Raw) []models.ColumnDetail {
	elems, err := doc.Elements()
	if err != nil {
		return []models.ColumnDetail{}
	}
	columns := make([]models.ColumnDetail, 0, len(elems))
	for _, elem := range elems {
		value := elem.Value()
		columns = append(columns, models.ColumnDetail{
			Name:         elem.Key(),
			DataType:     value.Type.String(),
			Nullable:     elem.Key() != "_id",
			IsPrimaryKey: elem.Key() == "_id",
		})
	}
	return columns
}

func indexFromSpec(spec bson.D) models.IndexDetail {
	index := models.IndexDetail{Columns: []string{}}
	for _, elem := range spec {
		switch elem.Key {
		case "name":
			index.Name, _ = elem.Value.(string)
		case "unique":
			index.IsUnique, _ = elem.Value.(bool)
		case "key":
			if keys, ok := elem.Value.(bson.D); ok {
				for _, k := range keys {
					index.Columns = append(index.Columns, k.Key)
				}
				if def, err := bson.MarshalExtJSON(keys, false, false); err == nil {
					index.Definition = string(def)
				}
			}
		}
	}
	if index.Name == "_id_" {
		index.IsPrimary = true
		index.IsUnique = true
	}
	return index
}
