package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document es un documento libre del store, indexado por nombre de campo.
type Document = map[string]any

// DocumentStore define las operaciones genéricas sobre colecciones.
type DocumentStore interface {
	Create(ctx context.Context, collection string, data Document) (Document, error)
	List(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error)
}

// mongoCollection cubre las operaciones de *mongo.Collection que usa el
// gateway; permite sustituir la colección en tests.
type mongoCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// MongoStore implementa DocumentStore sobre una base de Mongo inyectada.
type MongoStore struct {
	collection func(name string) mongoCollection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: func(name string) mongoCollection { return db.Collection(name) },
	}
}

// Create inserta data con created_at/updated_at estampados y relee el
// documento insertado para devolver la representación canónica del store.
func (s *MongoStore) Create(ctx context.Context, collection string, data Document) (Document, error) {
	now := time.Now().UTC()

	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	doc["created_at"] = now
	doc["updated_at"] = now

	coll := s.collection(collection)
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, &WriteError{Collection: collection, Err: err}
	}

	var created bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, &ReadError{Collection: collection, Err: err}
	}

	return remapID(created), nil
}

// List devuelve los documentos que cumplen filter (vacío = todos),
// ordenados por created_at descendente y acotados a limit. La secuencia
// se materializa completa antes de retornar; no se expone cursor.
func (s *MongoStore) List(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, &ReadError{Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, &ReadError{Collection: collection, Err: err}
	}

	docs := make([]Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, remapID(d))
	}
	return docs, nil
}

// remapID renombra el identificador interno del store al campo público "id"
// como string. El tipo interno nunca cruza esta frontera.
func remapID(doc bson.M) Document {
	out := Document{}
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	if id, ok := doc["_id"]; ok {
		switch v := id.(type) {
		case primitive.ObjectID:
			out["id"] = v.Hex()
		case string:
			out["id"] = v
		default:
			out["id"] = fmt.Sprint(v)
		}
	}
	return out
}
