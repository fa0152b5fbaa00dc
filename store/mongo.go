package store

import (
	"context"
	"errors"
	"fmt"

	"api-technician/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type mongoTechnician struct {
	ID               string `bson:"_id"`
	model.Technician `bson:",inline"`
}

// MongoStore เก็บข้อมูลช่างไว้ใน MongoDB โดยใช้ uuid เป็น _id
type MongoStore struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoStore(db *mongo.Database, collection string, logger *zap.Logger) *MongoStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStore{coll: db.Collection(collection), logger: logger}
}

func (s *MongoStore) List(ctx context.Context) ([]model.Technician, error) {
	ctx, span := tracer.Start(ctx, "mongo.List")
	defer span.End()

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	var docs []mongoTechnician
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("Failed to decode technicians", zap.Error(err))
		return nil, fmt.Errorf("decode technicians: %w", err)
	}

	technicians := make([]model.Technician, 0, len(docs))
	for _, doc := range docs {
		t := doc.Technician
		t.ID = doc.ID
		technicians = append(technicians, t)
	}
	return technicians, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (model.Technician, error) {
	ctx, span := tracer.Start(ctx, "mongo.Get")
	defer span.End()
	span.SetAttributes(attribute.String("technician.id", id))

	var doc mongoTechnician
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Technician{}, ErrNotFound
		}
		return model.Technician{}, fmt.Errorf("get technician %s: %w", id, err)
	}
	t := doc.Technician
	t.ID = doc.ID
	return t, nil
}

func (s *MongoStore) Create(ctx context.Context, technician model.Technician) (string, error) {
	ctx, span := tracer.Start(ctx, "mongo.Create")
	defer span.End()

	doc := mongoTechnician{ID: uuid.New().String(), Technician: technician}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("create technician: %w", err)
	}
	s.logger.Info("Technician created", zap.String("id", doc.ID), zap.Int64("technician_id", technician.TechnicianID))
	return doc.ID, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, technician model.Technician) error {
	ctx, span := tracer.Start(ctx, "mongo.Update")
	defer span.End()
	span.SetAttributes(attribute.String("technician.id", id))

	set := bson.M{}
	for _, f := range editableFields(technician) {
		set[f.path] = f.value
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update technician %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "mongo.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("technician.id", id))

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete technician %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.logger.Info("Technician deleted", zap.String("id", id))
	return nil
}
