package activities

import (
	"context"
	"errors"
	"fmt"

	"Mergington-Activities/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Activities"

// activityDocument ชื่อกิจกรรมเป็น _id, position เก็บลำดับเดิมของกิจกรรม
type activityDocument struct {
	Name            string `bson:"_id"`
	Position        int    `bson:"position"`
	models.Activity `bson:",inline"`
}

// MongoStore keeps one document per activity.
type MongoStore struct {
	collection *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// NewMongoStoreFromClient uses the Activities collection of dbName.
func NewMongoStoreFromClient(client *mongo.Client, dbName string) *MongoStore {
	return NewMongoStore(client.Database(dbName).Collection(CollectionName))
}

func (s *MongoStore) List(ctx context.Context) (*models.Activities, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	activities := models.NewActivities()
	for _, doc := range docs {
		activities.Set(doc.Name, doc.Activity)
	}
	return activities, nil
}

// AddParticipant pushes email only while the roster has room and does not hold it yet.
func (s *MongoStore) AddParticipant(ctx context.Context, name, email string) error {
	filter := bson.M{
		"_id":          name,
		"participants": bson.M{"$ne": email},
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": bson.M{"$ifNull": bson.A{"$participants", bson.A{}}}}, "$max_participants"},
		},
	}
	res, err := s.collection.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"participants": email}})
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// ไม่ match: หาสาเหตุจากเอกสารปัจจุบัน
	activity, err := s.find(ctx, name)
	if err != nil {
		return err
	}
	if activity.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	return ErrActivityFull
}

func (s *MongoStore) RemoveParticipant(ctx context.Context, name, email string) error {
	filter := bson.M{"_id": name, "participants": email}
	res, err := s.collection.UpdateOne(ctx, filter, bson.M{"$pull": bson.M{"participants": email}})
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	if _, err := s.find(ctx, name); err != nil {
		return err
	}
	return ErrNotSignedUp
}

func (s *MongoStore) Seed(ctx context.Context, activities *models.Activities) error {
	for i, name := range activities.Names() {
		activity, _ := activities.Get(name)
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		_, err := s.collection.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{
				"position":         i,
				"description":      activity.Description,
				"schedule":         activity.Schedule,
				"max_participants": activity.MaxParticipants,
				"participants":     activity.Participants,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed %q: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) find(ctx context.Context, name string) (models.Activity, error) {
	var doc activityDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Activity{}, ErrActivityNotFound
	}
	if err != nil {
		return models.Activity{}, fmt.Errorf("find activity %q: %w", name, err)
	}
	return doc.Activity, nil
}
