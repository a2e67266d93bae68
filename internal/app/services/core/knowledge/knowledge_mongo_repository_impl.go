package knowledge

import (
	"context"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/app/models"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type KnowledgeMongoRepository struct {
	Collection *mongo.Collection
}

func NewKnowledgeMongoRepository(db *mongo.Client, dbName string) contracts.KnowledgeRepository {
	return &KnowledgeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionKnowledge),
	}
}

func (r *KnowledgeMongoRepository) AddEntry(ctx context.Context, entry *models.KnowledgeBaseEntry) (string, error) {
	result, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Search is recall-oriented: ageGroup must match exactly, gender matches
// exactly or against the stored wildcard "other", and any single symptom
// overlap qualifies. Results come back confidence-descending.
func (r *KnowledgeMongoRepository) Search(ctx context.Context, symptoms []string, ageGroup, gender string) ([]models.KnowledgeBaseEntry, error) {
	filter := bson.M{
		"ageGroup": ageGroup,
		"$or": []bson.M{
			{"gender": gender},
			{"gender": constvars.GenderOther},
		},
		"symptoms": bson.M{"$in": symptoms},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "confidence", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.KnowledgeBaseEntry
	for cursor.Next(ctx) {
		var entry models.KnowledgeBaseEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}
