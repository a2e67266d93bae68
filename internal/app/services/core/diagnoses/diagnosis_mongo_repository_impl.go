package diagnoses

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

type DiagnosisMongoRepository struct {
	Collection *mongo.Collection
}

func NewDiagnosisMongoRepository(db *mongo.Client, dbName string) contracts.DiagnosisRepository {
	return &DiagnosisMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDiagnoses),
	}
}

func (r *DiagnosisMongoRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error) {
	result, err := r.Collection.InsertOne(ctx, diagnosis)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DiagnosisMongoRepository) FindByID(ctx context.Context, diagnosisID string) (*models.Diagnosis, error) {
	objectID, err := primitive.ObjectIDFromHex(diagnosisID)
	if err != nil {
		return nil, nil
	}
	var diagnosis models.Diagnosis
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&diagnosis)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &diagnosis, nil
}

func (r *DiagnosisMongoRepository) FindAll(ctx context.Context) ([]models.Diagnosis, error) {
	return r.find(ctx, bson.M{})
}

func (r *DiagnosisMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

func (r *DiagnosisMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Diagnosis, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var diagnoses []models.Diagnosis
	for cursor.Next(ctx) {
		var diagnosis models.Diagnosis
		if err := cursor.Decode(&diagnosis); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		diagnoses = append(diagnoses, diagnosis)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return diagnoses, nil
}
