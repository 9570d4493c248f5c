package mongodb

import (
	"context"
	"fmt"

	"finance-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *Store) InsertSavingsGoal(ctx context.Context, goal *models.SavingsGoal) error {
	_, err := s.db.Collection(SavingsGoalCollection).InsertOne(ctx, goal)
	if err != nil {
		return fmt.Errorf("error inserting savings goal: %w", err)
	}
	return nil
}

func (s *Store) ListSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	filter := bson.M{"user_id": userID}

	cursor, err := s.db.Collection(SavingsGoalCollection).Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("error listing savings goals: %w", err)
	}

	goals := []models.SavingsGoal{}
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, fmt.Errorf("error decoding savings goals: %w", err)
	}
	return goals, nil
}

func (s *Store) FindSavingsGoalByID(ctx context.Context, id, userID string) (*models.SavingsGoal, error) {
	filter := bson.M{"id": id, "user_id": userID}

	var goal models.SavingsGoal
	err := s.db.Collection(SavingsGoalCollection).FindOne(ctx, filter).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding savings goal by id: %w", err)
	}
	return &goal, nil
}

// UpdateSavingsGoalAmount patches current_amount only; every other field is
// left as created. Returns the matched count.
func (s *Store) UpdateSavingsGoalAmount(ctx context.Context, id, userID string, currentAmount float64) (int64, error) {
	filter := bson.M{"id": id, "user_id": userID}
	update := bson.M{"$set": bson.M{"current_amount": currentAmount}}

	result, err := s.db.Collection(SavingsGoalCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error updating savings goal: %w", err)
	}
	return result.MatchedCount, nil
}

func (s *Store) DeleteSavingsGoal(ctx context.Context, id, userID string) (int64, error) {
	filter := bson.M{"id": id, "user_id": userID}

	result, err := s.db.Collection(SavingsGoalCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting savings goal: %w", err)
	}
	return result.DeletedCount, nil
}
