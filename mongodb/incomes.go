package mongodb

import (
	"context"
	"fmt"

	"finance-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *Store) InsertIncome(ctx context.Context, income *models.Income) error {
	_, err := s.db.Collection(IncomeCollection).InsertOne(ctx, income)
	if err != nil {
		return fmt.Errorf("error inserting income: %w", err)
	}
	return nil
}

func (s *Store) ListIncomes(ctx context.Context, userID string) ([]models.Income, error) {
	filter := bson.M{"user_id": userID}

	cursor, err := s.db.Collection(IncomeCollection).Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("error listing incomes: %w", err)
	}

	incomes := []models.Income{}
	if err := cursor.All(ctx, &incomes); err != nil {
		return nil, fmt.Errorf("error decoding incomes: %w", err)
	}
	return incomes, nil
}

// DeleteIncome removes the income with the given id if it belongs to userID,
// returning the number of documents removed (0 or 1).
func (s *Store) DeleteIncome(ctx context.Context, id, userID string) (int64, error) {
	filter := bson.M{"id": id, "user_id": userID}

	result, err := s.db.Collection(IncomeCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting income: %w", err)
	}
	return result.DeletedCount, nil
}
