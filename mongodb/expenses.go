package mongodb

import (
	"context"
	"fmt"

	"finance-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *Store) InsertExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.db.Collection(ExpenseCollection).InsertOne(ctx, expense)
	if err != nil {
		return fmt.Errorf("error inserting expense: %w", err)
	}
	return nil
}

func (s *Store) ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	filter := bson.M{"user_id": userID}

	cursor, err := s.db.Collection(ExpenseCollection).Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("error decoding expenses: %w", err)
	}
	return expenses, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id, userID string) (int64, error) {
	filter := bson.M{"id": id, "user_id": userID}

	result, err := s.db.Collection(ExpenseCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting expense: %w", err)
	}
	return result.DeletedCount, nil
}
