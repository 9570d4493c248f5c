package mongodb

import (
	"context"
	"fmt"

	"finance-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *Store) InsertBudget(ctx context.Context, budget *models.Budget) error {
	_, err := s.db.Collection(BudgetCollection).InsertOne(ctx, budget)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("error inserting budget: %w", err)
	}
	return nil
}

// FindBudgetByKey looks up a budget by its uniqueness key. Used by the
// create-time duplicate check. Returns (nil, nil) when no budget matches.
func (s *Store) FindBudgetByKey(ctx context.Context, userID, category string, year, month int) (*models.Budget, error) {
	filter := bson.M{
		"user_id":  userID,
		"category": category,
		"year":     year,
		"month":    month,
	}

	var budget models.Budget
	err := s.db.Collection(BudgetCollection).FindOne(ctx, filter).Decode(&budget)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding budget: %w", err)
	}
	return &budget, nil
}

func (s *Store) FindBudgetByID(ctx context.Context, id, userID string) (*models.Budget, error) {
	filter := bson.M{"id": id, "user_id": userID}

	var budget models.Budget
	err := s.db.Collection(BudgetCollection).FindOne(ctx, filter).Decode(&budget)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding budget by id: %w", err)
	}
	return &budget, nil
}

// ListBudgets returns userID's budgets, optionally narrowed by year and
// month. Zero values mean "no filter", matching the HTTP query-parameter
// convention where an absent parameter parses to zero.
func (s *Store) ListBudgets(ctx context.Context, userID string, year, month int) ([]models.Budget, error) {
	filter := budgetListFilter(userID, year, month)

	cursor, err := s.db.Collection(BudgetCollection).Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("error listing budgets: %w", err)
	}

	budgets := []models.Budget{}
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, fmt.Errorf("error decoding budgets: %w", err)
	}
	return budgets, nil
}

func budgetListFilter(userID string, year, month int) bson.M {
	filter := bson.M{"user_id": userID}
	if year != 0 {
		filter["year"] = year
	}
	if month != 0 {
		filter["month"] = month
	}
	return filter
}

// UpdateBudget replaces the mutable fields of the budget with the given id,
// leaving id, owner and creation time untouched. Returns the matched count.
func (s *Store) UpdateBudget(ctx context.Context, id, userID string, budget *models.Budget) (int64, error) {
	filter := bson.M{"id": id, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"category":      budget.Category,
		"monthly_limit": budget.MonthlyLimit,
		"year":          budget.Year,
		"month":         budget.Month,
	}}

	result, err := s.db.Collection(BudgetCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, ErrDuplicateKey
		}
		return 0, fmt.Errorf("error updating budget: %w", err)
	}
	return result.MatchedCount, nil
}

func (s *Store) DeleteBudget(ctx context.Context, id, userID string) (int64, error) {
	filter := bson.M{"id": id, "user_id": userID}

	result, err := s.db.Collection(BudgetCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting budget: %w", err)
	}
	return result.DeletedCount, nil
}
