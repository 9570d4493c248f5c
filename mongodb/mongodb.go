package mongodb

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/api/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const (
	UserCollection        = "users"
	IncomeCollection      = "incomes"
	ExpenseCollection     = "expenses"
	BudgetCollection      = "budgets"
	SavingsGoalCollection = "savings_goals"
	ContactCollection     = "contact_messages"
)

// listLimit caps every list query. Pagination is not offered; anything past
// the cap is simply not returned.
const listLimit = 1000

// ErrDuplicateKey is returned by inserts that violate a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// Store is the handle to the document store. It is constructed once at
// startup and shared across requests; the underlying client is safe for
// concurrent use.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client against the given URI and returns a Store bound to
// the named database.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	logger.Get().Info("connected to MongoDB", zap.String("database", dbName))
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the handlers rely on: one on user
// email, and a compound one backing the one-budget-per-month rule. The
// budget index is a backstop for the create-time existence check, which is
// not transactional on its own.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating users email index: %w", err)
	}

	_, err = s.db.Collection(BudgetCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "category", Value: 1},
			{Key: "year", Value: 1},
			{Key: "month", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating budgets compound index: %w", err)
	}

	return nil
}
