package mongodb

import (
	"context"
	"fmt"

	"finance-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	_, err := s.db.Collection(UserCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// FindUserByEmail returns the user registered under email, or (nil, nil)
// when no such user exists. The match is case-sensitive, exactly as stored.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	filter := bson.M{"email": email}

	var user models.User
	err := s.db.Collection(UserCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	return &user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	filter := bson.M{"id": id}

	var user models.User
	err := s.db.Collection(UserCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user by id: %w", err)
	}
	return &user, nil
}
