package mongodb

import (
	"context"
	"fmt"

	"finance-tracker/api/models"
)

func (s *Store) InsertContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	_, err := s.db.Collection(ContactCollection).InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("error inserting contact message: %w", err)
	}
	return nil
}
