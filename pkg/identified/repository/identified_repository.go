package repository

import (
	"context"

	"github.com/villageboy09/kiosk/entities"
)

type IdentifiedRepository interface {
	// Find returns nil, nil when the farmer has not flagged the problem yet.
	Find(ctx context.Context, userID string, problemID uint) (*entities.IdentifiedProblem, error)
	// Create inserts m; created is false when a concurrent insert won and m
	// was filled from the existing row instead.
	Create(ctx context.Context, m *entities.IdentifiedProblem) (created bool, err error)
	ByUser(ctx context.Context, userID string) ([]entities.IdentifiedProblem, error)
}
