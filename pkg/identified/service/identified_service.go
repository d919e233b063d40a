package service

import (
	"context"

	"github.com/villageboy09/kiosk/entities"
)

type IdentifiedService interface {
	// Record marks problemID as identified by userID. Repeating the call
	// returns the original record with created=false.
	Record(ctx context.Context, userID string, problemID uint) (Recorded, error)
	History(ctx context.Context, userID string) ([]entities.IdentifiedProblem, error)
}

type Recorded struct {
	ID      uint   `json:"id"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}
