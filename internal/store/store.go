package store

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/finance-coach/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for all database operations used by the service
type Store interface {
	// Expense operations
	CreateExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, expenseID string) (*model.Expense, error)
	UpdateExpense(ctx context.Context, expense *model.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
	ListExpenses(ctx context.Context, userID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Expense, string, error)

	// Asset operations
	CreateAsset(ctx context.Context, asset *model.Asset) error
	ListAssets(ctx context.Context, userID string) ([]*model.Asset, error)
	DeleteAsset(ctx context.Context, assetID string) error

	// Liability operations
	CreateLiability(ctx context.Context, liability *model.Liability) error
	ListLiabilities(ctx context.Context, userID string) ([]*model.Liability, error)
	DeleteLiability(ctx context.Context, liabilityID string) error
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
