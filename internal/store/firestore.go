package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finance-coach/backend/internal/model"
)

const (
	expensesCollection    = "expenses"
	assetsCollection      = "assets"
	liabilitiesCollection = "liabilities"
)

// FirestoreStore implements the Store interface using Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{
		client: client,
	}
}

// applyDateAwarePagination handles pagination for queries with date range filters.
// Firestore requires OrderBy on inequality fields first, so we use OrderBy("date") + OrderBy(__name__).
// The cursor must include both the date value and the document ID.
func (s *FirestoreStore) applyDateAwarePagination(ctx context.Context, query firestore.Query, collection string, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy("date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		// Fetch the cursor document to get its date value for composite StartAfter
		cursorDoc, err := s.client.Collection(collection).Doc(docID).Get(ctx)
		if err != nil {
			return query, fmt.Errorf("failed to fetch cursor document: %w", err)
		}
		dateVal := cursorDoc.Data()["date"]
		query = query.StartAfter(dateVal, docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1)
	return query, nil
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for cursor-based pagination.
// It fetches pageSize+1 docs so the caller can detect whether a next page exists.
func (s *FirestoreStore) applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1)
	return query, nil
}

// CreateExpense creates a new expense in Firestore
func (s *FirestoreStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	_, err := s.client.Collection(expensesCollection).Doc(expense.ID).Set(ctx, expense)
	return err
}

// GetExpense retrieves an expense from Firestore
func (s *FirestoreStore) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	doc, err := s.client.Collection(expensesCollection).Doc(expenseID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	var expense model.Expense
	if err := doc.DataTo(&expense); err != nil {
		return nil, fmt.Errorf("failed to parse expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense updates an existing expense in Firestore
func (s *FirestoreStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	if _, err := s.GetExpense(ctx, expense.ID); err != nil {
		return err
	}
	_, err := s.client.Collection(expensesCollection).Doc(expense.ID).Set(ctx, expense)
	return err
}

// DeleteExpense deletes an expense from Firestore
func (s *FirestoreStore) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, err := s.GetExpense(ctx, expenseID); err != nil {
		return err
	}
	_, err := s.client.Collection(expensesCollection).Doc(expenseID).Delete(ctx)
	return err
}

// ListExpenses lists expenses from Firestore
func (s *FirestoreStore) ListExpenses(ctx context.Context, userID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Expense, string, error) {
	query := s.client.Collection(expensesCollection).Query

	if userID != "" {
		query = query.Where("userId", "==", userID)
	}

	hasDateFilter := startDate != nil || endDate != nil
	if startDate != nil {
		query = query.Where("date", ">=", *startDate)
	}
	if endDate != nil {
		query = query.Where("date", "<=", *endDate)
	}

	// When date range filters are present, Firestore requires OrderBy on the
	// range field first.
	var err error
	if hasDateFilter {
		query, err = s.applyDateAwarePagination(ctx, query, expensesCollection, pageSize, pageToken)
	} else {
		query, err = s.applyCursorPagination(query, pageSize, pageToken)
	}
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list expenses: %w", err)
	}

	if pageSize <= 0 {
		pageSize = 100
	}

	var nextPageToken string
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		nextPageToken = EncodePageToken(docs[pageSize-1].Ref.ID)
	}

	expenses := make([]*model.Expense, 0, len(docs))
	for _, doc := range docs {
		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, "", fmt.Errorf("failed to parse expense: %w", err)
		}
		expenses = append(expenses, &expense)
	}

	return expenses, nextPageToken, nil
}

// CreateAsset creates a new asset in Firestore
func (s *FirestoreStore) CreateAsset(ctx context.Context, asset *model.Asset) error {
	_, err := s.client.Collection(assetsCollection).Doc(asset.ID).Set(ctx, asset)
	return err
}

// ListAssets lists all assets for a user from Firestore
func (s *FirestoreStore) ListAssets(ctx context.Context, userID string) ([]*model.Asset, error) {
	query := s.client.Collection(assetsCollection).Query
	if userID != "" {
		query = query.Where("userId", "==", userID)
	}

	var assets []*model.Asset
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		var asset model.Asset
		if err := doc.DataTo(&asset); err != nil {
			return nil, fmt.Errorf("failed to parse asset: %w", err)
		}
		assets = append(assets, &asset)
	}
	return assets, nil
}

// DeleteAsset deletes an asset from Firestore
func (s *FirestoreStore) DeleteAsset(ctx context.Context, assetID string) error {
	doc := s.client.Collection(assetsCollection).Doc(assetID)
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get asset: %w", err)
	}
	_, err := doc.Delete(ctx)
	return err
}

// CreateLiability creates a new liability in Firestore
func (s *FirestoreStore) CreateLiability(ctx context.Context, liability *model.Liability) error {
	_, err := s.client.Collection(liabilitiesCollection).Doc(liability.ID).Set(ctx, liability)
	return err
}

// ListLiabilities lists all liabilities for a user from Firestore
func (s *FirestoreStore) ListLiabilities(ctx context.Context, userID string) ([]*model.Liability, error) {
	query := s.client.Collection(liabilitiesCollection).Query
	if userID != "" {
		query = query.Where("userId", "==", userID)
	}

	var liabilities []*model.Liability
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list liabilities: %w", err)
		}
		var liability model.Liability
		if err := doc.DataTo(&liability); err != nil {
			return nil, fmt.Errorf("failed to parse liability: %w", err)
		}
		liabilities = append(liabilities, &liability)
	}
	return liabilities, nil
}

// DeleteLiability deletes a liability from Firestore
func (s *FirestoreStore) DeleteLiability(ctx context.Context, liabilityID string) error {
	doc := s.client.Collection(liabilitiesCollection).Doc(liabilityID)
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get liability: %w", err)
	}
	_, err := doc.Delete(ctx)
	return err
}
