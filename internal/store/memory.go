package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/model"
)

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu sync.RWMutex

	expenses    map[string]*model.Expense
	assets      map[string]*model.Asset
	liabilities map[string]*model.Liability
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expenses:    make(map[string]*model.Expense),
		assets:      make(map[string]*model.Asset),
		liabilities: make(map[string]*model.Liability),
	}
}

// paginateIDs applies cursor-based pagination to a sorted slice of IDs.
// Returns the paginated IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	if pageSize <= 0 {
		pageSize = 100
	}

	sort.Strings(ids)

	// Find cursor position
	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			for i, id := range ids {
				if id > cursorID {
					startIdx = i
					break
				}
				if i == len(ids)-1 {
					return nil, ""
				}
			}
		}
	}

	ids = ids[startIdx:]

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

// Expense operations

func (m *MemoryStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	m.expenses[expense.ID] = expense
	return nil
}

func (m *MemoryStore) GetExpense(ctx context.Context, expenseID string) (*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expense, ok := m.expenses[expenseID]
	if !ok {
		return nil, ErrNotFound
	}

	return expense, nil
}

func (m *MemoryStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[expense.ID]; !ok {
		return ErrNotFound
	}

	m.expenses[expense.ID] = expense
	return nil
}

func (m *MemoryStore) DeleteExpense(ctx context.Context, expenseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[expenseID]; !ok {
		return ErrNotFound
	}

	delete(m.expenses, expenseID)
	return nil
}

func (m *MemoryStore) ListExpenses(ctx context.Context, userID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Expense, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// First pass: collect matching IDs
	var matchingIDs []string
	for id, expense := range m.expenses {
		if userID != "" && expense.UserID != userID {
			continue
		}
		if startDate != nil && expense.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && expense.Date.After(*endDate) {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	pageIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)

	expenses := make([]*model.Expense, 0, len(pageIDs))
	for _, id := range pageIDs {
		expenses = append(expenses, m.expenses[id])
	}

	return expenses, nextToken, nil
}

// Asset operations

func (m *MemoryStore) CreateAsset(ctx context.Context, asset *model.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}

	m.assets[asset.ID] = asset
	return nil
}

func (m *MemoryStore) ListAssets(ctx context.Context, userID string) ([]*model.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, asset := range m.assets {
		if userID != "" && asset.UserID != userID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	assets := make([]*model.Asset, 0, len(ids))
	for _, id := range ids {
		assets = append(assets, m.assets[id])
	}
	return assets, nil
}

func (m *MemoryStore) DeleteAsset(ctx context.Context, assetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[assetID]; !ok {
		return ErrNotFound
	}

	delete(m.assets, assetID)
	return nil
}

// Liability operations

func (m *MemoryStore) CreateLiability(ctx context.Context, liability *model.Liability) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if liability.ID == "" {
		liability.ID = uuid.New().String()
	}

	m.liabilities[liability.ID] = liability
	return nil
}

func (m *MemoryStore) ListLiabilities(ctx context.Context, userID string) ([]*model.Liability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, liability := range m.liabilities {
		if userID != "" && liability.UserID != userID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	liabilities := make([]*model.Liability, 0, len(ids))
	for _, id := range ids {
		liabilities = append(liabilities, m.liabilities[id])
	}
	return liabilities, nil
}

func (m *MemoryStore) DeleteLiability(ctx context.Context, liabilityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.liabilities[liabilityID]; !ok {
		return ErrNotFound
	}

	delete(m.liabilities, liabilityID)
	return nil
}
