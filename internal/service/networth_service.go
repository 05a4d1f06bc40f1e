package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/model"
)

// assetRequest is the create payload for an asset.
type assetRequest struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// liabilityRequest is the create payload for a liability.
type liabilityRequest struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// handleCreateAsset stores an asset, defaulting its type from the category
// catalog.
func (s *FinanceService) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	asset := &model.Asset{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Name:      req.Name,
		Category:  req.Category,
		Type:      model.AssetType(req.Category),
		Value:     req.Value,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateAsset(r.Context(), asset); err != nil {
		respondError(w, "NetWorth", err)
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

func (s *FinanceService) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.store.ListAssets(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		respondError(w, "NetWorth", err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (s *FinanceService) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAsset(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, "NetWorth", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}

// handleCreateLiability stores a liability, defaulting its priority from the
// category catalog.
func (s *FinanceService) handleCreateLiability(w http.ResponseWriter, r *http.Request) {
	var req liabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	liability := &model.Liability{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Name:      req.Name,
		Category:  req.Category,
		Priority:  model.LiabilityPriority(req.Category),
		Amount:    req.Amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateLiability(r.Context(), liability); err != nil {
		respondError(w, "NetWorth", err)
		return
	}

	writeJSON(w, http.StatusCreated, liability)
}

func (s *FinanceService) handleListLiabilities(w http.ResponseWriter, r *http.Request) {
	liabilities, err := s.store.ListLiabilities(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		respondError(w, "NetWorth", err)
		return
	}
	writeJSON(w, http.StatusOK, liabilities)
}

func (s *FinanceService) handleDeleteLiability(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteLiability(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, "NetWorth", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Liability deleted successfully"})
}

// netWorthResponse summarizes the asset and liability columns.
type netWorthResponse struct {
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	NetWorth         float64 `json:"netWorth"`
}

// handleNetWorth totals assets against liabilities for the optional userId
// query param.
func (s *FinanceService) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	assets, err := s.store.ListAssets(r.Context(), userID)
	if err != nil {
		respondError(w, "NetWorth", err)
		return
	}
	liabilities, err := s.store.ListLiabilities(r.Context(), userID)
	if err != nil {
		respondError(w, "NetWorth", err)
		return
	}

	var resp netWorthResponse
	for _, a := range assets {
		resp.TotalAssets += a.Value
	}
	for _, l := range liabilities {
		resp.TotalLiabilities += l.Amount
	}
	resp.NetWorth = resp.TotalAssets - resp.TotalLiabilities

	writeJSON(w, http.StatusOK, resp)
}
