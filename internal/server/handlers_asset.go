package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
)

// handleAssets handles /api/assets — POST creates a holding, GET lists them.
func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleAssetCreate(w, r)
	case http.MethodGet:
		s.handleAssetList(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleAssetCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Owner         string    `json:"owner"`
		Name          string    `json:"name"`
		AssetType     string    `json:"asset_type"`
		Quantity      float64   `json:"quantity"`
		PurchasePrice float64   `json:"purchase_price"`
		CurrentValue  float64   `json:"current_value"`
		PurchaseDate  time.Time `json:"purchase_date"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	owner := common.ResolveOwner(ctx, req.Owner)

	asset := &models.Asset{
		ID:            uuid.New().String(),
		Owner:         owner,
		Name:          strings.TrimSpace(req.Name),
		AssetType:     req.AssetType,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		PurchaseDate:  req.PurchaseDate,
		CreatedAt:     time.Now(),
	}
	if asset.CurrentValue == 0 {
		// New holdings start at cost until a valuation arrives.
		asset.CurrentValue = asset.Cost()
	}

	if err := asset.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.app.Storage.AssetStore().Insert(ctx, asset); err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("Failed to insert asset")
		WriteError(w, http.StatusInternalServerError, "failed to save asset")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "ok",
		"data":   asset,
	})
}

func (s *Server) handleAssetList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := common.ResolveOwner(ctx, r.URL.Query().Get("owner"))
	if owner == "" {
		WriteError(w, http.StatusBadRequest, "owner is required")
		return
	}

	assets, err := s.app.Storage.AssetStore().ListByOwner(ctx, owner)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("Failed to list assets")
		WriteError(w, http.StatusInternalServerError, "failed to load assets")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   assets,
		"count":  len(assets),
	})
}

// handleAssetByID handles DELETE /api/assets/{id}.
func (s *Server) handleAssetByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id := PathParam(r, "/api/assets/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "asset id is required in path")
		return
	}

	ctx := r.Context()
	owner := common.ResolveOwner(ctx, r.URL.Query().Get("owner"))
	if owner == "" {
		WriteError(w, http.StatusBadRequest, "owner is required")
		return
	}

	if err := s.app.Storage.AssetStore().Delete(ctx, owner, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete asset")
		WriteError(w, http.StatusInternalServerError, "failed to delete asset")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
