package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stockfolio/internal/logger"
	"stockfolio/internal/utils"
)

// addStockRequest is the JSON body accepted by POST /add_stock.
type addStockRequest struct {
	Symbol string `json:"symbol"`
}

func (h *Handler) listStocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stocks, err := h.services.StockService.ListStocks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("stock listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stocks, http.StatusOK)
}

func (h *Handler) addStockForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, formDescription{
		Action: "/add_stock",
		Method: http.MethodPost,
		Fields: []string{"symbol"},
	}, http.StatusOK)
}

func (h *Handler) addStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req addStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stock, err := h.services.StockService.AddStock(ctx, userID, req.Symbol)
	if err != nil {
		log.Err(err).Str("symbol", req.Symbol).Int64("user_id", userID).Msg("stock ingestion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stock, http.StatusCreated)
}

func (h *Handler) deleteStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stockID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", r.URL.Query().Get("id")).Msg("invalid stock id")
		http.Error(w, "invalid stock id", http.StatusBadRequest)
		return
	}

	if err := h.services.StockService.DeleteStock(ctx, userID, stockID); err != nil {
		log.Err(err).Int64("stock_id", stockID).Int64("user_id", userID).Msg("stock deletion failed")
		writeError(w, err)
		return
	}

	// deletion happens via a plain link from the listing, so send the
	// client back to the home view
	http.Redirect(w, r, "/", http.StatusFound)
}
