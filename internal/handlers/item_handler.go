package handlers

import (
	"HomeStock/internal/cost"
	"HomeStock/internal/middleware"
	"HomeStock/internal/model"
	"HomeStock/internal/service"
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler: элементы и операции над остатками.
type ItemHandler struct {
	Catalog *service.CatalogService
	Ledger  *service.LedgerService
	Logger  *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(catalog *service.CatalogService, ledger *service.LedgerService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Catalog: catalog, Ledger: ledger, Logger: logger}
}

type adjustFunc func(ctx context.Context, id, amount int64) (*model.Item, error)

func (h *ItemHandler) adjustment(action string) (adjustFunc, bool) {
	switch action {
	case "increase":
		return h.Ledger.IncreaseCurrent, true
	case "decrease":
		return h.Ledger.DecreaseCurrent, true
	case "increase-to-buy":
		return h.Ledger.IncreaseToBuy, true
	case "decrease-to-buy":
		return h.Ledger.DecreaseToBuy, true
	}
	return nil, false
}

func itemQuery(r *http.Request, listID *int64) service.ItemQuery {
	q := r.URL.Query()
	return service.ItemQuery{
		ListID:  listID,
		Name:    q.Get("q"),
		OrderBy: q.Get("order"),
		Page:    queryPage(r),
	}
}

// List: все элементы, постранично.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	h.list(w, r, auth, nil)
}

// ListInList: элементы одного списка.
func (h *ItemHandler) ListInList(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	listID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.list(w, r, auth, &listID)
}

func (h *ItemHandler) list(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext, listID *int64) {
	page, err := h.Catalog.ListItems(r.Context(), itemQuery(r, listID))
	if err != nil {
		writeServiceError(w, h.Logger, "ListItems", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageDTO(page, toItemDTO))
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	h.create(w, r, auth, nil)
}

// CreateInList создаёт элемент сразу в списке из пути; list_id из тела игнорируется.
func (h *ItemHandler) CreateInList(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	listID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	h.create(w, r, auth, &listID)
}

func (h *ItemHandler) create(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext, listID *int64) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("CreateItem: invalid request body", "user_id", auth.UserID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	in := req.toInput()
	if listID != nil {
		in.ListID = listID
	}

	it, err := h.Catalog.CreateItem(r.Context(), in)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateItem", auth.UserID, err)
		return
	}
	h.Logger.Infow("item created", "user_id", auth.UserID, "item_id", it.ID)
	writeJSON(w, http.StatusCreated, toItemDTO(it))
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	it, err := h.Catalog.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "GetItem", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

// Update: частичное обновление; "version" в теле включает проверку версии.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("UpdateItem: invalid request body", "user_id", auth.UserID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	it, err := h.Catalog.UpdateItem(r.Context(), id, req.toPatch())
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateItem", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.Catalog.DeleteItem(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "DeleteItem", auth.UserID, err)
		return
	}
	h.Logger.Infow("item deleted", "user_id", auth.UserID, "item_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Cost: стоимость докупки одного элемента.
func (h *ItemHandler) Cost(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	it, err := h.Catalog.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "ItemCost", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"item_id": it.ID,
		"needed":  cost.Needed(*it),
		"cost":    money(cost.ItemCost(*it)),
	})
}

// Adjust: increase/decrease для quantity_at_home и quantity_to_buy.
// ?amount= по умолчанию 1.
func (h *ItemHandler) Adjust(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	action := chi.URLParam(r, "action")
	fn, ok := h.adjustment(action)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown action "+action)
		return
	}

	amount := int64(1)
	if raw := r.URL.Query().Get("amount"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "amount must be an integer")
			return
		}
		amount = n
	}

	it, err := fn(r.Context(), id, amount)
	if err != nil {
		writeServiceError(w, h.Logger, "Adjust", auth.UserID, err)
		return
	}
	h.Logger.Infow("stock adjusted",
		"user_id", auth.UserID,
		"item_id", id,
		"action", action,
		"amount", amount,
		"at_home", it.QuantityAtHome,
		"to_buy", it.QuantityToBuy,
	)
	writeJSON(w, http.StatusOK, toItemDTO(it))
}
