package handlers

import (
	"HomeStock/internal/middleware"
	"HomeStock/internal/service"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// ReportHandler: стоимость докупки и стоимость запасов.
type ReportHandler struct {
	Catalog *service.CatalogService
	Logger  *zap.SugaredLogger
}

func NewReportHandler(catalog *service.CatalogService, logger *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{Catalog: catalog, Logger: logger}
}

type listCostDTO struct {
	List    *listDTO   `json:"list"`
	Cost    string     `json:"cost"`
	Summary summaryDTO `json:"summary"`
}

// ListCost: list_cost и сводка по одному списку.
func (h *ReportHandler) ListCost(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	l, sum, err := h.Catalog.ListCost(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "ListCost", auth.UserID, err)
		return
	}
	dto := toListDTO(l)
	writeJSON(w, http.StatusOK, listCostDTO{List: &dto, Cost: money(sum.RestockCost), Summary: toSummaryDTO(sum)})
}

// InventoryValue: сумма price * quantity_at_home; ?list_id= сужает до списка.
func (h *ReportHandler) InventoryValue(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	var listID *int64
	if raw := r.URL.Query().Get("list_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "list_id must be an integer")
			return
		}
		listID = &id
	}
	v, err := h.Catalog.InventoryValue(r.Context(), listID)
	if err != nil {
		writeServiceError(w, h.Logger, "InventoryValue", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"list_id": listID, "value": money(v)})
}

// Restock: сводка по всем спискам и общий итог.
func (h *ReportHandler) Restock(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	groups, total, err := h.Catalog.RestockReport(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "Restock", auth.UserID, err)
		return
	}
	out := make([]listCostDTO, 0, len(groups))
	for _, g := range groups {
		row := listCostDTO{Cost: money(g.Summary.RestockCost), Summary: toSummaryDTO(g.Summary)}
		if g.List != nil {
			dto := toListDTO(g.List)
			row.List = &dto
		}
		out = append(out, row)
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": out, "total": toSummaryDTO(total)})
}
