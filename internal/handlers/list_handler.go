package handlers

import (
	"HomeStock/internal/config"
	"HomeStock/internal/middleware"
	"HomeStock/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ListHandler: списки и их изображения.
type ListHandler struct {
	Catalog *service.CatalogService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewListHandler создаёт хендлер списков
func NewListHandler(catalog *service.CatalogService, logger *zap.SugaredLogger, cfg *config.Config) *ListHandler {
	return &ListHandler{Catalog: catalog, Logger: logger, Config: cfg}
}

// List: страница списков с фильтром ?q= по имени.
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	page, err := h.Catalog.ListLists(r.Context(), service.ListQuery{
		Name: r.URL.Query().Get("q"),
		Page: queryPage(r),
	})
	if err != nil {
		writeServiceError(w, h.Logger, "ListLists", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageDTO(page, toListDTO))
}

func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("CreateList: invalid request body", "user_id", auth.UserID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	in := service.ListInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	l, err := h.Catalog.CreateList(r.Context(), in)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateList", auth.UserID, err)
		return
	}
	h.Logger.Infow("list created", "user_id", auth.UserID, "list_id", l.ID)
	writeJSON(w, http.StatusCreated, toListDTO(l))
}

func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	l, err := h.Catalog.GetList(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "GetList", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, toListDTO(l))
}

func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		h.Logger.Warnw("UpdateList: invalid request body", "user_id", auth.UserID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	l, err := h.Catalog.UpdateList(r.Context(), id, service.ListPatch{Name: req.Name, Description: req.Description})
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateList", auth.UserID, err)
		return
	}
	writeJSON(w, http.StatusOK, toListDTO(l))
}

// Delete удаляет список вместе с его элементами и изображением.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err := h.Catalog.DeleteList(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "DeleteList", auth.UserID, err)
		return
	}
	h.Logger.Infow("list deleted", "user_id", auth.UserID, "list_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage принимает multipart-поле "image" не больше IMAGE_MAX_MB.
func (h *ListHandler) UploadImage(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	limit := int64(h.Config.ImageMaxSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "image too large")
			return
		}
		h.Logger.Warnw("UploadImage: invalid multipart body", "user_id", auth.UserID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image field is required")
		return
	}
	defer file.Close()

	l, err := h.Catalog.AttachListImage(r.Context(), id, file)
	if err != nil {
		writeServiceError(w, h.Logger, "UploadImage", auth.UserID, err)
		return
	}
	h.Logger.Infow("list image stored", "user_id", auth.UserID, "list_id", id, "image_id", *l.ImageID)
	writeJSON(w, http.StatusOK, toListDTO(l))
}

// Image отдаёт байты изображения как есть.
func (h *ListHandler) Image(w http.ResponseWriter, r *http.Request, auth middleware.AuthContext) {
	img, err := h.Catalog.GetImage(r.Context(), chi.URLParam(r, "imageID"))
	if err != nil {
		writeServiceError(w, h.Logger, "GetImage", auth.UserID, err)
		return
	}
	w.Header().Set("Content-Type", img.MIME)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}
