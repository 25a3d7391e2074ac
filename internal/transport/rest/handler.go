// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	cerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	service  service.ProductService
	validate *service.Validator
	logger   *slog.Logger
}

// NewHandler creates a new instance of the catalog API with the provided service.
func NewHandler(svc service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  svc,
		validate: service.NewValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/product", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Put("/", h.Update)

		r.Route("/{sku}", func(r chi.Router) {
			r.Get("/", h.FindBySKU)
			r.Delete("/", h.DeleteBySKU)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req service.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondMessage(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "sku", req.SKU)
	if messages := h.validate.Validate(req); messages != nil {
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", messages)
		web.RespondMessages(w, mLogger, http.StatusUnprocessableEntity, messages)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "sku", created.SKU)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// FindBySKU retrieves a product by its SKU.
func (h *Handler) FindBySKU(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sku := chi.URLParam(r, "sku")

	mLogger.DebugContext(r.Context(), "Received request to find product by sku", "sku", sku)
	found, err := h.service.FindBySKU(r.Context(), sku)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	if found == nil {
		mLogger.DebugContext(r.Context(), "Product not found", "sku", sku)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "sku", found.SKU)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Update re-saves the product referenced by the request id.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req service.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondMessage(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "sku", req.SKU)
	if messages := h.validate.Validate(req); messages != nil {
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", messages)
		web.RespondMessages(w, mLogger, http.StatusUnprocessableEntity, messages)
		return
	}

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "sku", updated.SKU)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteBySKU deletes a product by its SKU.
func (h *Handler) DeleteBySKU(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sku := chi.URLParam(r, "sku")

	mLogger.DebugContext(r.Context(), "Received request to delete product", "sku", sku)
	if err := h.service.DeleteBySKU(r.Context(), sku); err != nil {
		h.respondDomainError(w, r, mLogger, err)
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "sku", sku)
	web.RespondMessage(w, mLogger, http.StatusOK, "deleted")
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondDomainError translates a service failure into an HTTP status and a
// uniform message body. Unclassified errors are logged with full detail and
// rendered as 500 with an empty message.
func (h *Handler) respondDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, ok := statusFor(err)
	if !ok {
		logger.ErrorContext(r.Context(), "Unclassified error", "error", err)
		web.RespondMessage(w, logger, http.StatusInternalServerError, "")
		return
	}
	logger.WarnContext(r.Context(), "Request rejected", "status", status, "reason", err)
	web.RespondMessage(w, logger, status, err.Error())
}

// statusFor is the domain-error to HTTP-status table.
func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, cerrors.ErrIDNotAllowed),
		errors.Is(err, cerrors.ErrSKUFormat),
		errors.Is(err, cerrors.ErrSKURange):
		return http.StatusBadRequest, true
	case errors.Is(err, cerrors.ErrSKUTaken):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, cerrors.ErrProductGone):
		return http.StatusGone, true
	case errors.Is(err, cerrors.ErrAlreadyDeleted):
		return http.StatusNotFound, true
	}
	return 0, false
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
