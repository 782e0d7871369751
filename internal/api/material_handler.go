package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/goop-edu/goop-api/internal/api/shared"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/store"
)

// MaterialHandler handles learning material API requests.
type MaterialHandler struct {
	materialStore store.MaterialStore
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewMaterialHandler creates a new MaterialHandler with the given dependencies.
func NewMaterialHandler(materialStore store.MaterialStore, logger *slog.Logger) *MaterialHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MaterialHandler")
	}

	return &MaterialHandler{
		materialStore: materialStore,
		validator:     validator.New(),
		logger:        logger.With(slog.String("component", "material_handler")),
	}
}

// ListMaterials handles GET /materials requests. An optional ?topic= query
// filters by topic, case-insensitively.
func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	var materials []domain.Material
	if topic := r.URL.Query().Get("topic"); topic != "" {
		materials = h.materialStore.MaterialsByTopic(r.Context(), topic)
	} else {
		materials = h.materialStore.GetAllMaterials(r.Context())
	}

	responses := make([]MaterialResponse, 0, len(materials))
	for i := range materials {
		responses = append(responses, materialToResponse(&materials[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetMaterial handles GET /materials/{id} requests.
func (h *MaterialHandler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	material, err := h.materialStore.GetMaterialByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, materialToResponse(material))
}

// CreateMaterial handles POST /materials requests. Restricted to teachers;
// the authenticated teacher becomes the material's author.
func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	authorID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req MaterialRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	material, err := domain.NewMaterial(req.Title, req.Content, req.Topic, authorID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	material.ResourceURL = req.ResourceURL

	if err := h.materialStore.CreateMaterial(r.Context(), material); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("material created",
		slog.Int("material_id", material.ID),
		slog.String("topic", material.Topic))

	shared.RespondWithJSON(w, r, http.StatusCreated, materialToResponse(material))
}

// UpdateMaterial handles PUT /materials/{id} requests. Restricted to teachers.
func (h *MaterialHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	existing, err := h.materialStore.GetMaterialByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req MaterialRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.Topic = req.Topic
	existing.ResourceURL = req.ResourceURL
	if err := existing.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.materialStore.UpdateMaterial(r.Context(), existing); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, materialToResponse(existing))
}

// materialToResponse maps a material entity to its API representation,
// including the derived reading time and preview.
func materialToResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{
		ID:                 m.ID,
		Title:              m.Title,
		Content:            m.Content,
		Topic:              m.Topic,
		AuthorID:           m.AuthorID,
		ResourceURL:        m.ResourceURL,
		ReadingTimeMinutes: m.ReadingTimeMinutes(),
		Preview:            m.Preview(),
	}
}
