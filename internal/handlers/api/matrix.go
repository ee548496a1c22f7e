package api

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"fraudmatrix/internal/config"
	"fraudmatrix/internal/matrix"
	"fraudmatrix/internal/models"
	"fraudmatrix/internal/scenarios"
	"fraudmatrix/internal/validation"
)

// TableSource provides the memoized scenario table.
type TableSource interface {
	Table() (*scenarios.Table, error)
}

// MatrixHandler serves the classification as JSON.
type MatrixHandler struct {
	source TableSource
	cfg    *config.Config
}

// NewMatrixHandler creates a new API matrix handler.
func NewMatrixHandler(source TableSource, cfg *config.Config) *MatrixHandler {
	return &MatrixHandler{source: source, cfg: cfg}
}

func (h *MatrixHandler) load() (*scenarios.Table, matrix.Buckets, error) {
	table, err := h.source.Table()
	if err != nil {
		return nil, matrix.Buckets{}, err
	}
	return table, matrix.Classify(table.Rows(), h.cfg.Matrix.BusinessValues, h.cfg.Matrix.Feasibilities), nil
}

func loadError(c fiber.Ctx, err error) error {
	if errors.Is(err, scenarios.ErrDatasetNotFound) {
		return jsonError(c, fiber.StatusServiceUnavailable, "scenario dataset not found")
	}
	return jsonError(c, fiber.StatusInternalServerError, "failed to load scenario dataset")
}

// Matrix returns every populated quadrant with its descriptor and count.
func (h *MatrixHandler) Matrix(c fiber.Ctx) error {
	_, buckets, err := h.load()
	if err != nil {
		return loadError(c, err)
	}

	resp := models.MatrixResponse{
		BusinessValues: h.cfg.Matrix.BusinessValues,
		Feasibilities:  h.cfg.Matrix.Feasibilities,
		Quadrants:      []models.QuadrantSummaryResponse{},
		Total:          buckets.Total(),
	}
	for _, key := range buckets.Keys() {
		resp.Quadrants = append(resp.Quadrants, models.QuadrantSummaryResponse{
			Key:        key.String(),
			Descriptor: descriptorResponse(matrix.Describe(key)),
			Count:      buckets.Count(key),
		})
	}

	return jsonSuccess(c, resp)
}

// Quadrant returns the scenarios of one quadrant. Empty quadrants return an
// empty list together with the guidance text.
func (h *MatrixHandler) Quadrant(c fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "quadrant is not a valid path segment")
	}
	if valid, msg := validation.ValidateQuadrantParam(raw); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	key, err := matrix.ParseKey(raw)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	_, buckets, err := h.load()
	if err != nil {
		return loadError(c, err)
	}

	rows := buckets.Get(key)
	resp := models.QuadrantResponse{
		Key:        key.String(),
		Descriptor: descriptorResponse(matrix.Describe(key)),
		Count:      len(rows),
		Scenarios:  make([]map[string]string, 0, len(rows)),
	}
	for _, s := range rows {
		resp.Scenarios = append(resp.Scenarios, s.Fields)
	}
	if len(rows) == 0 {
		resp.Guidance = matrix.Guidance(key)
	}

	return jsonSuccess(c, resp)
}

// Summary returns the headline statistics.
func (h *MatrixHandler) Summary(c fiber.Ctx) error {
	table, buckets, err := h.load()
	if err != nil {
		return loadError(c, err)
	}

	s := matrix.Summarize(table.Rows(), buckets)
	return jsonSuccess(c, models.SummaryResponse{
		Total:             s.Total,
		HighBusinessValue: s.HighBusinessValue,
		HighFeasibility:   s.HighFeasibility,
		QuickWins:         s.QuickWins,
	})
}

func descriptorResponse(d matrix.Descriptor) models.DescriptorResponse {
	return models.DescriptorResponse{
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
	}
}
