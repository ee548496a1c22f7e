package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v3"

	"fraudmatrix/internal/config"
	"fraudmatrix/internal/matrix"
	"fraudmatrix/internal/middleware"
	"fraudmatrix/internal/scenarios"
	"fraudmatrix/internal/validation"
)

// DashboardHandler renders the priority matrix and quadrant drill-downs.
type DashboardHandler struct {
	source TableSource
	cfg    *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(source TableSource, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{source: source, cfg: cfg}
}

func (h *DashboardHandler) classify() (*scenarios.Table, matrix.Buckets, error) {
	table, err := h.source.Table()
	if err != nil {
		return nil, matrix.Buckets{}, datasetError(h.source, err)
	}
	return table, matrix.Classify(table.Rows(), h.cfg.Matrix.BusinessValues, h.cfg.Matrix.Feasibilities), nil
}

// Index renders the matrix. The selected quadrant comes from the
// "quadrant" query parameter; without one the summary and legend are shown.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	table, buckets, err := h.classify()
	if err != nil {
		return err
	}

	data := MergeBranding(fiber.Map{
		"Session":     middleware.CurrentSession(c),
		"Grid":        matrix.BuildFullGrid(buckets),
		"SelectedKey": "",
		"Selected":    (*QuadrantView)(nil),
	}, h.cfg)

	if q := c.Query("quadrant"); q != "" {
		key, err := parseQuadrant(q)
		if err != nil {
			return err
		}
		data["SelectedKey"] = key.String()
		data["Selected"] = newQuadrantView(key, buckets, h.cfg.Matrix.DetailFields)
	} else {
		data["Summary"] = matrix.Summarize(table.Rows(), buckets)
	}

	return c.Render("index", data)
}

// Quadrant renders the detail block of one quadrant for HTMX swaps.
func (h *DashboardHandler) Quadrant(c fiber.Ctx) error {
	key, err := quadrantParam(c)
	if err != nil {
		if isHTMX(c) {
			return htmxError(c, err.Error())
		}
		return err
	}

	_, buckets, err := h.classify()
	if err != nil {
		if isHTMX(c) {
			return htmxError(c, err.Error())
		}
		return err
	}

	return c.Render("partials/quadrant", fiber.Map{
		"Selected": newQuadrantView(key, buckets, h.cfg.Matrix.DetailFields),
	}, "")
}

// quadrantParam reads the ":key" route parameter. Fiber leaves path
// parameters escaped, so "Very%20High-Low" is decoded before validation.
func quadrantParam(c fiber.Ctx) (matrix.Key, error) {
	raw, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return matrix.Key{}, fiber.NewError(fiber.StatusBadRequest, "Quadrant is not a valid path segment")
	}
	return parseQuadrant(raw)
}

func parseQuadrant(s string) (matrix.Key, error) {
	if valid, msg := validation.ValidateQuadrantParam(s); !valid {
		return matrix.Key{}, fiber.NewError(fiber.StatusBadRequest, msg)
	}
	key, err := matrix.ParseKey(s)
	if err != nil {
		return matrix.Key{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return key, nil
}
