package handlers

import (
	"errors"
	"fmt"
	"html"

	"github.com/gofiber/fiber/v3"

	"fraudmatrix/internal/scenarios"
)

// TableSource provides the memoized scenario table.
type TableSource interface {
	Table() (*scenarios.Table, error)
	Path() string
}

// datasetError converts a load failure into an HTTP error. A missing file
// is reported to the user and nothing else of the dashboard is rendered.
func datasetError(source TableSource, err error) error {
	if errors.Is(err, scenarios.ErrDatasetNotFound) {
		return fiber.NewError(fiber.StatusServiceUnavailable,
			fmt.Sprintf("Please ensure '%s' is available to the dashboard.", source.Path()))
	}
	return fiber.NewError(fiber.StatusInternalServerError, "The scenario dataset could not be read.")
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="error">` + html.EscapeString(message) + `</div>`,
	)
}

func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
