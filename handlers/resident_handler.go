package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/registration"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

type ResidentHandler struct {
	store    store.ResidentStore
	workflow *registration.Workflow
}

func NewResidentHandler(s store.ResidentStore, w *registration.Workflow) *ResidentHandler {
	return &ResidentHandler{store: s, workflow: w}
}

// Register handles POST /residents.
func (h *ResidentHandler) Register(c echo.Context) error {
	var in registration.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	r, err := h.workflow.Register(c.Request().Context(), in)
	if err != nil {
		var verr *registration.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":  "VALIDATION_ERROR",
				"fields": verr.Fields,
			})
		case errors.Is(err, store.ErrDuplicate):
			return c.JSON(http.StatusConflict, map[string]string{"error": "DUPLICATE_REGISTRATION"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
		}
	}
	return c.JSON(http.StatusCreated, r)
}

// List handles GET /residents: the summary projection, ordered by
// last name then first name.
func (h *ResidentHandler) List(c echo.Context) error {
	items, err := h.store.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"total": len(items),
	})
}

// Get handles GET /residents/:reg_no.
func (h *ResidentHandler) Get(c echo.Context) error {
	r, err := h.store.Get(c.Request().Context(), c.Param("reg_no"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, r)
}
