package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

type HostelHandler struct {
	hostels store.HostelStore
}

func NewHostelHandler(hs store.HostelStore) *HostelHandler {
	return &HostelHandler{hostels: hs}
}

type hostelPayload struct {
	HostelName string `json:"hostel_name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// GetHostel handles GET /hostel.
func (h *HostelHandler) GetHostel(c echo.Context) error {
	profile, err := h.hostels.GetProfile(c.Request().Context())
	if err != nil {
		if errors.Is(err, store.ErrNoProfile) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NO_PROFILE"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, profile)
}

// SaveHostel handles PUT /hostel (create or update, single row).
func (h *HostelHandler) SaveHostel(c echo.Context) error {
	var p hostelPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	name := strings.TrimSpace(p.HostelName)
	if name == "" || len(name) > 100 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": map[string]string{"hostel_name": "must be 1-100 characters"},
		})
	}

	saved, err := h.hostels.SaveProfile(c.Request().Context(), models.Hostel{
		HostelName: name,
		Address:    strings.TrimSpace(p.Address),
		Phone:      strings.TrimSpace(p.Phone),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
	}
	return c.JSON(http.StatusOK, saved)
}
