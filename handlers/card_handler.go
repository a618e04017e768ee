package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/idcard"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

type CardHandler struct {
	store   store.ResidentStore
	hostels store.HostelStore
	gen     *idcard.Generator
	cardDir string
}

func NewCardHandler(s store.ResidentStore, hs store.HostelStore, gen *idcard.Generator, cardDir string) *CardHandler {
	return &CardHandler{store: s, hostels: hs, gen: gen, cardDir: cardDir}
}

// institution resolves the card-header name; no profile yet means the
// generator falls back to its default.
func (h *CardHandler) institution(c echo.Context) string {
	profile, err := h.hostels.GetProfile(c.Request().Context())
	if err != nil {
		return ""
	}
	return profile.HostelName
}

// Generate handles POST /residents/:reg_no/card. Regenerating for the
// same registration number overwrites the previous artifact.
func (h *CardHandler) Generate(c echo.Context) error {
	r, err := h.store.Get(c.Request().Context(), c.Param("reg_no"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	out := idcard.CardPath(h.cardDir, r.RegistrationNo)
	if err := h.gen.Generate(r, h.institution(c), out); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "RENDER_FAILED"})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"registration_no": r.RegistrationNo,
		"card_path":       out,
	})
}

// Download handles GET /residents/:reg_no/card, serving the generated
// PDF for preview or print.
func (h *CardHandler) Download(c echo.Context) error {
	r, err := h.store.Get(c.Request().Context(), c.Param("reg_no"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	path := idcard.CardPath(h.cardDir, r.RegistrationNo)
	if _, err := os.Stat(path); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "CARD_NOT_GENERATED"})
	}
	return c.Attachment(path, r.RegistrationNo+"_id_card.pdf")
}
