package routes_test

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/idcard"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/registration"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/routes"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

func newServer(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	dir := t.TempDir()
	cardDir := filepath.Join(dir, "id_cards")
	require.NoError(t, os.MkdirAll(cardDir, 0o755))

	users := store.NewMemoryUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users.Add(models.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: "admin"})

	residents := store.NewMemoryStore()
	e := echo.New()
	routes.Register(e, routes.Deps{
		Residents: residents,
		Hostels:   store.NewMemoryHostelStore(),
		Users:     users,
		Workflow:  registration.NewWorkflow(residents, nil),
		Generator: idcard.New(dir),
		CardDir:   cardDir,
		PhotoDir:  dir,
		JWTSecret: "route-test-secret",
		JWTTTL:    time.Hour,
	})
	return e, dir
}

func writePhoto(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 20))
	img.Set(0, 0, color.RGBA{A: 255})
	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/staff/login",
		strings.NewReader(`{"username":"admin","password":"secret-pass"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestRoutes_RegistrationRequiresAuth(t *testing.T) {
	e, dir := newServer(t)
	photo := writePhoto(t, dir)

	body := `{"registration_no":"cs-2023001","first_name":"ali","last_name":"khan",` +
		`"father_name":"Ahmed Khan","department":"computer science","room_no":"a101",` +
		`"phone":"03001234567","join_date":"2023-01-01","photo_path":"` + photo + `"}`

	// no token
	req := httptest.NewRequest(http.MethodPost, "/residents", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// with token
	token := login(t, e)
	req2 := httptest.NewRequest(http.MethodPost, "/residents", strings.NewReader(body))
	req2.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req2.Header.Set("Authorization", "Bearer "+token)
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, req2)
	require.Equal(t, http.StatusCreated, rec2.Code)

	// reads are open
	rec3 := httptest.NewRecorder()
	e.ServeHTTP(rec3, httptest.NewRequest(http.MethodGet, "/residents", nil))
	assert.Equal(t, http.StatusOK, rec3.Code)

	rec4 := httptest.NewRecorder()
	e.ServeHTTP(rec4, httptest.NewRequest(http.MethodGet, "/residents/CS-2023001", nil))
	assert.Equal(t, http.StatusOK, rec4.Code)
}

func TestRoutes_Health(t *testing.T) {
	e, _ := newServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
