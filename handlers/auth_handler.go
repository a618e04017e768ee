package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

type AuthHandler struct {
	users     store.UserStore
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthHandler(users store.UserStore, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: secret, jwtTTL: ttl}
}

func (h *AuthHandler) signJWT(sub uint, role, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(h.jwtTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

type StaffLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StaffLogin handles POST /auth/staff/login.
func (h *AuthHandler) StaffLogin(c echo.Context) error {
	var req StaffLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_FIELDS"})
	}

	u, err := h.users.FindByUsername(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "INVALID_CREDENTIALS"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(u.ID, u.Role, u.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "TOKEN_SIGN_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":       u.ID,
			"username": u.Username,
			"role":     u.Role,
			"name":     u.Name,
		},
	})
}
