package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// signJWT creates a signed HMAC-SHA256 JWT for the given user.
func signJWT(user *models.User, config *common.AuthConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.UserID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"iss":   "finboard-server",
		"iat":   now.Unix(),
		"exp":   now.Add(config.GetTokenExpiry()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// validateJWT parses and validates a JWT, returning the token and claims.
func validateJWT(tokenString string, secret []byte) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return token, claims, nil
}

// userResponse strips the password hash from a user for API responses.
func userResponse(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"user_id":    user.UserID,
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}
}

// handleAuthSignup handles POST /api/auth/signup — register a new user.
func (s *Server) handleAuthSignup(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		WriteError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		WriteError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	ctx := r.Context()
	store := s.app.Storage.UserStore()

	if existing, err := store.GetUserByEmail(ctx, req.Email); err == nil && existing != nil {
		WriteError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	now := time.Now()
	user := &models.User{
		UserID:       uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		ModifiedAt:   now,
	}
	if err := store.SaveUser(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to save user")
		WriteError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, err := signJWT(user, &s.app.Config.Auth)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign JWT")
		WriteError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"token": token,
			"user":  userResponse(user),
		},
	})
}

// handleAuthLogin handles POST /api/auth/login — exchange credentials for a JWT.
func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx := r.Context()
	store := s.app.Storage.UserStore()

	user, err := store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// Same response as a bad password so lookups don't leak registration state.
		WriteError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		WriteError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := signJWT(user, &s.app.Config.Auth)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign JWT")
		WriteError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"token": token,
			"user":  userResponse(user),
		},
	})
}

// handleAuthValidate handles POST /api/auth/validate — validate a JWT token.
func (s *Server) handleAuthValidate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		WriteError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := validateJWT(tokenString, []byte(s.app.Config.Auth.JWTSecret))
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		WriteError(w, http.StatusUnauthorized, "invalid token claims")
		return
	}

	user, err := s.app.Storage.UserStore().GetUser(r.Context(), sub)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"user": userResponse(user),
		},
	})
}
