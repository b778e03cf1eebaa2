package http

import (
	"encoding/json"
	"net/http"
	"time"

	"booknest/internal/auth"
	"booknest/internal/usecase"
)

type UserHandler struct {
	identity *usecase.IdentityUsecase
	secret   string
	tokenTTL time.Duration
}

func NewUserHandler(identity *usecase.IdentityUsecase, secret string, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{
		identity: identity,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

type registerReq struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,password_strength"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// Register creates a reader account and seeds its default shelves.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	user, err := h.identity.Register(r.Context(), usecase.RegisterParams{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}

	JSONSuccessCreated(w, user)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates and issues a bearer token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	user, err := h.identity.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// One generic answer for unknown email, wrong password and
		// deactivated accounts alike.
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, user.Email, user.Role, h.tokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"access_token": token,
		"expires_in":   int(h.tokenTTL.Seconds()),
		"user":         user,
	}, nil)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.identity.GetUser(r.Context(), UserIDFrom(r))
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	JSONSuccess(w, user, nil)
}

type updateProfileReq struct {
	Username          *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email             *string `json:"email" validate:"omitempty,email"`
	FirstName         *string `json:"first_name" validate:"omitempty,max=100"`
	LastName          *string `json:"last_name" validate:"omitempty,max=100"`
	ProfilePictureURL *string `json:"profile_picture_url" validate:"omitempty,url"`
	IsActive          *bool   `json:"is_active"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	user, err := h.identity.UpdateProfile(r.Context(), UserIDFrom(r), usecase.UpdateProfileParams{
		Username:          req.Username,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfilePictureURL: req.ProfilePictureURL,
		IsActive:          req.IsActive,
	})
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, user, nil)
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,password_strength"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.identity.ChangePassword(r.Context(), UserIDFrom(r), req.CurrentPassword, req.NewPassword); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, nil, map[string]string{"message": "Password updated"})
}

func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.DeleteAccount(r.Context(), UserIDFrom(r)); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}
