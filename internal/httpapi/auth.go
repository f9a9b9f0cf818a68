package httpapi

import (
	"errors"
	"net/http"

	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/pkg/httpx"
	"github.com/spendwise/spendwise/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// loginResponse bundles the bearer token with the public user projection.
type loginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// HandleRegister godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user, hashes the password and assigns a random avatar.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"name, email, password"
//	@Success		201		{object}	httpx.Response	"Public user projection"
//	@Failure		400		{object}	httpx.Response	"Validation failure or duplicate email"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if errs := decodeAndValidate(r, &req); errs != nil {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		if errors.Is(err, service.ErrPasswordTooLong) {
			// Multi-byte input can pass the rune-counting validator
			// yet exceed bcrypt's byte limit.
			httpx.WriteValidationErrors(w, []httpx.FieldError{
				{Field: "password", Message: "Password must be at most 72 characters"},
			})
			return
		}
		log.Error("register failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	httpx.WriteMessage(w, http.StatusCreated, "User registered successfully", user.Public())
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and mints a 7-day bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"email, password"
//	@Success		200		{object}	httpx.Response	"token and public user"
//	@Failure		401		{object}	httpx.Response	"Invalid credentials"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if errs := decodeAndValidate(r, &req); errs != nil {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One uniform message for unknown email and wrong
			// password alike.
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httpx.NoCache(w)
	httpx.WriteMessage(w, http.StatusOK, "Login successful", loginResponse{
		Token: token,
		User:  user.Public(),
	})
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Description	Returns the profile of the authenticated user.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Response	"Public user projection"
//	@Failure		401	{object}	httpx.Response	"Missing bearer token"
//	@Failure		403	{object}	httpx.Response	"Invalid or expired token"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	user, err := h.AuthService.GetUserByID(ctx, identity.UserID)
	if err != nil {
		// A valid token should always resolve; a miss here is a
		// consistency bug, not a client error.
		log.Error("failed to fetch user for valid token", "user_id", identity.UserID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch user data")
		return
	}

	httpx.WriteData(w, http.StatusOK, user.Public())
}
