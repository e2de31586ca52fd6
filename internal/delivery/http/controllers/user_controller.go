package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	h "concertify/internal/delivery/http/helpers"
	"concertify/internal/delivery/http/middleware"
	"concertify/internal/domain"
)

var signupEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SignUpRequest is the request body for POST /api/users/signup
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !signupEmailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	} else if len(s.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// LoginRequest is the request body for POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /api/users/login
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// CookieUserResponse is the response body for GET /api/users/cookieUser,
// matching the {data: {_id}} shape the web client reads.
// swagger:model CookieUserResponse
type CookieUserResponse struct {
	Data *domain.User `json:"data"`
}

type UserController struct {
	Logger      *slog.Logger
	Service     domain.UserService
	TokenExpiry time.Duration
	Secure      bool // mark session cookies Secure (production)
}

func NewUserController(logger *slog.Logger, svc domain.UserService, tokenExpiry time.Duration, secure bool) *UserController {
	return &UserController{
		Logger:      logger,
		Service:     svc,
		TokenExpiry: tokenExpiry,
		Secure:      secure,
	}
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Create a new user with email, password, and name. Password is stored hashed.
// @Tags users
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/users/signup [post]
func (c *UserController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already registered")
		case errors.Is(err, domain.ErrInvalidInput):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not create user")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and issues a session token, returned in the body and set as the session cookie the web client relies on.
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/users/login [post]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, _, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer"})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags users
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/users/logout [post]
func (c *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// CookieUser godoc
// @Summary Get the user for the current session cookie
// @Description Returns the authenticated user's profile, including the administered artist list, in the {data:{_id,...}} shape the web client reads.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.CookieUserResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/users/cookieUser [get]
func (c *UserController) CookieUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not load user")
		return
	}
	h.WriteJSON(w, http.StatusOK, CookieUserResponse{Data: user})
}
