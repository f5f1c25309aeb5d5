package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/service/authservice"
	pkgauth "github.com/mkarpov/tollgate/pkg/auth"
	"github.com/mkarpov/tollgate/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, req dto.RegisterRequestDTO) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an individual or legal-entity account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrInvalidKind),
			errors.Is(err, authservice.ErrCountryRequired),
			errors.Is(err, authservice.ErrUnknownCountry),
			errors.Is(err, authservice.ErrCompanyRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.respondWithToken(w, user)
}

// Login godoc
//
//	@Summary		Authenticate an account
//	@Description	Log in with username and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	h.respondWithToken(w, user)
}

// GetProfile godoc
//
//	@Summary		Current account profile
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.UserProfileDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/user [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())
	user, err := h.authService.GetProfile(r.Context(), claims.UserID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	profile := dto.UserProfileDTO{
		Username: user.Username,
		Role:     user.Role,
		Kind:     user.Kind,
		Country:  user.Country,
	}
	if user.CompanyID != nil {
		profile.CompanyID = *user.CompanyID
	}
	if user.CompanyName != nil {
		profile.CompanyName = *user.CompanyName
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *domain.User) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	resp := dto.AuthResponseDTO{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
		Kind:     user.Kind,
		Country:  user.Country,
	}
	if user.CompanyID != nil {
		resp.CompanyID = *user.CompanyID
	}
	if user.CompanyName != nil {
		resp.CompanyName = *user.CompanyName
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
