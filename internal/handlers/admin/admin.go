package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/service/adminservice"
	"github.com/mkarpov/tollgate/internal/service/referenceservice"
	"github.com/mkarpov/tollgate/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, req dto.AdminCreateUserRequestDTO) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID int, req dto.CreateVehicleRequestDTO) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID int) error
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	DeleteRoute(ctx context.Context, routeID int) error
}

// ReferenceService exposes the writable side of the reference catalogs.
type ReferenceService interface {
	ListRoads(ctx context.Context) ([]domain.Road, error)
	CreateRoad(ctx context.Context, req dto.RoadDTO) (*domain.Road, error)
	DeleteRoad(ctx context.Context, roadID int) error
	ListVignettePoints(ctx context.Context) ([]domain.VignettePoint, error)
	CreateVignettePoint(ctx context.Context, req dto.VignettePointDTO) (*domain.VignettePoint, error)
	DeleteVignettePoint(ctx context.Context, pointID int) error
}

type AdminHandler struct {
	adminService     Service
	referenceService ReferenceService
}

func New(adminService Service, referenceService ReferenceService) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		referenceService: referenceService,
	}
}

// GetUsers godoc
//
//	@Summary		List all accounts
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.AdminUserDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.AdminUserDTO{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
			Kind:     u.Kind,
			Country:  u.Country,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateUser godoc
//
//	@Summary		Create an operator account
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminCreateUserRequestDTO	true	"User request body"
//	@Success		200		{object}	dto.AdminUserDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/users [post]
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminCreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.adminService.CreateUser(r.Context(), req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminUserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Kind:     user.Kind,
	})
}

// DeleteUser godoc
//
//	@Summary		Delete an account
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.adminService.DeleteUser(r.Context(), userID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}

// GetVehicles godoc
//
//	@Summary		List all vehicles
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.VehicleResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/vehicles [get]
func (h *AdminHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.adminService.ListVehicles(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.VehicleResponseDTO, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.VehicleResponseDTO{
			ID:           v.ID,
			LicensePlate: v.LicensePlate,
			Type:         v.Type,
			Tonnage:      v.Tonnage,
			Axles:        v.Axles,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateVehicle godoc
//
//	@Summary		Update a vehicle
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Vehicle ID"
//	@Param			request	body		dto.CreateVehicleRequestDTO	true	"Vehicle request body"
//	@Success		200		{object}	dto.VehicleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Vehicle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/vehicles/{id} [put]
func (h *AdminHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}
	var req dto.CreateVehicleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.adminService.UpdateVehicle(r.Context(), vehicleID, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VehicleResponseDTO{
		ID:           vehicle.ID,
		LicensePlate: vehicle.LicensePlate,
		Type:         vehicle.Type,
		Tonnage:      vehicle.Tonnage,
		Axles:        vehicle.Axles,
	})
}

// DeleteVehicle godoc
//
//	@Summary		Delete a vehicle
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int	true	"Vehicle ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Vehicle not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/vehicles/{id} [delete]
func (h *AdminHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}
	if err := h.adminService.DeleteVehicle(r.Context(), vehicleID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Vehicle deleted"})
}

// GetRoutes godoc
//
//	@Summary		List all routes
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.RouteResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/routes [get]
func (h *AdminHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.adminService.ListRoutes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.RouteResponseDTO, 0, len(routes))
	for i := range routes {
		route := &routes[i]
		item := dto.RouteResponseDTO{
			ID:              route.ID,
			VehicleID:       route.VehicleID,
			Name:            route.Name,
			DistanceKm:      route.DistanceKm,
			TollCost:        route.TollCost,
			DurationMinutes: route.DurationMinutes,
			VignettePeriod:  route.VignettePeriod,
			CreatedAt:       route.CreatedAt,
			Points:          make([]dto.RoutePointDTO, 0, len(route.Points)),
		}
		if route.ContractNumber != nil {
			item.ContractNumber = route.ContractNumber.String()
		}
		for _, p := range route.Points {
			item.Points = append(item.Points, dto.RoutePointDTO{
				Order:     p.Order,
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
			})
		}
		resp = append(resp, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DeleteRoute godoc
//
//	@Summary		Delete a route
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int	true	"Route ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Route not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/routes/{id} [delete]
func (h *AdminHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid route id")
		return
	}
	if err := h.adminService.DeleteRoute(r.Context(), routeID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Route deleted"})
}

// CreateRoad godoc
//
//	@Summary		Add a road to the registry
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RoadDTO	true	"Road request body"
//	@Success		200		{object}	dto.RoadDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/roads [post]
func (h *AdminHandler) CreateRoad(w http.ResponseWriter, r *http.Request) {
	var req dto.RoadDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	road, err := h.referenceService.CreateRoad(r.Context(), req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RoadDTO{
		ID:             road.ID,
		Name:           road.Name,
		Type:           road.Type,
		StartLatitude:  road.StartLatitude,
		StartLongitude: road.StartLongitude,
		EndLatitude:    road.EndLatitude,
		EndLongitude:   road.EndLongitude,
		Description:    road.Description,
	})
}

// DeleteRoad godoc
//
//	@Summary		Delete a road
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int	true	"Road ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Road not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/roads/{id} [delete]
func (h *AdminHandler) DeleteRoad(w http.ResponseWriter, r *http.Request) {
	roadID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid road id")
		return
	}
	if err := h.referenceService.DeleteRoad(r.Context(), roadID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Road deleted"})
}

// CreateVignettePoint godoc
//
//	@Summary		Add a vignette purchase point
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VignettePointDTO	true	"Point request body"
//	@Success		200		{object}	dto.VignettePointDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/vignette-purchase-points [post]
func (h *AdminHandler) CreateVignettePoint(w http.ResponseWriter, r *http.Request) {
	var req dto.VignettePointDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	point, err := h.referenceService.CreateVignettePoint(r.Context(), req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VignettePointDTO{
		ID:          point.ID,
		Name:        point.Name,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
		Description: point.Description,
	})
}

// DeleteVignettePoint godoc
//
//	@Summary		Delete a vignette purchase point
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int	true	"Point ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Point not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/vignette-purchase-points/{id} [delete]
func (h *AdminHandler) DeleteVignettePoint(w http.ResponseWriter, r *http.Request) {
	pointID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid point id")
		return
	}
	if err := h.referenceService.DeleteVignettePoint(r.Context(), pointID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Vignette purchase point deleted"})
}

func (h *AdminHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrUserNotFound),
		errors.Is(err, adminservice.ErrVehicleNotFound),
		errors.Is(err, adminservice.ErrRouteNotFound),
		errors.Is(err, referenceservice.ErrRoadNotFound),
		errors.Is(err, referenceservice.ErrPointNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, adminservice.ErrUsernameTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, adminservice.ErrInvalidRole),
		errors.Is(err, referenceservice.ErrNameRequired),
		errors.Is(err, referenceservice.ErrInvalidRoad),
		errors.Is(err, referenceservice.ErrInvalidPoint),
		errors.Is(err, referenceservice.ErrInvalidRoadType):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
