package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/pricing"
	"github.com/mkarpov/tollgate/internal/service/routeservice"
	pkgauth "github.com/mkarpov/tollgate/pkg/auth"
	"github.com/mkarpov/tollgate/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, claims *pkgauth.Claims, req dto.CreateRouteRequestDTO) (*domain.Route, error)
	Get(ctx context.Context, claims *pkgauth.Claims, routeID int) (*domain.Route, error)
	List(ctx context.Context, claims *pkgauth.Claims) ([]domain.Route, error)
	Report(ctx context.Context, claims *pkgauth.Claims, date string) ([]domain.Route, error)
	ReplacePoints(ctx context.Context, claims *pkgauth.Claims, routeID int, points []dto.RoutePointDTO) (*domain.Route, error)
}

// ReferenceService exposes the read side of the reference catalogs.
type ReferenceService interface {
	ListRoads(ctx context.Context) ([]domain.Road, error)
	ListVignettePoints(ctx context.Context) ([]domain.VignettePoint, error)
}

type RouteHandler struct {
	routeService     Service
	referenceService ReferenceService
}

func New(routeService Service, referenceService ReferenceService) *RouteHandler {
	return &RouteHandler{
		routeService:     routeService,
		referenceService: referenceService,
	}
}

// CreateRoute godoc
//
//	@Summary		Plan a route
//	@Description	Create a route for a vehicle; toll cost and vignette period are computed server-side
//	@Tags			Routes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRouteRequestDTO	true	"Route request body"
//	@Success		200		{object}	dto.RouteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Vehicle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/routes [post]
func (h *RouteHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	var req dto.CreateRouteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	route, err := h.routeService.Create(r.Context(), claims, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, routeDTO(route))
}

// GetRoutes godoc
//
//	@Summary		List routes
//	@Description	Routes of the current account, or of the assigned vehicle for drivers
//	@Tags			Routes
//	@Produce		json
//	@Success		200	{array}		dto.RouteResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/routes [get]
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	routes, err := h.routeService.List(r.Context(), claims)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithRoutes(w, routes)
}

// GetRoute godoc
//
//	@Summary		Route details
//	@Tags			Routes
//	@Produce		json
//	@Param			id	path		int	true	"Route ID"
//	@Success		200	{object}	dto.RouteResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Route not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/routes/{id} [get]
func (h *RouteHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	routeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid route id")
		return
	}
	route, err := h.routeService.Get(r.Context(), claims, routeID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, routeDTO(route))
}

// ReplacePoints godoc
//
//	@Summary		Replace route points
//	@Description	Swap the route's waypoints and recompute distance and toll cost
//	@Tags			Routes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Route ID"
//	@Param			request	body		dto.ReplacePointsRequestDTO	true	"Points request body"
//	@Success		200		{object}	dto.RouteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid points"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Route not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/routes/{id}/points [post]
func (h *RouteHandler) ReplacePoints(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	routeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid route id")
		return
	}
	var req dto.ReplacePointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	route, err := h.routeService.ReplacePoints(r.Context(), claims, routeID, req.Points)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, routeDTO(route))
}

// GetReport godoc
//
//	@Summary		Routes planned on a date
//	@Tags			Routes
//	@Produce		json
//	@Param			date	query		string	true	"Calendar date, YYYY-MM-DD"
//	@Success		200		{array}		dto.RouteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/routes/report [get]
func (h *RouteHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	routes, err := h.routeService.Report(r.Context(), claims, r.URL.Query().Get("date"))
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithRoutes(w, routes)
}

// GetRoads godoc
//
//	@Summary		Road registry
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{array}		dto.RoadDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/roads [get]
func (h *RouteHandler) GetRoads(w http.ResponseWriter, r *http.Request) {
	roads, err := h.referenceService.ListRoads(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.RoadDTO, 0, len(roads))
	for _, road := range roads {
		resp = append(resp, dto.RoadDTO{
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
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetVignettePoints godoc
//
//	@Summary		Vignette purchase points
//	@Description	Public list of locations where a vignette can be bought
//	@Tags			Reference
//	@Produce		json
//	@Success		200	{array}		dto.VignettePointDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/vignette-purchase-points [get]
func (h *RouteHandler) GetVignettePoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.referenceService.ListVignettePoints(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.VignettePointDTO, 0, len(points))
	for _, p := range points {
		resp = append(resp, dto.VignettePointDTO{
			ID:          p.ID,
			Name:        p.Name,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Description: p.Description,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *RouteHandler) respondWithRoutes(w http.ResponseWriter, routes []domain.Route) {
	resp := make([]dto.RouteResponseDTO, 0, len(routes))
	for i := range routes {
		resp = append(resp, routeDTO(&routes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func routeDTO(route *domain.Route) dto.RouteResponseDTO {
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
	return item
}

func (h *RouteHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, routeservice.ErrRouteNotFound),
		errors.Is(err, routeservice.ErrVehicleNotFound),
		errors.Is(err, routeservice.ErrDriverNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, routeservice.ErrNameRequired),
		errors.Is(err, routeservice.ErrNoVehicleAssigned),
		errors.Is(err, routeservice.ErrNoPoints),
		errors.Is(err, routeservice.ErrInvalidPoint),
		errors.Is(err, routeservice.ErrInvalidDate),
		errors.Is(err, pricing.ErrInvalidDates):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
