package vehicles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/service/vehicleservice"
	pkgauth "github.com/mkarpov/tollgate/pkg/auth"
	"github.com/mkarpov/tollgate/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, user *domain.User, req dto.CreateVehicleRequestDTO) (*domain.Vehicle, error)
	List(ctx context.Context, userID int) ([]domain.Vehicle, error)
	OwnedVehicle(ctx context.Context, userID, vehicleID int) (*domain.Vehicle, error)
	Assign(ctx context.Context, userID, vehicleID int, req dto.AssignDriverRequestDTO) (*domain.Vehicle, error)
	Delete(ctx context.Context, userID, vehicleID int) error
	AssignedDriver(ctx context.Context, vehicle *domain.Vehicle) (*domain.Driver, error)
}

type VehicleHandler struct {
	vehicleService Service
}

func New(vehicleService Service) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// CreateVehicle godoc
//
//	@Summary		Register a vehicle
//	@Description	Add a vehicle to the current account, optionally assigning a driver
//	@Tags			Vehicles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateVehicleRequestDTO	true	"Vehicle request body"
//	@Success		200		{object}	dto.VehicleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/vehicles [post]
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	var req dto.CreateVehicleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := &domain.User{ID: claims.UserID, Kind: claims.Kind}
	vehicle, err := h.vehicleService.Create(r.Context(), user, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithVehicle(w, r, vehicle)
}

// GetVehicles godoc
//
//	@Summary		List account vehicles
//	@Tags			Vehicles
//	@Produce		json
//	@Success		200	{array}		dto.VehicleResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/vehicles [get]
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	vehicles, err := h.vehicleService.List(r.Context(), claims.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.VehicleResponseDTO, 0, len(vehicles))
	for i := range vehicles {
		item, err := h.vehicleDTO(r.Context(), &vehicles[i])
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		resp = append(resp, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AssignDriver godoc
//
//	@Summary		Assign or unassign a driver
//	@Description	Link one of the account's drivers to the vehicle, or pass null to unlink
//	@Tags			Vehicles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Vehicle ID"
//	@Param			request	body		dto.AssignDriverRequestDTO	true	"Assignment request body"
//	@Success		200		{object}	dto.VehicleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Vehicle not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/vehicles/{id}/assign [put]
func (h *VehicleHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}
	var req dto.AssignDriverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.Assign(r.Context(), claims.UserID, vehicleID, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithVehicle(w, r, vehicle)
}

// DeleteVehicle godoc
//
//	@Summary		Delete a vehicle
//	@Tags			Vehicles
//	@Produce		json
//	@Param			id	path		int	true	"Vehicle ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Vehicle not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}
	if err := h.vehicleService.Delete(r.Context(), claims.UserID, vehicleID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Vehicle deleted"})
}

func (h *VehicleHandler) respondWithVehicle(w http.ResponseWriter, r *http.Request, vehicle *domain.Vehicle) {
	item, err := h.vehicleDTO(r.Context(), vehicle)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

func (h *VehicleHandler) vehicleDTO(ctx context.Context, vehicle *domain.Vehicle) (dto.VehicleResponseDTO, error) {
	item := dto.VehicleResponseDTO{
		ID:           vehicle.ID,
		LicensePlate: vehicle.LicensePlate,
		Type:         vehicle.Type,
		Tonnage:      vehicle.Tonnage,
		Axles:        vehicle.Axles,
	}
	driver, err := h.vehicleService.AssignedDriver(ctx, vehicle)
	if err != nil {
		return item, err
	}
	if driver != nil {
		item.AssignedDriver = &dto.DriverShortDTO{
			ID:       driver.ID,
			LastName: driver.LastName,
			Initials: driver.Initials,
		}
	}
	return item, nil
}

func (h *VehicleHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vehicleservice.ErrVehicleNotFound),
		errors.Is(err, vehicleservice.ErrDriverNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, vehicleservice.ErrPlateRequired),
		errors.Is(err, vehicleservice.ErrInvalidType),
		errors.Is(err, vehicleservice.ErrTonnageExceeded),
		errors.Is(err, vehicleservice.ErrTruckForbidden),
		errors.Is(err, vehicleservice.ErrNotEnoughAxles),
		errors.Is(err, vehicleservice.ErrInvalidAxles),
		errors.Is(err, vehicleservice.ErrInvalidDate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
