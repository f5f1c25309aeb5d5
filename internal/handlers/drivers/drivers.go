package drivers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/service/driverservice"
	pkgauth "github.com/mkarpov/tollgate/pkg/auth"
	"github.com/mkarpov/tollgate/pkg/utils"
)

type Service interface {
	CreateDriver(ctx context.Context, userID int, req dto.CreateDriverRequestDTO) (*domain.Driver, error)
	ListDrivers(ctx context.Context, userID int) ([]domain.Driver, error)
	OwnedDriver(ctx context.Context, userID, driverID int) (*domain.Driver, error)
	GetDriver(ctx context.Context, driverID int) (*domain.Driver, error)
	VehicleOf(ctx context.Context, driver *domain.Driver) (*domain.Vehicle, error)
	DeleteDriver(ctx context.Context, userID, driverID int) error
	Deposit(ctx context.Context, userID, driverID int, req dto.DepositRequestDTO) (decimal.Decimal, error)
	TollPayment(ctx context.Context, driverID int, req dto.TollPaymentRequestDTO) (decimal.Decimal, error)
	PayRoute(ctx context.Context, driverID, routeID int) (decimal.Decimal, error)
	Transactions(ctx context.Context, driverID int) ([]domain.DriverTransaction, error)
	Authenticate(ctx context.Context, login, password string) (*domain.Driver, error)
	GenerateToken(driver *domain.Driver) (string, error)
}

type DriverHandler struct {
	driverService Service
}

func New(driverService Service) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
	}
}

// CreateDriver godoc
//
//	@Summary		Register a driver
//	@Description	Create a driver account attached to one of the user's vehicles
//	@Tags			Drivers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDriverRequestDTO	true	"Driver request body"
//	@Success		200		{object}	dto.DriverResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Vehicle not found"
//	@Failure		409		{object}	utils.Response	"Login already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/drivers [post]
func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	var req dto.CreateDriverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	driver, err := h.driverService.CreateDriver(r.Context(), claims.UserID, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithDriver(w, r, driver)
}

// GetDrivers godoc
//
//	@Summary		List account drivers
//	@Tags			Drivers
//	@Produce		json
//	@Success		200	{array}		dto.DriverResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/drivers [get]
func (h *DriverHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	drivers, err := h.driverService.ListDrivers(r.Context(), claims.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.DriverResponseDTO, 0, len(drivers))
	for i := range drivers {
		item, err := h.driverDTO(r.Context(), &drivers[i])
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		resp = append(resp, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DeleteDriver godoc
//
//	@Summary		Delete a driver
//	@Tags			Drivers
//	@Produce		json
//	@Param			id	path		int	true	"Driver ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Driver not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/drivers/{id} [delete]
func (h *DriverHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	driverID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid driver id")
		return
	}
	if err := h.driverService.DeleteDriver(r.Context(), claims.UserID, driverID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Driver deleted"})
}

// Deposit godoc
//
//	@Summary		Top up a driver balance
//	@Description	Credit the driver's prepaid balance from a funding card
//	@Tags			Drivers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Driver ID"
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request body"
//	@Success		200		{object}	dto.PayRouteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or card number"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Driver not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/drivers/{id}/deposit [post]
func (h *DriverHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	driverID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid driver id")
		return
	}
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newBalance, err := h.driverService.Deposit(r.Context(), claims.UserID, driverID, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayRouteResponseDTO{
		Message:    "Deposit applied",
		NewBalance: newBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Driver ledger history
//	@Tags			Drivers
//	@Produce		json
//	@Param			id	path		int	true	"Driver ID"
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Driver not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/drivers/{id}/transactions [get]
func (h *DriverHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	driverID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid driver id")
		return
	}
	if _, err := h.driverService.OwnedDriver(r.Context(), claims.UserID, driverID); err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithTransactions(w, r, driverID)
}

// Login godoc
//
//	@Summary		Authenticate a driver
//	@Description	Log in with driver credentials and get a JWT token
//	@Tags			Drivers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DriverLoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.DriverAuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/drivers/login [post]
func (h *DriverHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.DriverLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	driver, err := h.driverService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.driverService.GenerateToken(driver)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.DriverAuthResponseDTO{
		Token:    token,
		Login:    driver.Login,
		Role:     pkgauth.RoleDriver,
		LastName: driver.LastName,
		Initials: driver.Initials,
	})
}

// GetProfile godoc
//
//	@Summary		Current driver profile
//	@Tags			Driver
//	@Produce		json
//	@Success		200	{object}	dto.DriverResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/driver/profile [get]
func (h *DriverHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	driver, err := h.driverService.GetDriver(r.Context(), claims.UserID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	h.respondWithDriver(w, r, driver)
}

// GetVehicle godoc
//
//	@Summary		Vehicle assigned to the current driver
//	@Tags			Driver
//	@Produce		json
//	@Success		200	{object}	dto.VehicleResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"No assigned vehicle"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/driver/vehicle [get]
func (h *DriverHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	driver, err := h.driverService.GetDriver(r.Context(), claims.UserID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	vehicle, err := h.driverService.VehicleOf(r.Context(), driver)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if vehicle == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No assigned vehicle")
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

// TollPayment godoc
//
//	@Summary		Record a toll payment
//	@Description	Debit an arbitrary toll charge from the current driver's balance
//	@Tags			Driver
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TollPaymentRequestDTO	true	"Toll payment request body"
//	@Success		200		{object}	dto.PayRouteResponseDTO
//	@Failure		400		{object}	dto.InsufficientFundsDTO	"Insufficient funds or invalid amount"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/driver/toll-payment [post]
func (h *DriverHandler) TollPayment(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	var req dto.TollPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newBalance, err := h.driverService.TollPayment(r.Context(), claims.UserID, req)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayRouteResponseDTO{
		Message:    "Toll payment applied",
		NewBalance: newBalance,
	})
}

// PayRoute godoc
//
//	@Summary		Pay for a planned route
//	@Description	Debit the route's toll cost from the driver balance and close the route
//	@Tags			Driver
//	@Produce		json
//	@Param			id	path		int	true	"Route ID"
//	@Success		200	{object}	dto.PayRouteResponseDTO
//	@Failure		400	{object}	dto.InsufficientFundsDTO	"Insufficient funds"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Route not assigned to the driver's vehicle"
//	@Failure		404	{object}	utils.Response	"Route not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/driver/routes/{id}/pay [post]
func (h *DriverHandler) PayRoute(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())

	routeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid route id")
		return
	}

	newBalance, err := h.driverService.PayRoute(r.Context(), claims.UserID, routeID)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayRouteResponseDTO{
		Message:    "Route paid",
		NewBalance: newBalance,
	})
}

// GetOwnTransactions godoc
//
//	@Summary		Current driver ledger history
//	@Tags			Driver
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/driver/transactions [get]
func (h *DriverHandler) GetOwnTransactions(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.FromContext(r.Context())
	h.respondWithTransactions(w, r, claims.UserID)
}

func (h *DriverHandler) respondWithTransactions(w http.ResponseWriter, r *http.Request, driverID int) {
	transactions, err := h.driverService.Transactions(r.Context(), driverID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, dto.TransactionResponseDTO{
			ID:        t.ID,
			RouteID:   t.RouteID,
			Amount:    t.Amount,
			Type:      t.Type,
			Comment:   t.Comment,
			CreatedAt: t.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *DriverHandler) respondWithDriver(w http.ResponseWriter, r *http.Request, driver *domain.Driver) {
	item, err := h.driverDTO(r.Context(), driver)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

func (h *DriverHandler) driverDTO(ctx context.Context, driver *domain.Driver) (dto.DriverResponseDTO, error) {
	item := dto.DriverResponseDTO{
		ID:        driver.ID,
		VehicleID: driver.VehicleID,
		LastName:  driver.LastName,
		Initials:  driver.Initials,
		Login:     driver.Login,
		Balance:   driver.Balance,
	}
	vehicle, err := h.driverService.VehicleOf(ctx, driver)
	if err != nil {
		return item, err
	}
	if vehicle != nil {
		item.LicensePlate = vehicle.LicensePlate
	}
	return item, nil
}

func (h *DriverHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	var insufficientFunds *driverservice.InsufficientFundsError
	if errors.As(err, &insufficientFunds) {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.InsufficientFundsDTO{
			Message:   "Insufficient funds",
			Required:  insufficientFunds.Required,
			Available: insufficientFunds.Available,
		})
		return
	}

	switch {
	case errors.Is(err, driverservice.ErrDriverNotFound),
		errors.Is(err, driverservice.ErrVehicleNotFound),
		errors.Is(err, driverservice.ErrRouteNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, driverservice.ErrRouteNotAssigned):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, driverservice.ErrLoginTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, driverservice.ErrInvalidAmount),
		errors.Is(err, driverservice.ErrInvalidCard),
		errors.Is(err, driverservice.ErrInvalidBirthDate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
