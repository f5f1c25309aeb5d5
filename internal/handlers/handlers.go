package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkarpov/tollgate/docs"
	adminhandlers "github.com/mkarpov/tollgate/internal/handlers/admin"
	authhandlers "github.com/mkarpov/tollgate/internal/handlers/auth"
	drivershandlers "github.com/mkarpov/tollgate/internal/handlers/drivers"
	routeshandlers "github.com/mkarpov/tollgate/internal/handlers/routes"
	vehicleshandlers "github.com/mkarpov/tollgate/internal/handlers/vehicles"
	"github.com/mkarpov/tollgate/internal/service"
	"github.com/mkarpov/tollgate/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type VehicleHandler interface {
	CreateVehicle(w http.ResponseWriter, r *http.Request)
	GetVehicles(w http.ResponseWriter, r *http.Request)
	AssignDriver(w http.ResponseWriter, r *http.Request)
	DeleteVehicle(w http.ResponseWriter, r *http.Request)
}

type DriverHandler interface {
	CreateDriver(w http.ResponseWriter, r *http.Request)
	GetDrivers(w http.ResponseWriter, r *http.Request)
	DeleteDriver(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetVehicle(w http.ResponseWriter, r *http.Request)
	TollPayment(w http.ResponseWriter, r *http.Request)
	PayRoute(w http.ResponseWriter, r *http.Request)
	GetOwnTransactions(w http.ResponseWriter, r *http.Request)
}

type RouteHandler interface {
	CreateRoute(w http.ResponseWriter, r *http.Request)
	GetRoutes(w http.ResponseWriter, r *http.Request)
	GetRoute(w http.ResponseWriter, r *http.Request)
	ReplacePoints(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	GetRoads(w http.ResponseWriter, r *http.Request)
	GetVignettePoints(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	GetVehicles(w http.ResponseWriter, r *http.Request)
	UpdateVehicle(w http.ResponseWriter, r *http.Request)
	DeleteVehicle(w http.ResponseWriter, r *http.Request)
	GetRoutes(w http.ResponseWriter, r *http.Request)
	DeleteRoute(w http.ResponseWriter, r *http.Request)
	CreateRoad(w http.ResponseWriter, r *http.Request)
	DeleteRoad(w http.ResponseWriter, r *http.Request)
	CreateVignettePoint(w http.ResponseWriter, r *http.Request)
	DeleteVignettePoint(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	VehicleHandler VehicleHandler
	DriverHandler  DriverHandler
	RouteHandler   RouteHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		VehicleHandler: vehicleshandlers.New(s.VehicleService),
		DriverHandler:  drivershandlers.New(s.DriverService),
		RouteHandler:   routeshandlers.New(s.RouteService, s.ReferenceService),
		AdminHandler:   adminhandlers.New(s.AdminService, s.ReferenceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.Post("/drivers/login", h.DriverHandler.Login)
		r.Get("/vignette-purchase-points", h.RouteHandler.GetVignettePoints)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/user", h.AuthHandler.GetProfile)
			r.Get("/roads", h.RouteHandler.GetRoads)

			r.Route("/routes", func(r chi.Router) {
				r.Post("/", h.RouteHandler.CreateRoute)
				r.Get("/", h.RouteHandler.GetRoutes)
				r.Get("/report", h.RouteHandler.GetReport)
				r.Get("/{id}", h.RouteHandler.GetRoute)
				r.Post("/{id}/points", h.RouteHandler.ReplacePoints)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleUser))
				r.Route("/vehicles", func(r chi.Router) {
					r.Post("/", h.VehicleHandler.CreateVehicle)
					r.Get("/", h.VehicleHandler.GetVehicles)
					r.Put("/{id}/assign", h.VehicleHandler.AssignDriver)
					r.Delete("/{id}", h.VehicleHandler.DeleteVehicle)
				})
				r.Route("/drivers", func(r chi.Router) {
					r.Use(auth.RequireKind(auth.KindLegal))
					r.Post("/", h.DriverHandler.CreateDriver)
					r.Get("/", h.DriverHandler.GetDrivers)
					r.Delete("/{id}", h.DriverHandler.DeleteDriver)
					r.Post("/{id}/deposit", h.DriverHandler.Deposit)
					r.Get("/{id}/transactions", h.DriverHandler.GetTransactions)
				})
			})

			r.Route("/driver", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleDriver))
				r.Get("/profile", h.DriverHandler.GetProfile)
				r.Get("/vehicle", h.DriverHandler.GetVehicle)
				r.Get("/routes", h.RouteHandler.GetRoutes)
				r.Get("/transactions", h.DriverHandler.GetOwnTransactions)
				r.Post("/toll-payment", h.DriverHandler.TollPayment)
				r.Post("/routes/{id}/pay", h.DriverHandler.PayRoute)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin))
				r.Get("/users", h.AdminHandler.GetUsers)
				r.Post("/users", h.AdminHandler.CreateUser)
				r.Delete("/users/{id}", h.AdminHandler.DeleteUser)
				r.Get("/vehicles", h.AdminHandler.GetVehicles)
				r.Put("/vehicles/{id}", h.AdminHandler.UpdateVehicle)
				r.Delete("/vehicles/{id}", h.AdminHandler.DeleteVehicle)
				r.Get("/routes", h.AdminHandler.GetRoutes)
				r.Delete("/routes/{id}", h.AdminHandler.DeleteRoute)
				r.Get("/roads", h.RouteHandler.GetRoads)
				r.Post("/roads", h.AdminHandler.CreateRoad)
				r.Delete("/roads/{id}", h.AdminHandler.DeleteRoad)
				r.Post("/vignette-purchase-points", h.AdminHandler.CreateVignettePoint)
				r.Delete("/vignette-purchase-points/{id}", h.AdminHandler.DeleteVignettePoint)
			})
		})
	})

	return r
}
