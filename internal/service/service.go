package service

import (
	"github.com/mkarpov/tollgate/internal/handlers/admin"
	"github.com/mkarpov/tollgate/internal/handlers/auth"
	"github.com/mkarpov/tollgate/internal/handlers/drivers"
	"github.com/mkarpov/tollgate/internal/handlers/routes"
	"github.com/mkarpov/tollgate/internal/handlers/vehicles"

	pkgauth "github.com/mkarpov/tollgate/pkg/auth"

	"github.com/mkarpov/tollgate/internal/maps"
	"github.com/mkarpov/tollgate/internal/pg"
	"github.com/mkarpov/tollgate/internal/repo"
	"github.com/mkarpov/tollgate/internal/service/adminservice"
	"github.com/mkarpov/tollgate/internal/service/authservice"
	"github.com/mkarpov/tollgate/internal/service/driverservice"
	"github.com/mkarpov/tollgate/internal/service/referenceservice"
	"github.com/mkarpov/tollgate/internal/service/routeservice"
	"github.com/mkarpov/tollgate/internal/service/vehicleservice"
)

type Services struct {
	AuthService      auth.Service
	VehicleService   vehicles.Service
	DriverService    drivers.Service
	RouteService     routes.Service
	ReferenceService admin.ReferenceService
	AdminService     admin.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, directions maps.DirectionsClientI) *Services {
	hashService := &pkgauth.HashService{}
	jwtService := &pkgauth.JWTService{}

	authService := authservice.New(repo.Users, hashService, jwtService)
	vehicleService := vehicleservice.New(repo.Vehicles, repo.Drivers)
	driverService := driverservice.New(repo.Drivers, repo.Transactions, repo.Routes, repo.Vehicles, txManager, hashService, jwtService)
	routeService := routeservice.New(repo.Routes, repo.Vehicles, repo.Users, repo.Drivers, repo.Roads, txManager, directions)
	referenceService := referenceservice.New(repo.Roads)
	adminService := adminservice.New(repo.Users, repo.Vehicles, repo.Routes, hashService)

	return &Services{
		AuthService:      authService,
		VehicleService:   vehicleService,
		DriverService:    driverService,
		RouteService:     routeService,
		ReferenceService: referenceService,
		AdminService:     adminService,
	}
}
