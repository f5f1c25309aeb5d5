package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/mkarpov/tollgate/docs"
	"github.com/mkarpov/tollgate/internal/handlers/admin"
	"github.com/mkarpov/tollgate/internal/handlers/auth"
	"github.com/mkarpov/tollgate/internal/handlers/drivers"
	"github.com/mkarpov/tollgate/internal/handlers/routes"
	"github.com/mkarpov/tollgate/internal/handlers/vehicles"
	"github.com/mkarpov/tollgate/internal/service"
	pkgauth "github.com/mkarpov/tollgate/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      auth.NewMockService(ctrl),
		VehicleService:   vehicles.NewMockService(ctrl),
		DriverService:    drivers.NewMockService(ctrl),
		RouteService:     routes.NewMockService(ctrl),
		ReferenceService: admin.NewMockReferenceService(ctrl),
		AdminService:     admin.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockVehicleHandler := NewMockVehicleHandler(ctrl)
	mockDriverHandler := NewMockDriverHandler(ctrl)
	mockRouteHandler := NewMockRouteHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDriverHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockRouteHandler.EXPECT().GetVignettePoints(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		VehicleHandler: mockVehicleHandler,
		DriverHandler:  mockDriverHandler,
		RouteHandler:   mockRouteHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/register", http.StatusOK},
		{"POST", "/api/login", http.StatusOK},
		{"POST", "/api/drivers/login", http.StatusOK},
		{"GET", "/api/vignette-purchase-points", http.StatusOK},
		{"GET", "/api/user", http.StatusUnauthorized},
		{"GET", "/api/roads", http.StatusUnauthorized},
		{"POST", "/api/routes", http.StatusUnauthorized},
		{"GET", "/api/routes", http.StatusUnauthorized},
		{"GET", "/api/routes/report", http.StatusUnauthorized},
		{"POST", "/api/vehicles", http.StatusUnauthorized},
		{"GET", "/api/vehicles", http.StatusUnauthorized},
		{"POST", "/api/drivers", http.StatusUnauthorized},
		{"GET", "/api/driver/profile", http.StatusUnauthorized},
		{"POST", "/api/driver/toll-payment", http.StatusUnauthorized},
		{"GET", "/api/admin/users", http.StatusUnauthorized},
		{"POST", "/api/admin/roads", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDriverManagementRequiresLegalKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverHandler := NewMockDriverHandler(ctrl)
	mockDriverHandler.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).AnyTimes()
	mockDriverHandler.EXPECT().GetDrivers(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    NewMockAuthHandler(ctrl),
		VehicleHandler: NewMockVehicleHandler(ctrl),
		DriverHandler:  mockDriverHandler,
		RouteHandler:   NewMockRouteHandler(ctrl),
		AdminHandler:   NewMockAdminHandler(ctrl),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &pkgauth.JWTService{}
	token := func(kind string) string {
		signed, err := jwtService.GenerateJWT(pkgauth.Claims{
			UserID:   2,
			Username: "owner",
			Role:     pkgauth.RoleUser,
			Kind:     kind,
		}, time.Now().Add(pkgauth.TokenTTL))
		assert.NoError(t, err)
		return signed
	}

	tests := []struct {
		name   string
		method string
		url    string
		kind   string
		status int
	}{
		{"Legal entity creates driver", "POST", "/api/drivers", pkgauth.KindLegal, http.StatusOK},
		{"Legal entity lists drivers", "GET", "/api/drivers", pkgauth.KindLegal, http.StatusOK},
		{"Individual cannot create driver", "POST", "/api/drivers", pkgauth.KindIndividual, http.StatusForbidden},
		{"Individual cannot list drivers", "GET", "/api/drivers", pkgauth.KindIndividual, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token(tt.kind))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
