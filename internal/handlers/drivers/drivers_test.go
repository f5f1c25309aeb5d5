package drivers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/service/driverservice"
	pkgauth "github.com/mkarpov/tollgate/pkg/auth"
)

func NewMock(t *testing.T) (*DriverHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func requestWithClaims(method, url, body string, claims *pkgauth.Claims, params map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, url, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, url, nil)
	}
	ctx := context.WithValue(r.Context(), pkgauth.ClaimsKey, claims)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestPayRouteHandler(t *testing.T) {
	handler, service := NewMock(t)
	claims := &pkgauth.Claims{UserID: 5, Role: pkgauth.RoleDriver}

	tests := []struct {
		name         string
		routeID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Route paid",
			routeID: "7",
			prepareMock: func() {
				service.EXPECT().PayRoute(gomock.Any(), 5, 7).
					Return(decimal.RequireFromString("57.50"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Insufficient funds",
			routeID: "7",
			prepareMock: func() {
				service.EXPECT().PayRoute(gomock.Any(), 5, 7).
					Return(decimal.Zero, &driverservice.InsufficientFundsError{
						Required:  decimal.RequireFromString("42.50"),
						Available: decimal.RequireFromString("10"),
					})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Route of another vehicle",
			routeID: "7",
			prepareMock: func() {
				service.EXPECT().PayRoute(gomock.Any(), 5, 7).
					Return(decimal.Zero, driverservice.ErrRouteNotAssigned)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Route not found",
			routeID: "99",
			prepareMock: func() {
				service.EXPECT().PayRoute(gomock.Any(), 5, 99).
					Return(decimal.Zero, driverservice.ErrRouteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid route id",
			routeID:      "abc",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := requestWithClaims(http.MethodPost, "/driver/routes/"+tt.routeID+"/pay", "", claims,
				map[string]string{"id": tt.routeID})
			w := httptest.NewRecorder()

			handler.PayRoute(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			switch tt.name {
			case "Route paid":
				var body dto.PayRouteResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.NewBalance.Equal(decimal.RequireFromString("57.50")))
			case "Insufficient funds":
				var body dto.InsufficientFundsDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "Insufficient funds", body.Message)
				assert.True(t, body.Required.Equal(decimal.RequireFromString("42.50")))
				assert.True(t, body.Available.Equal(decimal.RequireFromString("10")))
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)
	claims := &pkgauth.Claims{UserID: 1, Role: pkgauth.RoleUser}

	tests := []struct {
		name         string
		driverID     string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Deposit applied",
			driverID: "5",
			body:     `{"amount":"50","card_number":"4561261212345467"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, 5, gomock.Any()).
					Return(decimal.RequireFromString("150"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Invalid amount",
			driverID: "5",
			body:     `{"amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, 5, gomock.Any()).
					Return(decimal.Zero, driverservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			driverID:     "5",
			body:         `{"amount":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Foreign driver",
			driverID: "5",
			body:     `{"amount":"50"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, 5, gomock.Any()).
					Return(decimal.Zero, driverservice.ErrDriverNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := requestWithClaims(http.MethodPost, "/drivers/"+tt.driverID+"/deposit", tt.body, claims,
				map[string]string{"id": tt.driverID})
			w := httptest.NewRecorder()

			handler.Deposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateDriverHandler(t *testing.T) {
	handler, service := NewMock(t)
	claims := &pkgauth.Claims{UserID: 1, Role: pkgauth.RoleUser}
	vehicleID := 10

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Driver created",
			body: `{"vehicle_id":10,"last_name":"Ivanov","initials":"I.I.","login":"driver1","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().CreateDriver(gomock.Any(), 1, gomock.Any()).
					Return(&domain.Driver{ID: 5, UserID: 1, VehicleID: &vehicleID, Login: "driver1"}, nil)
				service.EXPECT().VehicleOf(gomock.Any(), gomock.Any()).
					Return(&domain.Vehicle{ID: 10, LicensePlate: "1234 AB-7"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Login already taken",
			body: `{"vehicle_id":10,"login":"driver1","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().CreateDriver(gomock.Any(), 1, gomock.Any()).
					Return(nil, driverservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Vehicle not found",
			body: `{"vehicle_id":99,"login":"driver1","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().CreateDriver(gomock.Any(), 1, gomock.Any()).
					Return(nil, driverservice.ErrVehicleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := requestWithClaims(http.MethodPost, "/drivers", tt.body, claims, nil)
			w := httptest.NewRecorder()

			handler.CreateDriver(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DriverResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.ID)
				assert.Equal(t, "1234 AB-7", body.LicensePlate)
			}
		})
	}
}
