package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"datebook_funnel/internal/adapter/http/handlers/mocks"
	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const registrationBody = `{
	"nome": "Maria Silva",
	"email": "maria@example.com",
	"whatsapp": "(11) 98888-7777",
	"cpfCnpj": "111.444.777-35",
	"slug": "datebook"
}`

func TestRegistrationHandler_CreateRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("field errors are itemized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		uc.EXPECT().Register(gomock.Any(), "datebook", "", gomock.Any()).
			Return(entities.Registration{}, usecase.FieldErrors{"cpfCnpj": "CNPJ inválido"})

		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(registrationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Success bool              `json:"success"`
			Fields  map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Success || body.Fields["cpfCnpj"] != "CNPJ inválido" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("gateway failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		uc.EXPECT().Register(gomock.Any(), "datebook", "", gomock.Any()).
			Return(entities.Registration{}, usecase.ErrRegistrationGateway)

		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(registrationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		uc.EXPECT().Register(gomock.Any(), "datebook", "", gomock.Any()).
			Return(entities.Registration{InternalCustomerID: "cust-1", GatewayCustomerID: "cus_abc"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(registrationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["customerId"] != "cust-1" || body["asaasCustomerId"] != "cus_abc" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
	t.Run("selected plan is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		uc.EXPECT().Register(gomock.Any(), "datebook", "vip", gomock.Any()).
			Return(entities.Registration{InternalCustomerID: "cust-1", GatewayCustomerID: "cus_abc", RedirectURL: "https://app.example/bem-vindo"}, nil)

		body := `{
			"nome": "Maria Silva",
			"email": "maria@example.com",
			"whatsapp": "(11) 98888-7777",
			"cpfCnpj": "111.444.777-35",
			"slug": "datebook",
			"plano": "vip"
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if out["redirect"] != "https://app.example/bem-vindo" {
			t.Fatalf("expected the promotional redirect, got %v", out)
		}
	})
}

func TestRegistrationHandler_CheckSiteSlugAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.GET("/v1/site-slugs/:site_slug/availability", h.CheckSiteSlugAvailability)

		uc.EXPECT().IsSiteSlugAvailable(gomock.Any(), "minhaagenda").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/site-slugs/minhaagenda/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if !body["disponivel"] {
			t.Fatalf("expected disponivel=true, got %v", body)
		}
	})

	t.Run("taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.GET("/v1/site-slugs/:site_slug/availability", h.CheckSiteSlugAvailability)

		uc.EXPECT().IsSiteSlugAvailable(gomock.Any(), "ocupado").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/site-slugs/ocupado/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["disponivel"] {
			t.Fatalf("expected disponivel=false, got %v", body)
		}
	})
}
