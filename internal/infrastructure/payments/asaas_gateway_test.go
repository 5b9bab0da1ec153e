package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces"
)

func newTestGateway(t *testing.T, handler http.Handler) *AsaasGateway {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("ASAAS_MOCK", "")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("ASAAS_BASE_URL", srv.URL)

	g, err := NewAsaasGateway("test-key", nil)
	if err != nil {
		t.Fatalf("gateway setup failed: %v", err)
	}
	return g
}

func TestNewAsaasGateway_RequiresAPIKey(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("ASAAS_MOCK", "")

	_, err := NewAsaasGateway("", nil)
	if !errors.Is(err, ErrMissingAsaasAPIKey) {
		t.Fatalf("expected ErrMissingAsaasAPIKey, got %v", err)
	}
}

func TestAsaasGateway_CreateCustomerReusesByEmail(t *testing.T) {
	var created bool
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("access_token") != "test-key" {
			t.Errorf("missing access_token header")
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			if r.URL.Query().Get("email") != "maria@example.com" {
				t.Errorf("unexpected email filter: %s", r.URL.RawQuery)
			}
			json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"id": "cus_existing"}}})
		case r.Method == http.MethodPost && r.URL.Path == "/customers":
			created = true
			json.NewEncoder(w).Encode(map[string]any{"id": "cus_new"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	id, err := g.CreateCustomer(context.Background(), entities.Customer{FullName: "Maria Silva", Email: "maria@example.com", DocumentNumber: "11144477735"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "cus_existing" {
		t.Fatalf("expected reused customer, got %s", id)
	}
	if created {
		t.Fatal("must not create when the e-mail already exists")
	}
}

func TestAsaasGateway_CreateCustomerCreatesWhenMissing(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
		case r.Method == http.MethodPost && r.URL.Path == "/customers":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["cpfCnpj"] != "11144477735" {
				t.Errorf("unexpected create body: %v", body)
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "cus_new"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	id, err := g.CreateCustomer(context.Background(), entities.Customer{FullName: "Maria Silva", Email: "maria@example.com", DocumentNumber: "11144477735"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "cus_new" {
		t.Fatalf("expected new customer, got %s", id)
	}
}

func TestAsaasGateway_CreatePixChargeFetchesQRCode(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/payments":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["billingType"] != "PIX" {
				t.Errorf("unexpected billingType: %v", body["billingType"])
			}
			json.NewEncoder(w).Encode(map[string]any{"id": "pay_123", "status": "PENDING", "invoiceUrl": "https://invoice"})
		case r.Method == http.MethodGet && r.URL.Path == "/payments/pay_123/pixQrCode":
			json.NewEncoder(w).Encode(map[string]any{"success": true, "payload": "copia-e-cola", "encodedImage": "iVBORw0KGgo="})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	charge, err := g.CreateCharge(context.Background(), interfaces.GatewayChargeRequest{
		GatewayCustomerID: "cus_abc",
		Method:            entities.PaymentMethodPix,
		Amount:            49.90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.ID != "pay_123" || charge.Status != entities.ChargeStatusPending {
		t.Fatalf("unexpected charge: %+v", charge)
	}
	if charge.PixPayload != "copia-e-cola" || charge.PixQRImage != "iVBORw0KGgo=" {
		t.Fatalf("pix fields missing: %+v", charge)
	}
}

func TestAsaasGateway_GatewayErrorDescriptionSurfaces(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"errors": []map[string]any{{"code": "invalid_value", "description": "O valor informado é inválido"}}})
	}))

	_, err := g.CreateCharge(context.Background(), interfaces.GatewayChargeRequest{
		GatewayCustomerID: "cus_abc",
		Method:            entities.PaymentMethodPix,
		Amount:            -1,
	})
	if err == nil || err.Error() != "O valor informado é inválido" {
		t.Fatalf("expected first gateway error description, got %v", err)
	}
}

func TestAsaasGateway_EmptyChargeIDIsRejected(t *testing.T) {
	// A non-2xx JSON answer without an errors array must not produce a
	// pending charge with an empty id.
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{}`))
	}))

	_, err := g.CreateCharge(context.Background(), interfaces.GatewayChargeRequest{
		GatewayCustomerID: "cus_abc",
		Method:            entities.PaymentMethodPix,
		Amount:            49.90,
	})
	if err == nil {
		t.Fatal("expected an error for a charge response without an id")
	}
}

func TestAsaasGateway_NonJSONBodyIsTransportFailure(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>maintenance</body></html>"))
	}))

	_, err := g.GetChargeStatus(context.Background(), "pay_123")
	if !errors.Is(err, ErrNonJSONResponse) {
		t.Fatalf("expected ErrNonJSONResponse, got %v", err)
	}
}

func TestAsaasGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	g, err := NewAsaasGateway("", nil)
	if err != nil {
		t.Fatalf("mock mode must not require an api key: %v", err)
	}

	charge, err := g.CreateCharge(context.Background(), interfaces.GatewayChargeRequest{Method: entities.PaymentMethodPix, Amount: 49.90})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.Status != entities.ChargeStatusPending || charge.PixPayload == "" {
		t.Fatalf("unexpected mock pix charge: %+v", charge)
	}

	card, err := g.CreateCharge(context.Background(), interfaces.GatewayChargeRequest{Method: entities.PaymentMethodCard, Amount: 49.90})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Status != entities.ChargeStatusConfirmed {
		t.Fatalf("mock card charges confirm synchronously: %+v", card)
	}
}

func TestMapStatus(t *testing.T) {
	cases := map[string]entities.ChargeStatus{
		"RECEIVED":         entities.ChargeStatusConfirmed,
		"CONFIRMED":        entities.ChargeStatusConfirmed,
		"RECEIVED_IN_CASH": entities.ChargeStatusConfirmed,
		"OVERDUE":          entities.ChargeStatusFailed,
		"REFUNDED":         entities.ChargeStatusFailed,
		"PENDING":          entities.ChargeStatusPending,
		"AWAITING_RISK":    entities.ChargeStatusPending,
		"":                 entities.ChargeStatusPending,
	}
	for in, want := range cases {
		if got := MapStatus(in); got != want {
			t.Errorf("MapStatus(%q) = %s, want %s", in, got, want)
		}
	}
}
