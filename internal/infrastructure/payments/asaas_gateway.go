package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/logger"
	"datebook_funnel/internal/usecase/interfaces"
)

var (
	ErrMissingAsaasAPIKey        = errors.New("missing ASAAS_API_KEY")
	ErrAsaasGatewayNotConfigured = errors.New("asaas gateway not configured")
	ErrNonJSONResponse           = errors.New("gateway returned a non-JSON response")
)

const defaultAsaasBaseURL = "https://api.asaas.com/v3"

// AsaasGateway talks to the Asaas REST API. All responses are decoded into
// the strict types below; an HTML-shaped or empty body is a transport
// failure, never parsed.
type AsaasGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        logger.Logger
	mockMode   bool
}

func NewAsaasGateway(apiKey string, log logger.Logger) (*AsaasGateway, error) {
	if log == nil {
		log = logger.Nop()
	}

	if isPaymentGatewayMockEnabled() {
		log.Infof("mock mode enabled")
		return &AsaasGateway{log: log, mockMode: true}, nil
	}

	if apiKey == "" {
		log.Errorf("missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}

	baseURL := strings.TrimSpace(os.Getenv("ASAAS_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultAsaasBaseURL
	}

	log.Infof("asaas client initialized base_url=%s", baseURL)
	return &AsaasGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		log:        log,
	}, nil
}

var _ interfaces.IPaymentGateway = (*AsaasGateway)(nil)

type asaasError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type asaasCustomer struct {
	ID     string       `json:"id"`
	Errors []asaasError `json:"errors"`
}

type asaasCustomerList struct {
	Data   []asaasCustomer `json:"data"`
	Errors []asaasError    `json:"errors"`
}

type asaasPayment struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	InvoiceURL string       `json:"invoiceUrl"`
	Errors     []asaasError `json:"errors"`
}

type asaasPixQRCode struct {
	Success      bool         `json:"success"`
	Payload      string       `json:"payload"`
	EncodedImage string       `json:"encodedImage"`
	Errors       []asaasError `json:"errors"`
}

// CreateCustomer reuses an existing gateway customer with the same e-mail
// before creating a new one, matching the proxy the funnel talked to.
func (g *AsaasGateway) CreateCustomer(ctx context.Context, c entities.Customer) (string, error) {
	if g != nil && g.mockMode {
		id := "cus_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Infof("mock create customer email=%s id=%s", c.Email, id)
		return id, nil
	}
	if g == nil || g.httpClient == nil {
		return "", ErrAsaasGatewayNotConfigured
	}

	g.log.Infof("create customer start email=%s", c.Email)

	var list asaasCustomerList
	query := "/customers?email=" + url.QueryEscape(c.Email)
	if err := g.doJSON(ctx, http.MethodGet, query, nil, &list); err != nil {
		g.log.Errorf("customer lookup failed email=%s: %v", c.Email, err)
		return "", err
	}
	if len(list.Data) > 0 {
		g.log.Infof("customer reused email=%s id=%s", c.Email, list.Data[0].ID)
		return list.Data[0].ID, nil
	}

	body := map[string]any{
		"name":    c.FullName,
		"email":   c.Email,
		"cpfCnpj": c.DocumentNumber,
		"phone":   c.Whatsapp,
	}
	if c.CompanyName != "" {
		body["company"] = c.CompanyName
	}
	if c.Street != "" {
		body["address"] = c.Street
	}
	if c.Number != "" {
		body["addressNumber"] = c.Number
	}
	if c.Neighborhood != "" {
		body["province"] = c.Neighborhood
	}
	if c.PostalCode != "" {
		body["postalCode"] = c.PostalCode
	}
	if c.City != "" {
		body["city"] = c.City
	}
	if c.StateCode != "" {
		body["state"] = c.StateCode
	}
	if c.Notes != "" {
		body["observations"] = c.Notes
	}

	var created asaasCustomer
	if err := g.doJSON(ctx, http.MethodPost, "/customers", body, &created); err != nil {
		g.log.Errorf("create customer failed email=%s: %v", c.Email, err)
		return "", err
	}
	if err := firstError(created.Errors); err != nil {
		g.log.Errorf("create customer rejected email=%s: %v", c.Email, err)
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("create customer: empty id in gateway response")
	}

	g.log.Infof("create customer success email=%s id=%s", c.Email, created.ID)
	return created.ID, nil
}

// CreateCharge creates the charge and, for PIX, immediately fetches the
// copy&paste payload and QR image in a follow-up call.
func (g *AsaasGateway) CreateCharge(ctx context.Context, req interfaces.GatewayChargeRequest) (interfaces.GatewayCharge, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(req), nil
	}
	if g == nil || g.httpClient == nil {
		return interfaces.GatewayCharge{}, ErrAsaasGatewayNotConfigured
	}

	g.log.Infof("create charge start customer=%s metodo=%s valor=%.2f", req.GatewayCustomerID, req.Method, req.Amount)

	body := map[string]any{
		"customer":    req.GatewayCustomerID,
		"billingType": billingType(req.Method),
		"value":       req.Amount,
		"dueDate":     req.DueDate.Format("2006-01-02"),
		"description": req.Description,
	}
	if req.Method == entities.PaymentMethodCard && req.Card != nil {
		body["creditCard"] = map[string]any{
			"holderName":  req.Card.HolderName,
			"number":      req.Card.Number,
			"expiryMonth": req.Card.ExpiryMonth,
			"expiryYear":  req.Card.ExpiryYear,
			"ccv":         req.Card.CVV,
		}
		body["creditCardHolderInfo"] = map[string]any{
			"name":          req.Card.HolderName,
			"email":         req.Card.HolderEmail,
			"cpfCnpj":       req.Card.HolderDocument,
			"postalCode":    req.Card.HolderPostalCode,
			"addressNumber": req.Card.HolderAddressNumber,
			"phone":         req.Card.HolderPhone,
		}
	}

	var payment asaasPayment
	if err := g.doJSON(ctx, http.MethodPost, "/payments", body, &payment); err != nil {
		g.log.Errorf("create charge failed customer=%s: %v", req.GatewayCustomerID, err)
		return interfaces.GatewayCharge{}, err
	}
	if err := firstError(payment.Errors); err != nil {
		g.log.Errorf("create charge rejected customer=%s: %v", req.GatewayCustomerID, err)
		return interfaces.GatewayCharge{}, err
	}
	if payment.ID == "" {
		return interfaces.GatewayCharge{}, fmt.Errorf("create charge: empty id in gateway response")
	}

	out := interfaces.GatewayCharge{
		ID:         payment.ID,
		Status:     MapStatus(payment.Status),
		InvoiceURL: payment.InvoiceURL,
	}

	if req.Method == entities.PaymentMethodPix {
		payload, image, err := g.GetPixQRCode(ctx, payment.ID)
		if err != nil {
			g.log.Errorf("pix qrcode fetch failed charge=%s: %v", payment.ID, err)
			return interfaces.GatewayCharge{}, err
		}
		out.PixPayload = payload
		out.PixQRImage = image
	}

	g.log.Infof("create charge success charge=%s status=%s", out.ID, out.Status)
	return out, nil
}

func (g *AsaasGateway) GetChargeStatus(ctx context.Context, chargeID string) (entities.ChargeStatus, error) {
	if g != nil && g.mockMode {
		return entities.ChargeStatusConfirmed, nil
	}
	if g == nil || g.httpClient == nil {
		return "", ErrAsaasGatewayNotConfigured
	}

	var payment asaasPayment
	if err := g.doJSON(ctx, http.MethodGet, "/payments/"+url.PathEscape(chargeID), nil, &payment); err != nil {
		return "", err
	}
	if err := firstError(payment.Errors); err != nil {
		return "", err
	}
	return MapStatus(payment.Status), nil
}

func (g *AsaasGateway) GetPixQRCode(ctx context.Context, chargeID string) (string, string, error) {
	if g != nil && g.mockMode {
		return "00020126mockpixpayload5204000053039865802BR", "iVBORw0KGgoMOCK=", nil
	}
	if g == nil || g.httpClient == nil {
		return "", "", ErrAsaasGatewayNotConfigured
	}

	var qr asaasPixQRCode
	if err := g.doJSON(ctx, http.MethodGet, "/payments/"+url.PathEscape(chargeID)+"/pixQrCode", nil, &qr); err != nil {
		return "", "", err
	}
	if err := firstError(qr.Errors); err != nil {
		return "", "", err
	}
	return qr.Payload, qr.EncodedImage, nil
}

// doJSON performs one request and strictly decodes the JSON answer into out.
func (g *AsaasGateway) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("access_token", g.apiKey)
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 || !json.Valid(raw) {
		g.log.Errorf("non-json body status=%d len=%d", resp.StatusCode, len(raw))
		return ErrNonJSONResponse
	}
	return json.Unmarshal(raw, out)
}

func (g *AsaasGateway) mockCharge(req interfaces.GatewayChargeRequest) interfaces.GatewayCharge {
	id := "pay_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	out := interfaces.GatewayCharge{ID: id, Status: entities.ChargeStatusPending}
	if req.Method == entities.PaymentMethodCard {
		out.Status = entities.ChargeStatusConfirmed
	}
	if req.Method == entities.PaymentMethodPix {
		out.PixPayload, out.PixQRImage, _ = g.GetPixQRCode(context.Background(), id)
	}
	g.log.Infof("mock create charge id=%s status=%s", id, out.Status)
	return out
}

func firstError(errs []asaasError) error {
	if len(errs) == 0 {
		return nil
	}
	if errs[0].Description != "" {
		return errors.New(errs[0].Description)
	}
	return errors.New("gateway error " + errs[0].Code)
}

func billingType(m entities.PaymentMethod) string {
	if m == entities.PaymentMethodCard {
		return "CREDIT_CARD"
	}
	return "PIX"
}

// MapStatus reduces the Asaas status vocabulary to the internal charge state
// machine. Unknown values stay pending so polling keeps observing them.
func MapStatus(s string) entities.ChargeStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RECEIVED", "CONFIRMED", "RECEIVED_IN_CASH":
		return entities.ChargeStatusConfirmed
	case "OVERDUE", "REFUNDED", "REFUND_REQUESTED", "CHARGEBACK_REQUESTED", "CHARGEBACK_DISPUTE", "FAILED", "CANCELED":
		return entities.ChargeStatusFailed
	default:
		return entities.ChargeStatusPending
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "ASAAS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
