package funnel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase"
)

type stubSlugs struct {
	cfg entities.SlugConfig
	err error
}

func (s stubSlugs) Resolve(_ context.Context, _, _ string) (entities.SlugConfig, error) {
	return s.cfg, s.err
}

type stubRegistrar struct {
	reg       entities.Registration
	err       error
	available bool

	calls atomic.Int32

	mu       sync.Mutex
	planCode string
}

func (s *stubRegistrar) Register(_ context.Context, _, planCode string, _ entities.Customer) (entities.Registration, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.planCode = planCode
	s.mu.Unlock()
	return s.reg, s.err
}

func (s *stubRegistrar) lastPlan() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planCode
}

func (s *stubRegistrar) IsSiteSlugAvailable(_ context.Context, _ string) (bool, error) {
	return s.available, nil
}

type stubPayments struct {
	charge    entities.Charge
	createErr error

	mu          sync.Mutex
	statuses    []entities.ChargeStatus
	createCalls int
	statusCalls int

	block chan struct{} // when set, CreateCharge waits on it
}

func (s *stubPayments) CreateCharge(_ context.Context, _ usecase.CreateChargeCommand) (entities.Charge, error) {
	s.mu.Lock()
	s.createCalls++
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return s.charge, s.createErr
}

func (s *stubPayments) GetStatus(_ context.Context, _ string) (entities.ChargeStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCalls++
	if len(s.statuses) == 0 {
		return entities.ChargeStatusPending, nil
	}
	status := s.statuses[0]
	if len(s.statuses) > 1 {
		s.statuses = s.statuses[1:]
	}
	return status, nil
}

func (s *stubPayments) RefreshPixQRCode(_ context.Context, _ string) (entities.Charge, error) {
	return s.charge, nil
}

func (s *stubPayments) creates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCalls
}

type recordingNav struct {
	mu   sync.Mutex
	urls []string
	ch   chan string
}

func newRecordingNav() *recordingNav {
	return &recordingNav{ch: make(chan string, 4)}
}

func (n *recordingNav) Navigate(url string) {
	n.mu.Lock()
	n.urls = append(n.urls, url)
	n.mu.Unlock()
	n.ch <- url
}

func (n *recordingNav) waitForNavigation(t *testing.T) string {
	t.Helper()
	select {
	case url := <-n.ch:
		return url
	case <-time.After(2 * time.Second):
		t.Fatal("no navigation happened")
		return ""
	}
}

func fastConfig() Config {
	return Config{
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  time.Minute,
		Debounce:     5 * time.Millisecond,
		Countdown:    time.Millisecond,
	}
}

func registrant() entities.Customer {
	return entities.Customer{
		FullName:       "Maria Silva",
		Email:          "maria@example.com",
		Whatsapp:       "11988887777",
		DocumentNumber: "111.444.777-35",
	}
}

func TestController_EndToEndPixFlow(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90, RedirectURL: "https://app.example/config"}}
	registrar := &stubRegistrar{reg: entities.Registration{
		InternalCustomerID: "cust-1",
		GatewayCustomerID:  "cus_abc",
		RedirectURL:        "https://app.example/da-inscricao",
	}}
	payments := &stubPayments{
		charge: entities.Charge{ID: "pay_123", Method: entities.PaymentMethodPix, Status: entities.ChargeStatusPending, PixPayload: "copia-e-cola"},
		statuses: []entities.ChargeStatus{
			entities.ChargeStatusPending,
			entities.ChargeStatusPending,
			entities.ChargeStatusConfirmed,
		},
	}
	nav := newRecordingNav()

	var countdowns []time.Duration
	c := NewController(fastConfig(), slugs, registrar, payments, nav, nil)
	c.sleep = func(d time.Duration) { countdowns = append(countdowns, d) }
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.State() != StateRegistration {
		t.Fatalf("expected registration state, got %s", c.State())
	}

	if err := c.SubmitRegistration(ctx, registrant()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if c.State() != StatePayment {
		t.Fatalf("expected payment state, got %s", c.State())
	}

	charge, err := c.GeneratePix(ctx)
	if err != nil {
		t.Fatalf("pix generation failed: %v", err)
	}
	if charge.PixPayload == "" {
		t.Fatalf("expected pix payload: %+v", charge)
	}
	if c.State() != StatePending {
		t.Fatalf("expected pending state, got %s", c.State())
	}

	url := nav.waitForNavigation(t)
	if url != "https://app.example/da-inscricao" {
		t.Fatalf("redirect must prefer the registration url, got %s", url)
	}
	if c.State() != StateConfirmed {
		t.Fatalf("expected confirmed state, got %s", c.State())
	}
	if len(countdowns) != 1 || countdowns[0] != time.Millisecond {
		t.Fatalf("expected one countdown before redirect, got %v", countdowns)
	}
}

func TestController_RegistrationValidationFailureBlocksFunnel(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90}}
	registrar := &stubRegistrar{err: usecase.FieldErrors{"cpfCnpj": "CNPJ inválido"}}
	payments := &stubPayments{}
	nav := newRecordingNav()

	c := NewController(fastConfig(), slugs, registrar, payments, nav, nil)
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	err := c.SubmitRegistration(ctx, registrant())
	var ferrs usecase.FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if c.State() != StateRegistration {
		t.Fatalf("failed validation must keep the registration state, got %s", c.State())
	}
	if payments.creates() != 0 {
		t.Fatal("payment initiator must never be called on validation failure")
	}
}

func TestController_PromotionalBypassSkipsPayment(t *testing.T) {
	// The promotional config belongs to the selected plan tier; the
	// registrar must receive that tier, not the tenant default.
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "promo", PlanCode: "vip", Amount: 0, RedirectURL: "https://app.example/config"}}
	registrar := &stubRegistrar{reg: entities.Registration{
		InternalCustomerID: "cust-1",
		GatewayCustomerID:  "cus_abc",
		RedirectURL:        "https://app.example/bem-vindo",
	}}
	payments := &stubPayments{}
	nav := newRecordingNav()

	c := NewController(fastConfig(), slugs, registrar, payments, nav, nil)
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "promo", "vip"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := c.SubmitRegistration(ctx, registrant()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if url := nav.waitForNavigation(t); url != "https://app.example/bem-vindo" {
		t.Fatalf("unexpected redirect: %s", url)
	}
	if c.State() != StateConfirmed {
		t.Fatalf("expected confirmed state, got %s", c.State())
	}
	if registrar.lastPlan() != "vip" {
		t.Fatalf("registrar must receive the selected plan, got %q", registrar.lastPlan())
	}
	if payments.creates() != 0 {
		t.Fatal("promotional bypass must never call the payment initiator")
	}
}

func TestController_ConfigErrorIsBlocking(t *testing.T) {
	slugs := stubSlugs{err: usecase.ErrSlugConfigNotFound}
	c := NewController(fastConfig(), slugs, &stubRegistrar{}, &stubPayments{}, newRecordingNav(), nil)
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "ghost", ""); err == nil {
		t.Fatal("expected load error")
	}
	if c.State() != StateConfigError {
		t.Fatalf("expected config_error state, got %s", c.State())
	}
	if c.LastError() == "" {
		t.Fatal("expected a blocking error message")
	}

	if err := c.SubmitRegistration(ctx, registrant()); !errors.Is(err, ErrWrongState) {
		t.Fatalf("expected ErrWrongState, got %v", err)
	}
}

func TestController_CardSynchronousConfirmation(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90, RedirectURL: "https://app.example/obrigado"}}
	registrar := &stubRegistrar{reg: entities.Registration{InternalCustomerID: "cust-1", GatewayCustomerID: "cus_abc"}}
	payments := &stubPayments{
		charge: entities.Charge{ID: "pay_123", Method: entities.PaymentMethodCard, Status: entities.ChargeStatusConfirmed},
	}
	nav := newRecordingNav()

	c := NewController(fastConfig(), slugs, registrar, payments, nav, nil)
	c.sleep = func(time.Duration) {}
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := c.SubmitRegistration(ctx, registrant()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, err := c.PayWithCard(ctx, CardForm{Number: "4111 1111 1111 1111", HolderName: "MARIA SILVA", Expiry: "12/28", CVV: "123"})
	if err != nil {
		t.Fatalf("card payment failed: %v", err)
	}

	if url := nav.waitForNavigation(t); url != "https://app.example/obrigado" {
		t.Fatalf("unexpected redirect: %s", url)
	}
	if c.State() != StateConfirmed {
		t.Fatalf("expected confirmed state, got %s", c.State())
	}
	if payments.statusCalls != 0 {
		t.Fatal("synchronous confirmation must not start polling")
	}
}

func TestController_FailedChargeAllowsRetry(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90}}
	registrar := &stubRegistrar{reg: entities.Registration{InternalCustomerID: "cust-1", GatewayCustomerID: "cus_abc"}}
	payments := &stubPayments{
		charge:   entities.Charge{ID: "pay_123", Method: entities.PaymentMethodPix, Status: entities.ChargeStatusPending},
		statuses: []entities.ChargeStatus{entities.ChargeStatusFailed},
	}
	nav := newRecordingNav()

	c := NewController(fastConfig(), slugs, registrar, payments, nav, nil)
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := c.SubmitRegistration(ctx, registrant()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := c.GeneratePix(ctx); err != nil {
		t.Fatalf("pix generation failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && c.State() != StateFailed {
		time.Sleep(5 * time.Millisecond)
	}
	if c.State() != StateFailed {
		t.Fatalf("expected failed state, got %s", c.State())
	}
	if c.LastError() == "" {
		t.Fatal("expected a retry-eligible error message")
	}

	// A failed payment may be retried by re-selecting a method.
	payments.mu.Lock()
	payments.statuses = []entities.ChargeStatus{entities.ChargeStatusConfirmed}
	payments.mu.Unlock()
	if _, err := c.GeneratePix(ctx); err != nil {
		t.Fatalf("retry after failure rejected: %v", err)
	}
}

func TestController_SubmitGuardsDoubleClick(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90}}
	registrar := &stubRegistrar{reg: entities.Registration{InternalCustomerID: "cust-1", GatewayCustomerID: "cus_abc"}}
	block := make(chan struct{})
	payments := &stubPayments{
		charge: entities.Charge{ID: "pay_123", Method: entities.PaymentMethodPix, Status: entities.ChargeStatusConfirmed},
		block:  block,
	}
	nav := newRecordingNav()

	c := NewController(fastConfig(), slugs, registrar, payments, nav, nil)
	c.sleep = func(time.Duration) {}
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := c.SubmitRegistration(ctx, registrant()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := c.GeneratePix(ctx)
		done <- err
	}()

	// Wait for the first click to reach the gateway.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && payments.creates() == 0 {
		time.Sleep(time.Millisecond)
	}

	if _, err := c.GeneratePix(ctx); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight on double click, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first click failed: %v", err)
	}
	if payments.creates() != 1 {
		t.Fatalf("double click created %d charges", payments.creates())
	}
}

func TestController_SiteSlugCheckBlocksSubmission(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90}}
	registrar := &stubRegistrar{
		reg:       entities.Registration{InternalCustomerID: "cust-1", GatewayCustomerID: "cus_abc"},
		available: false,
	}
	c := NewController(fastConfig(), slugs, registrar, &stubPayments{}, newRecordingNav(), nil)
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	c.SiteSlug.OnInput(ctx, "ocupado")
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && c.SiteSlug.State() != AvailabilityUnavailable {
		time.Sleep(time.Millisecond)
	}

	if err := c.SubmitRegistration(ctx, registrant()); !errors.Is(err, ErrSiteSlugBlocking) {
		t.Fatalf("expected ErrSiteSlugBlocking, got %v", err)
	}
	if registrar.calls.Load() != 0 {
		t.Fatal("blocked submission must not reach the registrar")
	}
}

func TestController_IncompleteRegistrationIsFailure(t *testing.T) {
	slugs := stubSlugs{cfg: entities.SlugConfig{Slug: "datebook", Amount: 49.90}}
	registrar := &stubRegistrar{reg: entities.Registration{InternalCustomerID: "cust-1"}} // missing gateway id
	c := NewController(fastConfig(), slugs, registrar, &stubPayments{}, newRecordingNav(), nil)
	defer c.Teardown()

	ctx := context.Background()
	if err := c.Load(ctx, "datebook", ""); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := c.SubmitRegistration(ctx, registrant()); !errors.Is(err, usecase.ErrIncompleteGatewayIDs) {
		t.Fatalf("expected ErrIncompleteGatewayIDs, got %v", err)
	}
	if c.State() != StateRegistration {
		t.Fatalf("expected registration state after incomplete result, got %s", c.State())
	}
}
