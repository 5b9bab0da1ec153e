package funnel

import (
	"context"
	"errors"
	"sync"
	"time"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/logger"
	"datebook_funnel/internal/usecase"
	"datebook_funnel/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// State is the funnel session state machine:
//
//	config_error                      (blocking, manual reload only)
//	registration -> payment -> pending -> confirmed | failed
//	registration -> confirmed         (promotional bypass)
//	payment -> confirmed | failed     (synchronous card result)
type State string

const (
	StateIdle         State = "idle"
	StateConfigError  State = "config_error"
	StateRegistration State = "registration"
	StatePayment      State = "payment"
	StatePending      State = "pending"
	StateConfirmed    State = "confirmed"
	StateFailed       State = "failed"
)

var (
	ErrWrongState       = errors.New("operation not allowed in current funnel state")
	ErrSubmitInFlight   = errors.New("a submission is already in flight")
	ErrSiteSlugBlocking = errors.New("site slug check pending or unavailable")
)

// Config is the single startup-time configuration object injected into the
// controller; environment detection happens before it is built, never inside
// the funnel.
type Config struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
	Debounce     time.Duration
	Countdown    time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
		PollTimeout:  DefaultPollTimeout,
		Debounce:     DefaultDebounce,
		Countdown:    5 * time.Second,
	}
}

// Navigator performs the final browser-equivalent redirect.
type Navigator interface {
	Navigate(url string)
}

// Controller sequences one funnel session: slug resolution, registration,
// payment method selection, status polling and the confirmation redirect.
// All blocking calls run on the caller's goroutine; the poller runs on its
// own and is torn down on terminal transitions and on Teardown.
type Controller struct {
	cfg       Config
	slugs     usecase.ISlugConfigUseCase
	registrar usecase.IRegistrationUseCase
	payments  usecase.IPaymentUseCase
	nav       Navigator
	log       logger.Logger
	sleep     func(time.Duration)

	mu           sync.Mutex
	state        State
	slug         string
	planCode     string
	config       entities.SlugConfig
	registration entities.Registration
	charge       entities.Charge
	inFlight     bool
	lastErr      string
	pollHandle   *Handle

	SiteSlug *SiteSlugChecker
}

func NewController(cfg Config, slugs usecase.ISlugConfigUseCase, registrar usecase.IRegistrationUseCase, payments usecase.IPaymentUseCase, nav Navigator, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	c := &Controller{
		cfg:       cfg,
		slugs:     slugs,
		registrar: registrar,
		payments:  payments,
		nav:       nav,
		log:       log,
		sleep:     time.Sleep,
		state:     StateIdle,
	}
	c.SiteSlug = NewSiteSlugChecker(cfg.Debounce, func(ctx context.Context, siteSlug string) (bool, error) {
		return registrar.IsSiteSlugAvailable(ctx, siteSlug)
	})
	return c
}

// Load resolves the slug configuration. A failure is blocking: the form is
// never rendered submittable and only a fresh Load (user reload) recovers.
func (c *Controller) Load(ctx context.Context, slug, planCode string) error {
	cfg, err := c.slugs.Resolve(ctx, slug, planCode)
	if err != nil {
		c.log.Errorf("slug config lookup failed slug=%s: %v", slug, err)
		c.setState(StateConfigError, "Configuração não encontrada. Verifique o link de acesso.")
		return err
	}

	c.mu.Lock()
	c.slug = slug
	c.planCode = planCode
	c.config = cfg
	c.state = StateRegistration
	c.lastErr = ""
	c.mu.Unlock()
	return nil
}

// SubmitRegistration sends the validated form. Both customer identifiers are
// required even when the call nominally succeeds. On promotional plans with
// a registration redirect the payment step is skipped entirely.
func (c *Controller) SubmitRegistration(ctx context.Context, customer entities.Customer) error {
	c.mu.Lock()
	if c.state != StateRegistration {
		c.mu.Unlock()
		return ErrWrongState
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if c.SiteSlug.BlocksSubmission() {
		c.mu.Unlock()
		return ErrSiteSlugBlocking
	}
	c.inFlight = true
	slug := c.slug
	planCode := c.planCode
	cfg := c.config
	c.mu.Unlock()
	defer c.clearInFlight()

	reg, err := c.registrar.Register(ctx, slug, planCode, customer)
	if err != nil {
		c.setErr("Não foi possível concluir o cadastro. Tente novamente.")
		return err
	}
	if !reg.Complete() {
		// Defensive: a success flag without both ids is still a failure.
		c.setErr("Cadastro incompleto. Tente novamente.")
		return usecase.ErrIncompleteGatewayIDs
	}

	c.mu.Lock()
	c.registration = reg
	c.mu.Unlock()

	if cfg.IsPromotional() && reg.RedirectURL != "" {
		c.log.Infof("promotional bypass slug=%s redirect=%s", slug, reg.RedirectURL)
		c.setState(StateConfirmed, "")
		c.nav.Navigate(reg.RedirectURL)
		return nil
	}

	c.setState(StatePayment, "")
	return nil
}

// GeneratePix creates a PIX charge and enters the polling state. The
// in-flight guard plus a per-attempt idempotency key keep a double click
// from creating two gateway charges.
func (c *Controller) GeneratePix(ctx context.Context) (entities.Charge, error) {
	cmd, err := c.beginCharge(entities.PaymentMethodPix, nil)
	if err != nil {
		return entities.Charge{}, err
	}
	defer c.clearInFlight()

	charge, err := c.payments.CreateCharge(ctx, cmd)
	if err != nil {
		c.setErr("Não foi possível gerar o código PIX. Tente novamente.")
		return entities.Charge{}, err
	}

	c.mu.Lock()
	c.charge = charge
	c.mu.Unlock()

	if charge.Status.Terminal() {
		c.finish(charge.Status)
		return charge, nil
	}

	c.setState(StatePending, "")
	c.startPolling(ctx, charge.ID)
	return charge, nil
}

// PayWithCard submits card details. The gateway may answer synchronously
// with a terminal status or leave the charge pending; both branches are
// handled, never assuming synchronous confirmation.
func (c *Controller) PayWithCard(ctx context.Context, card CardForm) (entities.Charge, error) {
	details := card.toGateway()
	cmd, err := c.beginCharge(entities.PaymentMethodCard, details)
	if err != nil {
		return entities.Charge{}, err
	}
	defer c.clearInFlight()

	charge, err := c.payments.CreateCharge(ctx, cmd)
	if err != nil {
		c.setErr("Pagamento não aprovado. Verifique os dados do cartão.")
		return entities.Charge{}, err
	}

	c.mu.Lock()
	c.charge = charge
	c.mu.Unlock()

	if charge.Status.Terminal() {
		c.finish(charge.Status)
		return charge, nil
	}

	c.setState(StatePending, "")
	c.startPolling(ctx, charge.ID)
	return charge, nil
}

// Teardown cancels polling and any pending debounce timer. Must be called
// when the user navigates away so no periodic work leaks.
func (c *Controller) Teardown() {
	c.mu.Lock()
	h := c.pollHandle
	c.mu.Unlock()
	if h != nil {
		h.Stop()
	}
	c.SiteSlug.Stop()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) Charge() entities.Charge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.charge
}

func (c *Controller) Registration() entities.Registration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registration
}

// RedirectURL prefers the registration-supplied URL (tenant/customer
// specific) over the one attached to the slug config.
func (c *Controller) RedirectURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registration.RedirectURL != "" {
		return c.registration.RedirectURL
	}
	return c.config.RedirectURL
}

func (c *Controller) beginCharge(method entities.PaymentMethod, card *interfaces.CardDetails) (usecase.CreateChargeCommand, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePayment && c.state != StateFailed {
		return usecase.CreateChargeCommand{}, ErrWrongState
	}
	if c.inFlight {
		return usecase.CreateChargeCommand{}, ErrSubmitInFlight
	}
	c.inFlight = true

	cmd := usecase.CreateChargeCommand{
		Slug:               c.slug,
		InternalCustomerID: c.registration.InternalCustomerID,
		GatewayCustomerID:  c.registration.GatewayCustomerID,
		Amount:             c.config.Amount,
		Method:             method,
		IdempotencyKey:     uuid.NewString(),
	}
	cmd.Card = card
	return cmd, nil
}

func (c *Controller) startPolling(ctx context.Context, chargeID string) {
	poller := NewStatusPoller(c.cfg.PollInterval, c.cfg.PollTimeout, c.log)
	h := poller.Start(ctx, func(ctx context.Context) (entities.ChargeStatus, error) {
		return c.payments.GetStatus(ctx, chargeID)
	}, func(status entities.ChargeStatus) {
		if status.Terminal() {
			c.finish(status)
		}
	})

	c.mu.Lock()
	c.pollHandle = h
	c.mu.Unlock()
}

// finish handles a terminal charge status: confirmed shows the countdown and
// redirects, failed surfaces a retry-eligible error.
func (c *Controller) finish(status entities.ChargeStatus) {
	c.mu.Lock()
	h := c.pollHandle
	c.pollHandle = nil
	if status == entities.ChargeStatusConfirmed {
		c.state = StateConfirmed
		c.lastErr = ""
	} else {
		c.state = StateFailed
		c.lastErr = "Pagamento não confirmado. Tente novamente."
	}
	c.charge.Status = status
	c.mu.Unlock()

	if h != nil {
		h.Stop()
	}
	if status == entities.ChargeStatusConfirmed {
		c.sleep(c.cfg.Countdown)
		c.nav.Navigate(c.RedirectURL())
	}
}

func (c *Controller) setState(s State, msg string) {
	c.mu.Lock()
	c.state = s
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Controller) setErr(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Controller) clearInFlight() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}
