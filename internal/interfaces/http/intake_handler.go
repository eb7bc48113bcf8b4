package http

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	appcustomer "github.com/netpulse/netpulse-api/internal/application/customer"
	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/application/intake"
	"github.com/netpulse/netpulse-api/internal/application/usecase"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

const (
	sessionTTL = time.Hour
	dateLayout = "2006-01-02"
)

// intakeSession is one open wizard dialog. The mutex serializes the wizard,
// which is not safe for concurrent use by itself.
type intakeSession struct {
	mu        sync.Mutex
	wizard    *intake.Wizard
	tenantID  string
	createdAt time.Time
}

// sessionStore keeps open intake sessions in memory. Sessions are short-lived
// dialog state, not durable data; a restart simply closes open dialogs.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*intakeSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*intakeSession)}
}

// put inserts a session and prunes expired ones.
func (s *sessionStore) put(id string, sess *intakeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-sessionTTL)
	for k, v := range s.sessions {
		if v.createdAt.Before(cutoff) {
			delete(s.sessions, k)
		}
	}
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) *intakeSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

func (s *sessionStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// IntakeHandler drives the customer intake wizard over HTTP. Each dialog is a
// server-side session; every call returns the full session state.
type IntakeHandler struct {
	customerUC *appcustomer.UseCase
	packageUC  *usecase.PackageUseCase
	areaUC     *usecase.AreaUseCase
	routerUC   *usecase.RouterUseCase
	tenantUC   *usecase.TenantUseCase
	store      *sessionStore
}

// NewIntakeHandler builds the handler.
func NewIntakeHandler(
	customerUC *appcustomer.UseCase,
	packageUC *usecase.PackageUseCase,
	areaUC *usecase.AreaUseCase,
	routerUC *usecase.RouterUseCase,
	tenantUC *usecase.TenantUseCase,
) *IntakeHandler {
	return &IntakeHandler{
		customerUC: customerUC,
		packageUC:  packageUC,
		areaUC:     areaUC,
		routerUC:   routerUC,
		tenantUC:   tenantUC,
		store:      newSessionStore(),
	}
}

// Start opens a wizard session in add or edit mode.
// POST /api/intake/sessions
func (h *IntakeHandler) Start(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.IntakeStartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}

	cfg, err := h.buildConfig(c, tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	var w *intake.Wizard
	switch in.Mode {
	case "", intake.ModeAdd:
		w = intake.New(cfg)
	case intake.ModeEdit:
		if in.CustomerID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id required for edit mode"})
		}
		customer, err := h.customerUC.GetEntity(tenantID, in.CustomerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
			}
			if errors.Is(err, domain.ErrForbidden) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		w = intake.NewEdit(cfg, customer)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode must be add or edit"})
	}

	id := uuid.New().String()
	h.store.put(id, &intakeSession{wizard: w, tenantID: tenantID, createdAt: time.Now()})
	return c.Status(fiber.StatusCreated).JSON(stateResponse(id, w))
}

// State returns the current session state.
// GET /api/intake/sessions/:id
func (h *IntakeHandler) State(c *fiber.Ctx) error {
	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return c.JSON(stateResponse(c.Params("id"), sess.wizard))
}

// SetFields applies field mutations to the form. Only fields present in the
// body are touched, mirroring field-by-field dialog editing.
// PATCH /api/intake/sessions/:id/fields
func (h *IntakeHandler) SetFields(c *fiber.Ctx) error {
	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}
	var in dto.IntakeFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	w := sess.wizard

	if in.Name != nil {
		w.SetName(*in.Name)
	}
	if in.Phone != nil {
		w.SetPhone(*in.Phone)
	}
	if in.Email != nil {
		w.SetEmail(*in.Email)
	}
	if in.NIDNumber != nil {
		w.SetNIDNumber(*in.NIDNumber)
	}
	if in.Address != nil {
		w.SetAddress(*in.Address)
	}
	if in.AreaID != nil {
		w.SetArea(*in.AreaID)
	}
	if in.MikrotikID != nil {
		w.SetRouter(*in.MikrotikID)
	}
	if in.PPPoEUsername != nil {
		w.SetPPPoEUsername(*in.PPPoEUsername)
	}
	if in.PPPoEPassword != nil {
		w.SetPPPoEPassword(*in.PPPoEPassword)
	}
	if in.PackageID != nil {
		w.SetPackage(*in.PackageID)
	}
	if in.ConnectionDate != nil {
		d, err := time.Parse(dateLayout, *in.ConnectionDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "connection_date must be YYYY-MM-DD"})
		}
		w.SetConnectionDate(d)
	}
	if in.Status != nil {
		w.SetStatus(*in.Status)
	}
	if in.Notes != nil {
		w.SetNotes(*in.Notes)
	}

	return c.JSON(stateResponse(c.Params("id"), w))
}

// Next validates the current step and advances on success.
// POST /api/intake/sessions/:id/next
func (h *IntakeHandler) Next(c *fiber.Ctx) error {
	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.wizard.Next(c.Context())
	return c.JSON(stateResponse(c.Params("id"), sess.wizard))
}

// Previous steps back without validation.
// POST /api/intake/sessions/:id/previous
func (h *IntakeHandler) Previous(c *fiber.Ctx) error {
	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.wizard.Previous()
	return c.JSON(stateResponse(c.Params("id"), sess.wizard))
}

// Submit re-validates every step and persists the customer. On success the
// session is closed.
// POST /api/intake/sessions/:id/submit
func (h *IntakeHandler) Submit(c *fiber.Ctx) error {
	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}
	id := c.Params("id")
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.wizard.Submit(c.Context()) {
		resp := stateResponse(id, sess.wizard)
		h.store.remove(id)
		return c.JSON(resp)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(stateResponse(id, sess.wizard))
}

// session resolves the session from the URL and checks tenant ownership. A nil
// session means the error response has already been written.
func (h *IntakeHandler) session(c *fiber.Ctx) (*intakeSession, error) {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	sess := h.store.get(c.Params("id"))
	if sess == nil || sess.tenantID != tenantID {
		return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "session not found"})
	}
	return sess, nil
}

// buildConfig snapshots the tenant's reference data for a new wizard.
func (h *IntakeHandler) buildConfig(c *fiber.Ctx, tenantID string) (intake.Config, error) {
	packages, err := h.packageUC.List(tenantID)
	if err != nil {
		return intake.Config{}, err
	}
	areas, err := h.areaUC.List(tenantID)
	if err != nil {
		return intake.Config{}, err
	}
	routers, err := h.routerUC.List(tenantID)
	if err != nil {
		return intake.Config{}, err
	}
	reseller, err := h.tenantUC.IsReseller(tenantID)
	if err != nil {
		return intake.Config{}, err
	}

	cfg := intake.Config{
		TenantID: tenantID,
		Reseller: reseller,
		// Staff can move customers through the pipeline but not override status.
		CanEditStatus: GetRole(c) == entity.RoleAdmin || GetRole(c) == entity.RoleSuperAdmin,
		Checker:       h.customerUC,
		Writer:        h.customerUC,
	}
	for _, p := range packages {
		cfg.Packages = append(cfg.Packages, intake.PackageOption{
			ID: p.ID, Name: p.Name, Price: p.Price, ValidityDays: p.ValidityDays,
		})
	}
	for _, a := range areas {
		cfg.Areas = append(cfg.Areas, intake.AreaOption{ID: a.ID, Name: a.Name})
	}
	for _, r := range routers {
		cfg.Routers = append(cfg.Routers, intake.RouterOption{ID: r.ID, Name: r.Name})
	}
	return cfg, nil
}

// stateResponse maps the wizard to its response DTO.
func stateResponse(id string, w *intake.Wizard) *dto.IntakeStateResponse {
	f := w.Form()
	resp := &dto.IntakeStateResponse{
		SessionID:     id,
		Mode:          w.Mode(),
		Step:          int(w.Step()),
		Name:          f.Name,
		Phone:         f.Phone,
		Email:         f.Email,
		AreaID:        f.AreaID,
		MikrotikID:    f.MikrotikID,
		PPPoEUsername: f.PPPoEUsername,
		PackageID:     f.PackageID,
		MonthlyBill:   f.MonthlyBill,
		Errors:        w.Errors(),
		Done:          w.Done(),
	}
	if !f.ConnectionDate.IsZero() {
		resp.ConnectionDate = f.ConnectionDate.Format(dateLayout)
	}
	if !f.ExpiryDate.IsZero() {
		resp.ExpiryDate = f.ExpiryDate.Format(dateLayout)
	}
	return resp
}
