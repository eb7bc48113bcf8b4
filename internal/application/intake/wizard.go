// Package intake implements the multi-step customer onboarding wizard: a
// strictly linear four-step form with per-step validation, cross-field
// derivation and a double-checked submit. Each Wizard instance owns one
// isolated dialog session; persistence and duplicate checking are injected.
package intake

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

// Step is the wizard cursor position.
type Step int

// Ordered wizard steps. Navigation is strictly linear, no skipping.
const (
	StepBasic Step = iota
	StepLocation
	StepNetwork
	StepPackage

	lastStep = StepPackage
)

// Wizard modes.
const (
	ModeAdd  = "add"
	ModeEdit = "edit"
)

// SentinelNone is the placeholder a single-select control uses for "no
// selection". It must translate to NULL before persistence.
const SentinelNone = "none"

var (
	phoneRe = regexp.MustCompile(`^01\d{9}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// PackageOption is a selectable bandwidth plan supplied at dialog-open time.
type PackageOption struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	ValidityDays int // 0 means unspecified, defaults to 30
}

// AreaOption is a selectable coverage area.
type AreaOption struct {
	ID   string
	Name string
}

// RouterOption is a selectable MikroTik router.
type RouterOption struct {
	ID   string
	Name string
}

// Form holds every intake field of the dialog.
type Form struct {
	Name           string
	Phone          string
	Email          string
	NIDNumber      string
	Address        string
	AreaID         string // may hold SentinelNone
	MikrotikID     string // may hold SentinelNone
	PPPoEUsername  string
	PPPoEPassword  string
	PackageID      string
	ConnectionDate time.Time
	ExpiryDate     time.Time
	MonthlyBill    decimal.Decimal
	Status         string
	Notes          string
}

// Config wires a wizard instance. Packages, Areas and Routers are the
// reference data snapshot taken when the dialog opens.
type Config struct {
	Mode          string // ModeAdd | ModeEdit
	TenantID      string
	CustomerID    string // required in edit mode
	Reseller      bool   // reseller-scoped writes drop nid_number
	CanEditStatus bool   // edit mode: whether the payload may carry status
	Packages      []PackageOption
	Areas         []AreaOption
	Routers       []RouterOption
	Checker       UsernameChecker
	Writer        CustomerWriter
	Now           func() time.Time // test hook; defaults to time.Now
}

// Wizard is one dialog session. Not safe for concurrent use by itself; the
// HTTP layer serializes access per session.
type Wizard struct {
	cfg     Config
	step    Step
	form    Form
	errs    map[string]string
	loading bool
	done    bool
}

// New opens a wizard in add mode with an empty form. When exactly one area or
// router option exists it is preselected, so single-site operators skip the
// location step untouched.
func New(cfg Config) *Wizard {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeAdd
	}
	w := &Wizard{cfg: cfg, errs: map[string]string{}}
	if cfg.Mode == ModeAdd {
		now := cfg.Now()
		w.form.ConnectionDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		w.form.Status = entity.CustomerStatusPending
		if len(cfg.Areas) == 1 {
			w.form.AreaID = cfg.Areas[0].ID
		}
		if len(cfg.Routers) == 1 {
			w.form.MikrotikID = cfg.Routers[0].ID
		}
	}
	return w
}

// NewEdit opens a wizard in edit mode hydrated from an existing customer.
// No derivations fire in edit mode; every field is what the record says.
func NewEdit(cfg Config, c *entity.Customer) *Wizard {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.Mode = ModeEdit
	cfg.CustomerID = c.ID
	w := &Wizard{cfg: cfg, errs: map[string]string{}}
	w.form = Form{
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		NIDNumber:      c.NIDNumber,
		Address:        c.Address,
		PPPoEUsername:  c.PPPoEUsername,
		PackageID:      c.PackageID,
		ConnectionDate: c.ConnectionDate,
		ExpiryDate:     c.ExpiryDate,
		MonthlyBill:    c.MonthlyBill,
		Status:         c.Status,
		Notes:          c.Notes,
	}
	if c.AreaID != nil {
		w.form.AreaID = *c.AreaID
	}
	if c.MikrotikID != nil {
		w.form.MikrotikID = *c.MikrotikID
	}
	return w
}

// Step returns the current cursor position.
func (w *Wizard) Step() Step { return w.step }

// Mode returns ModeAdd or ModeEdit.
func (w *Wizard) Mode() string { return w.cfg.Mode }

// Form returns a copy of the current form state.
func (w *Wizard) Form() Form { return w.form }

// Errors returns the field-keyed validation error map from the last Next or
// Submit. Empty map means the last check passed.
func (w *Wizard) Errors() map[string]string { return w.errs }

// Loading reports whether a submit is in flight.
func (w *Wizard) Loading() bool { return w.loading }

// Done reports whether the wizard finished with a successful submit.
func (w *Wizard) Done() bool { return w.done }

// ── Field setters and derivations (add-mode only side effects) ────────────────

// SetName records the customer name. In add mode, while the username field is
// currently empty, a PPPoE username candidate is derived from the name. The
// check is "is the field empty right now", so clearing the username manually
// re-arms the derivation.
func (w *Wizard) SetName(name string) {
	w.form.Name = name
	if w.cfg.Mode == ModeAdd && strings.TrimSpace(w.form.PPPoEUsername) == "" {
		w.form.PPPoEUsername = DeriveUsername(name)
	}
}

// SetPhone records the contact phone (optional, validated on Next).
func (w *Wizard) SetPhone(phone string) { w.form.Phone = phone }

// SetEmail records the contact email (optional, validated on Next).
func (w *Wizard) SetEmail(email string) { w.form.Email = email }

// SetNIDNumber records the national ID.
func (w *Wizard) SetNIDNumber(nid string) { w.form.NIDNumber = nid }

// SetAddress records the street address.
func (w *Wizard) SetAddress(addr string) { w.form.Address = addr }

// SetNotes records free-form notes.
func (w *Wizard) SetNotes(notes string) { w.form.Notes = notes }

// SetArea records the area selection (id or SentinelNone).
func (w *Wizard) SetArea(areaID string) { w.form.AreaID = areaID }

// SetRouter records the MikroTik selection (id or SentinelNone).
func (w *Wizard) SetRouter(routerID string) { w.form.MikrotikID = routerID }

// SetPPPoEUsername records a user-typed username. Any direct edit, including
// clearing the field, is taken verbatim.
func (w *Wizard) SetPPPoEUsername(u string) { w.form.PPPoEUsername = u }

// SetPPPoEPassword records the PPPoE password. In edit mode an empty value
// means "keep the stored password".
func (w *Wizard) SetPPPoEPassword(p string) { w.form.PPPoEPassword = p }

// SetStatus records the status select. Whether it reaches the payload depends
// on mode and the CanEditStatus capability.
func (w *Wizard) SetStatus(status string) { w.form.Status = status }

// SetPackage records the package selection. In add mode the expiry date and
// monthly bill are recomputed from the package.
func (w *Wizard) SetPackage(packageID string) {
	w.form.PackageID = packageID
	w.deriveFromPackage()
}

// SetConnectionDate records the connection date. In add mode the expiry date
// and monthly bill are recomputed when a package is already selected.
func (w *Wizard) SetConnectionDate(d time.Time) {
	w.form.ConnectionDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	w.deriveFromPackage()
}

func (w *Wizard) deriveFromPackage() {
	if w.cfg.Mode != ModeAdd || w.form.PackageID == "" {
		return
	}
	pkg, ok := w.findPackage(w.form.PackageID)
	if !ok {
		return
	}
	validity := pkg.ValidityDays
	if validity <= 0 {
		validity = entity.DefaultValidityDays
	}
	w.form.ExpiryDate = w.form.ConnectionDate.AddDate(0, 0, validity)
	w.form.MonthlyBill = pkg.Price
}

func (w *Wizard) findPackage(id string) (PackageOption, bool) {
	for _, p := range w.cfg.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return PackageOption{}, false
}

// ── Navigation ────────────────────────────────────────────────────────────────

// Next validates the current step only. On success the cursor advances by one
// (clamped to the last step) and true is returned; on failure the field error
// map is populated and the cursor stays.
//
// On the network step in add mode, once local checks pass, a tenant-scoped
// case-insensitive duplicate lookup runs for the username. A confirmed
// duplicate blocks with an error on pppoe_username. If the lookup itself
// fails, advancement is NOT blocked: duplicate checking is fail-open so a
// flaky backend never strands a legitimate signup.
func (w *Wizard) Next(ctx context.Context) bool {
	w.errs = w.validateStep(w.step)
	if len(w.errs) > 0 {
		return false
	}

	if w.step == StepNetwork && w.cfg.Mode == ModeAdd && w.cfg.Checker != nil {
		username := strings.TrimSpace(w.form.PPPoEUsername)
		exists, err := w.cfg.Checker.Exists(ctx, w.cfg.TenantID, username)
		if err != nil {
			log.Warn().Err(err).Str("username", username).
				Msg("pppoe username check failed, continuing without it")
		} else if exists {
			w.errs["pppoe_username"] = "this PPPoE username is already in use"
			return false
		}
	}

	if w.step < lastStep {
		w.step++
	}
	return true
}

// Previous moves the cursor back one step (clamped to the first). Nothing is
// re-validated.
func (w *Wizard) Previous() {
	if w.step > StepBasic {
		w.step--
	}
}

// ── Validation ────────────────────────────────────────────────────────────────

func (w *Wizard) validateStep(s Step) map[string]string {
	errs := map[string]string{}
	switch s {
	case StepBasic:
		if strings.TrimSpace(w.form.Name) == "" {
			errs["name"] = "name is required"
		}
		if w.form.Phone != "" && !phoneRe.MatchString(w.form.Phone) {
			errs["phone"] = "phone must be 11 digits starting with 01"
		}
		if w.form.Email != "" && !emailRe.MatchString(w.form.Email) {
			errs["email"] = "invalid email address"
		}
	case StepLocation:
		// No required fields; area and router stay optional.
	case StepNetwork:
		if strings.TrimSpace(w.form.PPPoEUsername) == "" {
			errs["pppoe_username"] = "PPPoE username is required"
		}
		if w.cfg.Mode == ModeAdd {
			if w.form.PPPoEPassword == "" {
				errs["pppoe_password"] = "PPPoE password is required"
			} else if len(w.form.PPPoEPassword) < 4 {
				errs["pppoe_password"] = "PPPoE password must be at least 4 characters"
			}
		}
		// Edit mode: empty password means "keep current", longer rules don't apply.
	case StepPackage:
		if w.form.PackageID == "" {
			errs["package_id"] = "select a package"
		}
	}
	return errs
}

// ── Submit ────────────────────────────────────────────────────────────────────

// Submit re-validates every step in order from the first, regardless of where
// the cursor sits. This is a deliberate double-check against stale or
// step-skipped state: if any step fails, the cursor jumps back to the first
// failing step and submission aborts.
//
// On a clean pass the flat payload is assembled and handed to the injected
// writer. A false result or error leaves the dialog open; the wizard only
// logs and clears its loading flag, the writer owns user-facing messaging.
// Success resets the form and marks the session done.
func (w *Wizard) Submit(ctx context.Context) bool {
	for s := StepBasic; s <= lastStep; s++ {
		if errs := w.validateStep(s); len(errs) > 0 {
			w.step = s
			w.errs = errs
			return false
		}
	}
	w.errs = map[string]string{}

	payload := w.BuildPayload()
	w.loading = true

	var ok bool
	var err error
	if w.cfg.Mode == ModeAdd {
		ok, err = w.cfg.Writer.Create(ctx, w.cfg.TenantID, payload)
	} else {
		ok, err = w.cfg.Writer.Update(ctx, w.cfg.TenantID, w.cfg.CustomerID, payload)
	}
	w.loading = false

	if err != nil || !ok {
		log.Error().Err(err).
			Str("tenant_id", w.cfg.TenantID).
			Str("mode", w.cfg.Mode).
			Msg("customer intake submit failed")
		return false
	}

	w.form = Form{}
	w.step = StepBasic
	w.done = true
	return true
}

// BuildPayload assembles the flat submit object. Selection sentinels become
// nil, nid_number is dropped for reseller-scoped writes, and add mode forces
// status=pending with due_amount mirroring the first monthly bill. In edit
// mode status requires the CanEditStatus capability and an empty password is
// left out entirely (meaning "do not change the stored password").
func (w *Wizard) BuildPayload() Payload {
	p := Payload{
		"name":            strings.TrimSpace(w.form.Name),
		"phone":           w.form.Phone,
		"email":           w.form.Email,
		"address":         w.form.Address,
		"notes":           w.form.Notes,
		"pppoe_username":  strings.TrimSpace(w.form.PPPoEUsername),
		"package_id":      w.form.PackageID,
		"connection_date": w.form.ConnectionDate,
		"expiry_date":     w.form.ExpiryDate,
		"monthly_bill":    w.form.MonthlyBill,
		"area_id":         selectionOrNil(w.form.AreaID),
		"mikrotik_id":     selectionOrNil(w.form.MikrotikID),
	}

	if !w.cfg.Reseller {
		p["nid_number"] = w.form.NIDNumber
	}

	if w.cfg.Mode == ModeAdd {
		p["pppoe_password"] = w.form.PPPoEPassword
		p["status"] = entity.CustomerStatusPending
		p["due_amount"] = w.form.MonthlyBill
		return p
	}

	if w.cfg.CanEditStatus {
		p["status"] = w.form.Status
	}
	if w.form.PPPoEPassword != "" {
		p["pppoe_password"] = w.form.PPPoEPassword
	}
	return p
}

// selectionOrNil translates the single-select sentinel and the empty string
// to nil (NULL).
func selectionOrNil(v string) interface{} {
	if v == "" || v == SentinelNone {
		return nil
	}
	return v
}
