package intake_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netpulse/netpulse-api/internal/application/intake"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test doubles
// ──────────────────────────────────────────────────────────────────────────────

type fakeChecker struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeChecker) Exists(_ context.Context, _, _ string) (bool, error) {
	f.calls++
	return f.exists, f.err
}

type fakeWriter struct {
	ok        bool
	err       error
	created   []intake.Payload
	updated   []intake.Payload
	updatedID string
}

func (f *fakeWriter) Create(_ context.Context, _ string, p intake.Payload) (bool, error) {
	f.created = append(f.created, p)
	return f.ok, f.err
}

func (f *fakeWriter) Update(_ context.Context, _, id string, p intake.Payload) (bool, error) {
	f.updatedID = id
	f.updated = append(f.updated, p)
	return f.ok, f.err
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
}

func baseConfig(checker *fakeChecker, writer *fakeWriter) intake.Config {
	return intake.Config{
		Mode:     intake.ModeAdd,
		TenantID: "tenant-1",
		Packages: []intake.PackageOption{
			{ID: "pkg-10m", Name: "10 Mbps", Price: decimal.NewFromInt(800), ValidityDays: 30},
			{ID: "pkg-20m", Name: "20 Mbps", Price: decimal.NewFromInt(1200)},
		},
		Areas: []intake.AreaOption{
			{ID: "area-42", Name: "Mirpur 10"},
			{ID: "area-43", Name: "Uttara 7"},
		},
		Routers: []intake.RouterOption{{ID: "rt-1", Name: "core-1"}},
		Checker: checker,
		Writer:  writer,
		Now:     fixedNow,
	}
}

// fillValidForm sets every field required to clear all four steps.
func fillValidForm(w *intake.Wizard) {
	w.SetName("Rahim Uddin")
	w.SetPhone("01712345678")
	w.SetPPPoEPassword("secret9")
	w.SetPackage("pkg-10m")
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivations
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_PackageSelectionDerivesExpiryAndBill(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))

	w.SetPackage("pkg-10m")

	form := w.Form()
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), form.ExpiryDate,
		"expiry = connection date (2024-03-01) + 30 validity days")
	assert.True(t, decimal.NewFromInt(800).Equal(form.MonthlyBill),
		"monthly bill should mirror the package price")
}

func TestWizard_PackageWithoutValidityDefaultsTo30(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))

	w.SetPackage("pkg-20m") // ValidityDays unspecified

	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), w.Form().ExpiryDate)
}

func TestWizard_ConnectionDateChangeRecomputesExpiry(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))
	w.SetPackage("pkg-10m")

	w.SetConnectionDate(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC), w.Form().ExpiryDate)
}

func TestWizard_NameDerivesUsernameWhileFieldEmpty(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))

	w.SetName("John O'Brien #2")
	assert.Equal(t, "john_o_brien__2", w.Form().PPPoEUsername)

	// A direct edit wins over any later name change.
	w.SetPPPoEUsername("custom")
	w.SetName("Somebody Else")
	assert.Equal(t, "custom", w.Form().PPPoEUsername,
		"typed username must never be overwritten by derivation")

	// Clearing the field re-arms the derivation.
	w.SetPPPoEUsername("")
	w.SetName("Karim")
	assert.Equal(t, "karim", w.Form().PPPoEUsername)
}

func TestWizard_UsernameTruncatedToTwenty(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))
	w.SetName("Muhammad Abdur Rahman Chowdhury")
	assert.Len(t, w.Form().PPPoEUsername, 20)
}

func TestWizard_SoleRouterAutoSelected(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))
	form := w.Form()
	assert.Equal(t, "rt-1", form.MikrotikID, "a single router option is preselected")
	assert.Empty(t, form.AreaID, "two area options: no auto-select")
}

// ──────────────────────────────────────────────────────────────────────────────
// Step validation and navigation
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_PhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"01712345678", true},  // 11 digits, 01 prefix
		{"1712345678", false},  // 10 digits
		{"02112345678", false}, // wrong prefix
		{"", true},             // optional field
	}
	for _, tc := range cases {
		w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))
		w.SetName("Rahim")
		w.SetPhone(tc.phone)

		advanced := w.Next(context.Background())

		if tc.valid {
			assert.True(t, advanced, "phone %q should pass", tc.phone)
		} else {
			assert.False(t, advanced, "phone %q should fail", tc.phone)
			assert.Contains(t, w.Errors(), "phone")
		}
	}
}

func TestWizard_NextBlocksOnMissingName(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))

	advanced := w.Next(context.Background())

	assert.False(t, advanced)
	assert.Equal(t, intake.StepBasic, w.Step(), "cursor must not move on validation failure")
	assert.Contains(t, w.Errors(), "name")
}

func TestWizard_PreviousClampsAtFirstStep(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))
	w.Previous()
	assert.Equal(t, intake.StepBasic, w.Step())
}

func TestWizard_PasswordRules(t *testing.T) {
	w := intake.New(baseConfig(&fakeChecker{}, &fakeWriter{ok: true}))
	fillValidForm(w)
	w.SetPPPoEPassword("abc") // too short

	ctx := context.Background()
	require.True(t, w.Next(ctx))
	require.True(t, w.Next(ctx))
	assert.False(t, w.Next(ctx), "short password must block the network step")
	assert.Contains(t, w.Errors(), "pppoe_password")
}

// ──────────────────────────────────────────────────────────────────────────────
// Duplicate username check: fail-open contract
// ──────────────────────────────────────────────────────────────────────────────

func advanceToNetwork(t *testing.T, w *intake.Wizard) {
	t.Helper()
	ctx := context.Background()
	require.True(t, w.Next(ctx), "basic step should pass")
	require.True(t, w.Next(ctx), "location step has no requirements")
	require.Equal(t, intake.StepNetwork, w.Step())
}

func TestWizard_DuplicateUsernameBlocksAdvancement(t *testing.T) {
	checker := &fakeChecker{exists: true}
	w := intake.New(baseConfig(checker, &fakeWriter{ok: true}))
	fillValidForm(w)
	advanceToNetwork(t, w)

	advanced := w.Next(context.Background())

	assert.False(t, advanced)
	assert.Equal(t, intake.StepNetwork, w.Step())
	assert.Contains(t, w.Errors(), "pppoe_username")
	assert.Equal(t, 1, checker.calls)
}

func TestWizard_CheckerErrorFailsOpen(t *testing.T) {
	checker := &fakeChecker{err: errors.New("backend down")}
	w := intake.New(baseConfig(checker, &fakeWriter{ok: true}))
	fillValidForm(w)
	advanceToNetwork(t, w)

	advanced := w.Next(context.Background())

	assert.True(t, advanced, "a failing duplicate check must not block the user")
	assert.Equal(t, intake.StepPackage, w.Step())
	assert.Empty(t, w.Errors())
}

func TestWizard_EditModeSkipsDuplicateCheck(t *testing.T) {
	checker := &fakeChecker{exists: true}
	cfg := baseConfig(checker, &fakeWriter{ok: true})
	w := intake.NewEdit(cfg, existingCustomer())
	advanceToNetwork(t, w)

	assert.True(t, w.Next(context.Background()))
	assert.Zero(t, checker.calls, "edit mode never runs the duplicate query")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit and payload assembly
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_SubmitRevalidatesAllStepsAndJumpsBack(t *testing.T) {
	writer := &fakeWriter{ok: true}
	w := intake.New(baseConfig(&fakeChecker{}, writer))
	fillValidForm(w)
	ctx := context.Background()
	require.True(t, w.Next(ctx))
	require.True(t, w.Next(ctx))
	require.True(t, w.Next(ctx))

	// Invalidate an earlier step behind the cursor's back.
	w.SetPhone("bad-phone")

	assert.False(t, w.Submit(ctx))
	assert.Equal(t, intake.StepBasic, w.Step(), "cursor must jump to the first failing step")
	assert.Contains(t, w.Errors(), "phone")
	assert.Empty(t, writer.created, "nothing may be persisted on validation failure")
}

func TestWizard_SubmitAddPayload(t *testing.T) {
	writer := &fakeWriter{ok: true}
	w := intake.New(baseConfig(&fakeChecker{}, writer))
	fillValidForm(w)
	w.SetArea("area-42")
	w.SetNIDNumber("1987654321")

	require.True(t, w.Submit(context.Background()))
	require.Len(t, writer.created, 1)
	p := writer.created[0]

	assert.Equal(t, "area-42", p["area_id"])
	assert.Equal(t, "pending", p["status"], "add mode forces pending status")
	assert.Equal(t, p["monthly_bill"], p["due_amount"], "due mirrors the first bill")
	assert.Equal(t, "1987654321", p["nid_number"])
	assert.Equal(t, "secret9", p["pppoe_password"])
	assert.True(t, w.Done())
}

func TestWizard_SentinelAreaBecomesNil(t *testing.T) {
	writer := &fakeWriter{ok: true}
	w := intake.New(baseConfig(&fakeChecker{}, writer))
	fillValidForm(w)
	w.SetArea(intake.SentinelNone)

	require.True(t, w.Submit(context.Background()))
	p := writer.created[0]

	assert.Nil(t, p["area_id"], `the "none" placeholder must persist as NULL`)
}

func TestWizard_ResellerPayloadOmitsNID(t *testing.T) {
	writer := &fakeWriter{ok: true}
	cfg := baseConfig(&fakeChecker{}, writer)
	cfg.Reseller = true
	w := intake.New(cfg)
	fillValidForm(w)
	w.SetNIDNumber("1987654321")

	require.True(t, w.Submit(context.Background()))
	p := writer.created[0]

	_, present := p["nid_number"]
	assert.False(t, present, "reseller-scoped writes must not carry nid_number")
}

func TestWizard_EditPayloadStatusRequiresCapability(t *testing.T) {
	writer := &fakeWriter{ok: true}
	cfg := baseConfig(&fakeChecker{}, writer)
	cfg.CanEditStatus = false
	w := intake.NewEdit(cfg, existingCustomer())
	w.SetStatus("active") // the select shows it, the payload must not

	require.True(t, w.Submit(context.Background()))
	p := writer.updated[0]

	_, present := p["status"]
	assert.False(t, present, "status key must be absent without CanEditStatus")
}

func TestWizard_EditEmptyPasswordKeepsStored(t *testing.T) {
	writer := &fakeWriter{ok: true}
	w := intake.NewEdit(baseConfig(&fakeChecker{}, writer), existingCustomer())

	require.True(t, w.Submit(context.Background()))
	p := writer.updated[0]

	_, present := p["pppoe_password"]
	assert.False(t, present, "empty password means keep the current one")
	assert.Equal(t, "cust-7", writer.updatedID)
}

func TestWizard_WriterFalseLeavesDialogOpen(t *testing.T) {
	writer := &fakeWriter{ok: false}
	w := intake.New(baseConfig(&fakeChecker{}, writer))
	fillValidForm(w)

	assert.False(t, w.Submit(context.Background()))
	assert.False(t, w.Done(), "a rejected write leaves the session open")
	assert.False(t, w.Loading(), "loading flag must be cleared after the attempt")
	assert.NotEmpty(t, w.Form().Name, "form state survives a failed submit")
}

func TestWizard_WriterErrorLeavesDialogOpen(t *testing.T) {
	writer := &fakeWriter{err: errors.New("timeout")}
	w := intake.New(baseConfig(&fakeChecker{}, writer))
	fillValidForm(w)

	assert.False(t, w.Submit(context.Background()))
	assert.False(t, w.Done())
}

// ── helpers ───────────────────────────────────────────────────────────────────

func existingCustomer() *entity.Customer {
	area := "area-42"
	return &entity.Customer{
		ID:             "cust-7",
		TenantID:       "tenant-1",
		Name:           "Rahim Uddin",
		Phone:          "01712345678",
		AreaID:         &area,
		PPPoEUsername:  "rahim",
		PackageID:      "pkg-10m",
		ConnectionDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:     time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		MonthlyBill:    decimal.NewFromInt(800),
		Status:         "active",
	}
}
