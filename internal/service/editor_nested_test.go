package service

import (
	"errors"
	"testing"

	"github.com/webprime/internal/store"
)

func beginServiceDraft(t *testing.T, e *EditorService) {
	t.Helper()
	if _, err := e.BeginEdit(KindServices, "service-web"); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
}

func TestNestedOpsRequireServiceDraft(t *testing.T) {
	e := newTestEditor(seededStore(t))

	if _, err := e.AddFeature(); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("AddFeature while idle = %v, want ErrNoActiveSession", err)
	}

	if _, err := e.BeginCreate(KindPosts); err != nil {
		t.Fatalf("BeginCreate failed: %v", err)
	}
	if _, err := e.AddFAQ(); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("AddFAQ on a post draft = %v, want ErrKindMismatch", err)
	}
}

func TestFeatureLifecycle(t *testing.T) {
	e := newTestEditor(seededStore(t))
	beginServiceDraft(t, e)

	state, err := e.AddFeature()
	if err != nil {
		t.Fatalf("AddFeature failed: %v", err)
	}
	n := len(state.Service.Features)

	title := "Realtime Reports"
	desc := "Scan data refreshed every minute."
	state, err = e.UpdateFeature(n-1, FeaturePatch{Title: &title, Desc: &desc})
	if err != nil {
		t.Fatalf("UpdateFeature failed: %v", err)
	}
	got := state.Service.Features[n-1]
	if got.Title != title || got.Desc != desc {
		t.Fatalf("feature = %+v, want %q/%q", got, title, desc)
	}

	state, err = e.RemoveFeature(n - 1)
	if err != nil {
		t.Fatalf("RemoveFeature failed: %v", err)
	}
	if len(state.Service.Features) != n-1 {
		t.Fatalf("feature count = %d, want %d", len(state.Service.Features), n-1)
	}

	if _, err := e.UpdateFeature(99, FeaturePatch{}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("UpdateFeature(99) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMoveFeatureBoundaries(t *testing.T) {
	e := newTestEditor(seededStore(t))
	beginServiceDraft(t, e)

	before := e.State().Service.Features
	if len(before) < 2 {
		t.Fatal("seed service needs at least two features for this test")
	}

	// Moving the first entry up is a no-op.
	state, err := e.MoveFeature(0, DirectionUp)
	if err != nil {
		t.Fatalf("MoveFeature failed: %v", err)
	}
	if state.Service.Features[0] != before[0] {
		t.Fatal("moving the first feature up must not change order")
	}

	state, err = e.MoveFeature(0, DirectionDown)
	if err != nil {
		t.Fatalf("MoveFeature down failed: %v", err)
	}
	if state.Service.Features[0] != before[1] || state.Service.Features[1] != before[0] {
		t.Fatal("expected the first two features to swap")
	}
}

func TestAddProcessStepAutoNumbers(t *testing.T) {
	e := newTestEditor(seededStore(t))
	beginServiceDraft(t, e)

	n := len(e.State().Service.Process)
	state, err := e.AddProcessStep()
	if err != nil {
		t.Fatalf("AddProcessStep failed: %v", err)
	}
	want := "03"
	if n != 2 {
		t.Fatalf("seed process length = %d, expected 2", n)
	}
	if got := state.Service.Process[n].Step; got != want {
		t.Fatalf("auto step = %q, want %q", got, want)
	}
}

func TestPricingPlanLifecycle(t *testing.T) {
	e := newTestEditor(seededStore(t))
	beginServiceDraft(t, e)

	state, id, err := e.AddPricingPlan()
	if err != nil {
		t.Fatalf("AddPricingPlan failed: %v", err)
	}
	if id == "" {
		t.Fatal("AddPricingPlan must return the new plan id")
	}
	added := state.Service.PricingPlans[len(state.Service.PricingPlans)-1]
	if added.Name != "New Plan" || added.Price != "₹0" || added.CtaText != "Get Started" {
		t.Fatalf("plan defaults wrong: %+v", added)
	}

	name := "Scale"
	highlighted := true
	state, err = e.UpdatePricingPlan(id, PricingPlanPatch{Name: &name, IsHighlighted: &highlighted})
	if err != nil {
		t.Fatalf("UpdatePricingPlan failed: %v", err)
	}
	updated := state.Service.PricingPlans[len(state.Service.PricingPlans)-1]
	if updated.Name != "Scale" || !updated.IsHighlighted {
		t.Fatalf("plan after patch: %+v", updated)
	}

	if _, err := e.UpdatePricingPlan("ghost", PricingPlanPatch{}); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("UpdatePricingPlan(ghost) = %v, want ErrRecordNotFound", err)
	}

	if _, err := e.RemovePricingPlan(id); err != nil {
		t.Fatalf("RemovePricingPlan failed: %v", err)
	}
	if _, err := e.RemovePricingPlan(id); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("second remove = %v, want ErrRecordNotFound", err)
	}
}

func TestPlanBenefitEditsStayInBuffer(t *testing.T) {
	st := seededStore(t)
	e := newTestEditor(st)
	beginServiceDraft(t, e)

	state, err := e.AddPlanBenefit("p1")
	if err != nil {
		t.Fatalf("AddPlanBenefit failed: %v", err)
	}
	var plan *store.PricingPlan
	for i := range state.Service.PricingPlans {
		if state.Service.PricingPlans[i].ID == "p1" {
			plan = &state.Service.PricingPlans[i]
		}
	}
	if plan == nil {
		t.Fatal("plan p1 missing from draft")
	}
	last := len(plan.Benefits) - 1
	if plan.Benefits[last] != "New Benefit Point" {
		t.Fatalf("default benefit = %q", plan.Benefits[last])
	}

	if _, err := e.UpdatePlanBenefit("p1", last, "Free SSL"); err != nil {
		t.Fatalf("UpdatePlanBenefit failed: %v", err)
	}
	if _, err := e.UpdatePlanBenefit("p1", 99, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("UpdatePlanBenefit(99) = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := e.RemovePlanBenefit("p1", last); err != nil {
		t.Fatalf("RemovePlanBenefit failed: %v", err)
	}

	// Nothing above may leak into the store before commit.
	stored, _ := st.ServiceByID("service-web")
	for _, p := range stored.PricingPlans {
		for _, b := range p.Benefits {
			if b == "Free SSL" {
				t.Fatal("buffered benefit edit leaked into the store")
			}
		}
	}

	e.Discard()
	after, _ := st.ServiceByID("service-web")
	if len(after.PricingPlans[0].Benefits) != 3 {
		t.Fatalf("benefits after discard = %d, want seed count 3", len(after.PricingPlans[0].Benefits))
	}
}

func TestMovePricingPlan(t *testing.T) {
	e := newTestEditor(seededStore(t))
	beginServiceDraft(t, e)

	before := e.State().Service.PricingPlans
	state, err := e.MovePricingPlan(before[1].ID, DirectionUp)
	if err != nil {
		t.Fatalf("MovePricingPlan failed: %v", err)
	}
	if state.Service.PricingPlans[0].ID != before[1].ID {
		t.Fatal("expected plan to move up one slot")
	}

	// Boundary move is a no-op.
	state, err = e.MovePricingPlan(state.Service.PricingPlans[0].ID, DirectionUp)
	if err != nil {
		t.Fatalf("boundary move failed: %v", err)
	}
	if state.Service.PricingPlans[0].ID != before[1].ID {
		t.Fatal("boundary move must not change order")
	}
}
