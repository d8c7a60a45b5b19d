package service

import (
	"fmt"

	"github.com/webprime/internal/store"
)

// Nested sub-editors operate purely on the in-memory service draft. They
// never touch the outer collection, so a Discard on the session rolls
// every nested edit back in one step.

// FeaturePatch is a partial update for one capability block.
type FeaturePatch struct {
	Title *string `json:"title"`
	Desc  *string `json:"desc"`
}

// AddFeature appends an empty capability block to the draft.
func (e *EditorService) AddFeature() (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	draft.Features = append(draft.Features, store.Feature{})
	return e.stateLocked(), nil
}

// UpdateFeature merges a patch into the block at index i.
func (e *EditorService) UpdateFeature(i int, p FeaturePatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.Features) {
		return EditorState{}, ErrIndexOutOfRange
	}
	if p.Title != nil {
		draft.Features[i].Title = *p.Title
	}
	if p.Desc != nil {
		draft.Features[i].Desc = *p.Desc
	}
	return e.stateLocked(), nil
}

// RemoveFeature splices out the block at index i.
func (e *EditorService) RemoveFeature(i int) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.Features) {
		return EditorState{}, ErrIndexOutOfRange
	}
	draft.Features = append(draft.Features[:i], draft.Features[i+1:]...)
	return e.stateLocked(), nil
}

// MoveFeature swaps the block at index i with its neighbor. Moves past
// either end are harmless no-ops.
func (e *EditorService) MoveFeature(i int, dir Direction) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.Features) {
		return EditorState{}, ErrIndexOutOfRange
	}
	j := neighborIndex(i, dir)
	if j >= 0 && j < len(draft.Features) {
		draft.Features[i], draft.Features[j] = draft.Features[j], draft.Features[i]
	}
	return e.stateLocked(), nil
}

// ProcessStepPatch is a partial update for one timeline entry.
type ProcessStepPatch struct {
	Step  *string `json:"step"`
	Title *string `json:"title"`
	Desc  *string `json:"desc"`
}

// AddProcessStep appends a timeline entry numbered after the last one.
func (e *EditorService) AddProcessStep() (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	draft.Process = append(draft.Process, store.ProcessStep{
		Step: fmt.Sprintf("%02d", len(draft.Process)+1),
	})
	return e.stateLocked(), nil
}

// UpdateProcessStep merges a patch into the entry at index i.
func (e *EditorService) UpdateProcessStep(i int, p ProcessStepPatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.Process) {
		return EditorState{}, ErrIndexOutOfRange
	}
	if p.Step != nil {
		draft.Process[i].Step = *p.Step
	}
	if p.Title != nil {
		draft.Process[i].Title = *p.Title
	}
	if p.Desc != nil {
		draft.Process[i].Desc = *p.Desc
	}
	return e.stateLocked(), nil
}

// RemoveProcessStep splices out the entry at index i.
func (e *EditorService) RemoveProcessStep(i int) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.Process) {
		return EditorState{}, ErrIndexOutOfRange
	}
	draft.Process = append(draft.Process[:i], draft.Process[i+1:]...)
	return e.stateLocked(), nil
}

// FAQPatch is a partial update for one question/answer pair.
type FAQPatch struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// AddFAQ appends an empty question/answer pair.
func (e *EditorService) AddFAQ() (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	draft.FAQs = append(draft.FAQs, store.FAQ{})
	return e.stateLocked(), nil
}

// UpdateFAQ merges a patch into the pair at index i.
func (e *EditorService) UpdateFAQ(i int, p FAQPatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.FAQs) {
		return EditorState{}, ErrIndexOutOfRange
	}
	if p.Question != nil {
		draft.FAQs[i].Question = *p.Question
	}
	if p.Answer != nil {
		draft.FAQs[i].Answer = *p.Answer
	}
	return e.stateLocked(), nil
}

// RemoveFAQ splices out the pair at index i.
func (e *EditorService) RemoveFAQ(i int) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	if i < 0 || i >= len(draft.FAQs) {
		return EditorState{}, ErrIndexOutOfRange
	}
	draft.FAQs = append(draft.FAQs[:i], draft.FAQs[i+1:]...)
	return e.stateLocked(), nil
}

// PricingPlanPatch is a partial update for one tier. Plans are addressed
// by their own id rather than by index.
type PricingPlanPatch struct {
	Name          *string `json:"name"`
	Price         *string `json:"price"`
	Description   *string `json:"description"`
	CtaText       *string `json:"ctaText"`
	IsHighlighted *bool   `json:"isHighlighted"`
}

// AddPricingPlan appends a default tier and returns its id.
func (e *EditorService) AddPricingPlan() (EditorState, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, "", err
	}
	id := e.newPlanID(draft)
	draft.PricingPlans = append(draft.PricingPlans, store.PricingPlan{
		ID:       id,
		Name:     "New Plan",
		Price:    "₹0",
		Benefits: []string{},
		CtaText:  "Get Started",
	})
	return e.stateLocked(), id, nil
}

// UpdatePricingPlan merges a patch into the tier with the given id.
func (e *EditorService) UpdatePricingPlan(planID string, p PricingPlanPatch) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	plan := findPlan(draft, planID)
	if plan == nil {
		return EditorState{}, ErrRecordNotFound
	}
	if p.Name != nil {
		plan.Name = *p.Name
	}
	if p.Price != nil {
		plan.Price = *p.Price
	}
	if p.Description != nil {
		plan.Description = *p.Description
	}
	if p.CtaText != nil {
		plan.CtaText = *p.CtaText
	}
	if p.IsHighlighted != nil {
		plan.IsHighlighted = *p.IsHighlighted
	}
	return e.stateLocked(), nil
}

// RemovePricingPlan deletes the tier with the given id.
func (e *EditorService) RemovePricingPlan(planID string) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	for i := range draft.PricingPlans {
		if draft.PricingPlans[i].ID == planID {
			draft.PricingPlans = append(draft.PricingPlans[:i], draft.PricingPlans[i+1:]...)
			return e.stateLocked(), nil
		}
	}
	return EditorState{}, ErrRecordNotFound
}

// MovePricingPlan swaps the tier with its neighbor. Moves past either end
// are harmless no-ops.
func (e *EditorService) MovePricingPlan(planID string, dir Direction) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	pos := -1
	for i := range draft.PricingPlans {
		if draft.PricingPlans[i].ID == planID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return EditorState{}, ErrRecordNotFound
	}
	j := neighborIndex(pos, dir)
	if j >= 0 && j < len(draft.PricingPlans) {
		draft.PricingPlans[pos], draft.PricingPlans[j] = draft.PricingPlans[j], draft.PricingPlans[pos]
	}
	return e.stateLocked(), nil
}

// AddPlanBenefit appends a default bullet to the tier's benefit list.
func (e *EditorService) AddPlanBenefit(planID string) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	plan := findPlan(draft, planID)
	if plan == nil {
		return EditorState{}, ErrRecordNotFound
	}
	plan.Benefits = append(plan.Benefits, "New Benefit Point")
	return e.stateLocked(), nil
}

// UpdatePlanBenefit rewrites the bullet at index i of the tier.
func (e *EditorService) UpdatePlanBenefit(planID string, i int, text string) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	plan := findPlan(draft, planID)
	if plan == nil {
		return EditorState{}, ErrRecordNotFound
	}
	if i < 0 || i >= len(plan.Benefits) {
		return EditorState{}, ErrIndexOutOfRange
	}
	plan.Benefits[i] = text
	return e.stateLocked(), nil
}

// RemovePlanBenefit splices out the bullet at index i of the tier.
func (e *EditorService) RemovePlanBenefit(planID string, i int) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft, err := e.serviceDraftLocked()
	if err != nil {
		return EditorState{}, err
	}
	plan := findPlan(draft, planID)
	if plan == nil {
		return EditorState{}, ErrRecordNotFound
	}
	if i < 0 || i >= len(plan.Benefits) {
		return EditorState{}, ErrIndexOutOfRange
	}
	plan.Benefits = append(plan.Benefits[:i], plan.Benefits[i+1:]...)
	return e.stateLocked(), nil
}

func findPlan(draft *store.Service, planID string) *store.PricingPlan {
	for i := range draft.PricingPlans {
		if draft.PricingPlans[i].ID == planID {
			return &draft.PricingPlans[i]
		}
	}
	return nil
}

// newPlanID is time-based like record ids but only needs to be unique
// within the draft's plan list.
func (e *EditorService) newPlanID(draft *store.Service) string {
	base := e.now().UnixMilli()
	for {
		id := fmt.Sprintf("plan-%d", base)
		if findPlan(draft, id) == nil {
			return id
		}
		base++
	}
}

func neighborIndex(i int, dir Direction) int {
	if dir == DirectionUp {
		return i - 1
	}
	return i + 1
}
