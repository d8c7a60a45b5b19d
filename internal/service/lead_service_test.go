package service

import (
	"errors"
	"testing"
	"time"

	"github.com/webprime/internal/store"
)

func TestSubmitRecordsLead(t *testing.T) {
	st := store.New()
	leads := NewLeadService(st)
	leads.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }

	lead, err := leads.Submit(LeadInput{
		Name:            "  Priya Sharma ",
		Email:           "priya@example.com",
		Phone:           "+91 99999 00000",
		ServiceInterest: "UGC Ads",
		Message:         "We need creator ads for Diwali.",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if lead.Name != "Priya Sharma" {
		t.Fatalf("name not trimmed: %q", lead.Name)
	}
	if lead.Status != store.LeadStatusNew {
		t.Fatalf("status = %s, want new", lead.Status)
	}
	if lead.Date != "2025-06-01" {
		t.Fatalf("date = %q, want 2025-06-01", lead.Date)
	}
	if got := leads.List(); len(got) != 1 || got[0].ID != lead.ID {
		t.Fatalf("inbox = %+v", got)
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	st := store.New()
	leads := NewLeadService(st)

	cases := []LeadInput{
		{Email: "a@b.c", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@b.c"},
		{Name: "   ", Email: "a@b.c", Message: "hi"},
	}
	for _, input := range cases {
		if _, err := leads.Submit(input); !errors.Is(err, ErrLeadInvalid) {
			t.Fatalf("Submit(%+v) = %v, want ErrLeadInvalid", input, err)
		}
	}
	if len(leads.List()) != 0 {
		t.Fatal("rejected submissions must not touch the inbox")
	}
}

func TestInboxNewestFirst(t *testing.T) {
	st := store.New()
	leads := NewLeadService(st)

	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	leads.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	first, _ := leads.Submit(LeadInput{Name: "A", Email: "a@x.io", Message: "1"})
	second, _ := leads.Submit(LeadInput{Name: "B", Email: "b@x.io", Message: "2"})

	got := leads.List()
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatalf("inbox order = %v/%v, want newest first", got[0].ID, got[1].ID)
	}
}
