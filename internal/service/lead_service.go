package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/webprime/internal/store"
)

// ErrLeadInvalid means required contact form fields were missing. The
// submission is rejected before any state changes.
var ErrLeadInvalid = errors.New("name, email and message are required")

// LeadInput is one contact form submission.
type LeadInput struct {
	Name            string
	Email           string
	Phone           string
	ServiceInterest string
	Message         string
}

// LeadService records contact form submissions for the admin inbox.
type LeadService struct {
	store *store.Store
	now   func() time.Time
}

// NewLeadService creates a LeadService instance.
func NewLeadService(st *store.Store) *LeadService {
	return &LeadService{store: st, now: time.Now}
}

// Submit validates and records an inquiry. Rejected submissions leave the
// store untouched.
func (s *LeadService) Submit(input LeadInput) (store.Lead, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || message == "" {
		return store.Lead{}, ErrLeadInvalid
	}

	lead := store.Lead{
		ID:              fmt.Sprintf("lead-%d", s.now().UnixMilli()),
		Name:            name,
		Email:           email,
		Phone:           strings.TrimSpace(input.Phone),
		ServiceInterest: strings.TrimSpace(input.ServiceInterest),
		Message:         message,
		Status:          store.LeadStatusNew,
		Date:            s.now().Format("2006-01-02"),
	}
	s.store.PrependLead(lead)
	return lead, nil
}

// List returns all recorded inquiries, newest first.
func (s *LeadService) List() []store.Lead {
	return s.store.Leads()
}
