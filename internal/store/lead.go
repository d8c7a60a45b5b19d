package store

// LeadStatus tracks how far an inquiry has been worked.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is one contact form submission, kept for the admin inbox.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	ServiceInterest string     `json:"serviceInterest"`
	Message         string     `json:"message"`
	Status          LeadStatus `json:"status"`
	Date            string     `json:"date"`
}
