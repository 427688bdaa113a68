package it

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

var validate = validator.New()

// ServiceStatus is the health snapshot of one infrastructure service.
type ServiceStatus struct {
	ServiceName      string  `json:"service_name"`
	Status           string  `json:"status"`
	ResponseTime     float64 `json:"response_time"`
	Uptime           float64 `json:"uptime"`
	LastUpdated      string  `json:"last_updated"`
	IncidentsLast24h int     `json:"incidents_last_24h"`
}

// Field exposes ServiceStatus to the query engine.
func (s ServiceStatus) Field(name string) (any, bool) {
	switch name {
	case "service_name":
		return s.ServiceName, true
	case "status":
		return s.Status, true
	case "response_time":
		return s.ResponseTime, true
	case "uptime":
		return s.Uptime, true
	case "last_updated":
		return s.LastUpdated, true
	case "incidents_last_24h":
		return s.IncidentsLast24h, true
	default:
		return nil, false
	}
}

// SupportTicket is one stored support ticket. AssignedTo and Resolution stay
// null until a workflow that this server does not model fills them in.
type SupportTicket struct {
	TicketID     string  `json:"ticket_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Priority     string  `json:"priority"`
	Category     string  `json:"category"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	ContactEmail *string `json:"contact_email"`
	AssignedTo   *string `json:"assigned_to"`
	Resolution   *string `json:"resolution"`
}

// Field exposes SupportTicket to the query engine.
func (t SupportTicket) Field(name string) (any, bool) {
	switch name {
	case "ticket_id":
		return t.TicketID, true
	case "title":
		return t.Title, true
	case "priority":
		return t.Priority, true
	case "category":
		return t.Category, true
	case "status":
		return t.Status, true
	case "created_at":
		return t.CreatedAt, true
	default:
		return nil, false
	}
}

// PasswordReset is one stored password reset request.
type PasswordReset struct {
	RequestID   string  `json:"request_id"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	ResetToken  string  `json:"reset_token"`
	RequestedAt string  `json:"requested_at"`
	ExpiresAt   string  `json:"expires_at"`
	Status      string  `json:"status"`
	IPAddress   string  `json:"ip_address"`
}

// Field exposes PasswordReset to the query engine. A nil username reads as
// absent, so username filters skip email-only requests.
func (p PasswordReset) Field(name string) (any, bool) {
	switch name {
	case "request_id":
		return p.RequestID, true
	case "username":
		if p.Username == nil {
			return nil, false
		}
		return *p.Username, true
	case "status":
		return p.Status, true
	case "requested_at":
		return p.RequestedAt, true
	default:
		return nil, false
	}
}

// Data is the it.json document. Tickets and resets start empty and grow as
// requests come in.
type Data struct {
	SystemStatus   []ServiceStatus `json:"system_status"`
	SupportTickets []SupportTicket `json:"support_tickets"`
	PasswordResets []PasswordReset `json:"password_resets"`
}

// CreateTicketRequest is the POST /it/support/ticket body.
type CreateTicketRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Priority     string `json:"priority" validate:"required,oneof=low medium high critical"`
	Category     string `json:"category"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// Normalize lowercases the priority and fills in the defaults.
func (r *CreateTicketRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
	if r.Priority == "" {
		r.Priority = "medium"
	}
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		r.Category = "general"
	}
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
}

func (r *CreateTicketRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			switch errs[0].Field() {
			case "Title":
				return dErrors.New(dErrors.CodeValidation, "title is required")
			case "Description":
				return dErrors.New(dErrors.CodeValidation, "description is required")
			case "Priority":
				return dErrors.New(dErrors.CodeValidation, "priority must be low, medium, high, or critical")
			case "ContactEmail":
				return dErrors.New(dErrors.CodeValidation, "contact_email must be a valid email address")
			}
		}
		return dErrors.New(dErrors.CodeValidation, "invalid ticket request")
	}
	return nil
}

// PasswordResetRequest is the POST /it/auth/password/reset body. At least one
// of username or email must be present.
type PasswordResetRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (r *PasswordResetRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *PasswordResetRequest) Validate() error {
	if r.Username == "" && r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "either username or email must be provided")
	}
	if err := validate.Struct(r); err != nil {
		return dErrors.New(dErrors.CodeValidation, "email must be a valid email address")
	}
	return nil
}

// StatusReport is the /it/status response envelope.
type StatusReport struct {
	OverallStatus       string          `json:"overall_status"`
	OperationalServices int             `json:"operational_services"`
	TotalServices       int             `json:"total_services"`
	Services            []ServiceStatus `json:"services"`
	LastUpdated         string          `json:"last_updated"`
}

// Overview is the /it/status/overview response.
type Overview struct {
	StatusSummary       map[string]int `json:"status_summary"`
	AverageResponseTime float64        `json:"average_response_time"`
	AverageUptime       float64        `json:"average_uptime"`
	TotalServices       int            `json:"total_services"`
}

// TicketReceipt is the POST /it/support/ticket response.
type TicketReceipt struct {
	Message  string        `json:"message"`
	TicketID string        `json:"ticket_id"`
	Ticket   SupportTicket `json:"ticket"`
}

// TicketList is the /it/support/tickets response envelope, newest first.
type TicketList struct {
	Count   int             `json:"count"`
	Tickets []SupportTicket `json:"tickets"`
}

// ResetReceipt is the POST /it/auth/password/reset response.
type ResetReceipt struct {
	Message     string `json:"message"`
	ResetToken  string `json:"reset_token"`
	EmailSentTo string `json:"email_sent_to"`
	ExpiresAt   string `json:"expires_at"`
	Note        string `json:"note"`
}

// ResetList is the /it/auth/password/resets response envelope, newest first.
type ResetList struct {
	Count          int             `json:"count"`
	PasswordResets []PasswordReset `json:"password_resets"`
}

// Dashboard is the /it/dashboard response.
type Dashboard struct {
	SystemHealth   DashboardSystemHealth `json:"system_health"`
	SupportTickets DashboardTickets      `json:"support_tickets"`
	PasswordResets DashboardResets       `json:"password_resets"`
	LastUpdated    string                `json:"last_updated"`
}

type DashboardSystemHealth struct {
	TotalServices   int            `json:"total_services"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	OperationalRate float64        `json:"operational_rate"`
}

type DashboardTickets struct {
	TotalTickets      int            `json:"total_tickets"`
	OpenTickets       int            `json:"open_tickets"`
	StatusBreakdown   map[string]int `json:"status_breakdown"`
	PriorityBreakdown map[string]int `json:"priority_breakdown"`
}

type DashboardResets struct {
	TotalRequests   int `json:"total_requests"`
	RecentRequests  int `json:"recent_requests"`
	PendingRequests int `json:"pending_requests"`
}
