package it

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/query"
	"github.com/aprksy/jsonsvc/internal/storage"
	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
	"github.com/aprksy/jsonsvc/pkg/requestcontext"
)

const collectionName = "it"

// Service serves system status and handles ticket and password reset
// submissions. Writes hold the service mutex across load, append and save so
// concurrent submissions cannot lose each other's appends.
type Service struct {
	store   storage.Store
	metrics *metrics.Metrics

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads the collection, generating the status snapshot on first access.
// Tickets and resets always start empty. Callers that mutate must hold s.mu.
func (s *Service) load(ctx context.Context) (Data, error) {
	var data Data
	found, err := s.store.Load(ctx, collectionName, &data)
	if err != nil {
		return Data{}, err
	}
	if !found {
		data = Data{
			SystemStatus:   generateSystemStatus(s.rng, requestcontext.Now(ctx)),
			SupportTickets: []SupportTicket{},
			PasswordResets: []PasswordReset{},
		}
		if err := s.store.Save(ctx, collectionName, data); err != nil {
			return Data{}, err
		}
		s.metrics.IncrementCollectionsGenerated(collectionName)
	}
	return data, nil
}

// Status reports per-service health plus an overall rollup. A non-empty
// serviceName narrows the report to services whose name contains it; no match
// is a NotFound.
func (s *Service) Status(ctx context.Context, serviceName string) (*StatusReport, error) {
	s.mu.Lock()
	data, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	services := data.SystemStatus
	if serviceName != "" {
		spec := &query.Spec{}
		spec.Contains(serviceName, "service_name")
		services = query.Apply(services, spec)
		if len(services) == 0 {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "no service found with name containing '%s'", serviceName)
		}
	}
	operational := 0
	for _, svc := range services {
		if svc.Status == "operational" {
			operational++
		}
	}
	total := len(services)
	overall := "outage"
	switch {
	case operational == total:
		overall = "operational"
	case float64(operational) > float64(total)*0.7:
		overall = "degraded"
	}
	return &StatusReport{
		OverallStatus:       overall,
		OperationalServices: operational,
		TotalServices:       total,
		Services:            services,
		LastUpdated:         requestcontext.Now(ctx).Format(timestampLayout),
	}, nil
}

// Overview aggregates the status snapshot into counts and averages.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	s.mu.Lock()
	data, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	byStatus := query.Summarize(data.SystemStatus, []string{"status"}, nil)
	return &Overview{
		StatusSummary:       byStatus.GroupCounts(),
		AverageResponseTime: round2(query.Avg(data.SystemStatus, "response_time")),
		AverageUptime:       round2(query.Avg(data.SystemStatus, "uptime")),
		TotalServices:       len(data.SystemStatus),
	}, nil
}

// CreateTicket appends a new open ticket and persists the collection.
func (s *Service) CreateTicket(ctx context.Context, req *CreateTicketRequest) (*TicketReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx).Format(timestampLayout)
	ticket := SupportTicket{
		TicketID:    fmt.Sprintf("TICKET-%d", 10000+s.rng.Intn(90000)),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		Status:      "open",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.ContactEmail != "" {
		email := req.ContactEmail
		ticket.ContactEmail = &email
	}
	data.SupportTickets = append(data.SupportTickets, ticket)
	if err := s.store.Save(ctx, collectionName, data); err != nil {
		return nil, err
	}
	s.metrics.IncrementTicketsCreated()
	return &TicketReceipt{
		Message:  "Support ticket created successfully",
		TicketID: ticket.TicketID,
		Ticket:   ticket,
	}, nil
}

// Tickets lists stored tickets, newest first. An empty list is a valid
// response with count 0.
func (s *Service) Tickets(ctx context.Context, status, priority string) (*TicketList, error) {
	s.mu.Lock()
	data, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if status != "" {
		spec.Equal("status", status)
	}
	if priority != "" {
		spec.Equal("priority", priority)
	}
	tickets := query.Apply(data.SupportTickets, spec)
	sorted := make([]SupportTicket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return &TicketList{Count: len(sorted), Tickets: sorted}, nil
}

// CreatePasswordReset records a reset request and returns the token. The
// token expires an hour after the request.
func (s *Service) CreatePasswordReset(ctx context.Context, req *PasswordResetRequest) (*ResetReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	record := PasswordReset{
		RequestID:   fmt.Sprintf("REQ-%d", 10000+s.rng.Intn(90000)),
		ResetToken:  fmt.Sprintf("RESET-%d-%d", 100000+s.rng.Intn(900000), 100000+s.rng.Intn(900000)),
		RequestedAt: now.Format(timestampLayout),
		ExpiresAt:   now.Add(time.Hour).Format(timestampLayout),
		Status:      "pending",
		IPAddress:   fmt.Sprintf("192.168.1.%d", 1+s.rng.Intn(255)),
	}
	if req.Username != "" {
		username := req.Username
		record.Username = &username
	}
	if req.Email != "" {
		email := req.Email
		record.Email = &email
	}
	data.PasswordResets = append(data.PasswordResets, record)
	if err := s.store.Save(ctx, collectionName, data); err != nil {
		return nil, err
	}
	s.metrics.IncrementPasswordResets()

	emailSentTo := req.Email
	if emailSentTo == "" {
		emailSentTo = req.Username + "@company.com"
	}
	return &ResetReceipt{
		Message:     "Password reset initiated successfully",
		ResetToken:  record.ResetToken,
		EmailSentTo: emailSentTo,
		ExpiresAt:   record.ExpiresAt,
		Note:        "In a real system, an email with reset instructions would be sent",
	}, nil
}

// PasswordResets lists stored reset requests, newest first. An empty list is
// a valid response with count 0.
func (s *Service) PasswordResets(ctx context.Context, username, status string) (*ResetList, error) {
	s.mu.Lock()
	data, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if username != "" {
		spec.EqualExact("username", username)
	}
	if status != "" {
		spec.Equal("status", status)
	}
	resets := query.Apply(data.PasswordResets, spec)
	sorted := make([]PasswordReset, len(resets))
	copy(sorted, resets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequestedAt > sorted[j].RequestedAt
	})
	return &ResetList{Count: len(sorted), PasswordResets: sorted}, nil
}

// Dashboard rolls the whole collection into one report. Recent reset
// requests are those from the last seven days.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	s.mu.Lock()
	data, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)

	statusCounts := query.Summarize(data.SystemStatus, []string{"status"}, nil).GroupCounts()
	operationalRate := 0.0
	if len(data.SystemStatus) > 0 {
		operationalRate = float64(statusCounts["operational"]) / float64(len(data.SystemStatus)) * 100
	}

	ticketStatusCounts := query.Summarize(data.SupportTickets, []string{"status"}, nil).GroupCounts()
	ticketPriorityCounts := query.Summarize(data.SupportTickets, []string{"priority"}, nil).GroupCounts()

	weekAgo := now.AddDate(0, 0, -7)
	recent, pending := 0, 0
	for _, reset := range data.PasswordResets {
		if t, err := time.Parse(timestampLayout, reset.RequestedAt); err == nil && t.After(weekAgo) {
			recent++
		}
		if reset.Status == "pending" {
			pending++
		}
	}

	return &Dashboard{
		SystemHealth: DashboardSystemHealth{
			TotalServices:   len(data.SystemStatus),
			StatusBreakdown: statusCounts,
			OperationalRate: math.Round(operationalRate*10) / 10,
		},
		SupportTickets: DashboardTickets{
			TotalTickets:      len(data.SupportTickets),
			OpenTickets:       ticketStatusCounts["open"],
			StatusBreakdown:   ticketStatusCounts,
			PriorityBreakdown: ticketPriorityCounts,
		},
		PasswordResets: DashboardResets{
			TotalRequests:   len(data.PasswordResets),
			RecentRequests:  recent,
			PendingRequests: pending,
		},
		LastUpdated: now.Format(timestampLayout),
	}, nil
}
