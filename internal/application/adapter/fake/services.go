// Package fake provides in-memory adapter implementations for use case tests.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// Clock always returns the same instant.
type Clock struct {
	At time.Time
}

// Now implements adapter.Clock.
func (c Clock) Now() time.Time {
	return c.At
}

// Notifier records published collections and hands out subscription channels.
type Notifier struct {
	mu        sync.Mutex
	Published []adapter.LedgerCollection
	subs      map[adapter.LedgerCollection][]chan struct{}
	FailWith  error
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[adapter.LedgerCollection][]chan struct{})}
}

// Publish implements adapter.ChangeNotifier.
func (n *Notifier) Publish(_ context.Context, collection adapter.LedgerCollection) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.FailWith != nil {
		return n.FailWith
	}
	n.Published = append(n.Published, collection)
	for _, ch := range n.subs[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Subscribe implements adapter.ChangeNotifier.
func (n *Notifier) Subscribe(ctx context.Context, collection adapter.LedgerCollection) (<-chan struct{}, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan struct{}, 1)
	n.subs[collection] = append(n.subs[collection], ch)
	go func() {
		<-ctx.Done()
		n.mu.Lock()
		defer n.mu.Unlock()
		subs := n.subs[collection]
		for i, existing := range subs {
			if existing == ch {
				n.subs[collection] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// PublishedCollections returns a copy of the published collections.
func (n *Notifier) PublishedCollections() []adapter.LedgerCollection {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]adapter.LedgerCollection{}, n.Published...)
}

// Drafter returns a fixed draft or error and counts its calls.
type Drafter struct {
	mu        sync.Mutex
	Result    *entity.ReportDraft
	Err       error
	Available bool
	Requests  []*adapter.ReportDraftRequest
}

// Draft implements adapter.ReportDrafter.
func (d *Drafter) Draft(_ context.Context, request *adapter.ReportDraftRequest) (*entity.ReportDraft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Requests = append(d.Requests, request)
	if d.Err != nil {
		return nil, d.Err
	}
	draft := *d.Result
	return &draft, nil
}

// IsAvailable implements adapter.ReportDrafter.
func (d *Drafter) IsAvailable() bool {
	return d.Available
}

// Calls returns how many drafts were requested.
func (d *Drafter) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Requests)
}

// ReportCache is a map-backed adapter.ReportCache.
type ReportCache struct {
	mu     sync.Mutex
	drafts map[string]entity.ReportDraft
}

// NewReportCache creates an empty ReportCache.
func NewReportCache() *ReportCache {
	return &ReportCache{drafts: make(map[string]entity.ReportDraft)}
}

// Get implements adapter.ReportCache.
func (c *ReportCache) Get(_ context.Context, key string) (*entity.ReportDraft, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft, ok := c.drafts[key]
	if !ok {
		return nil, false, nil
	}
	return &draft, true, nil
}

// Set implements adapter.ReportCache.
func (c *ReportCache) Set(_ context.Context, key string, draft *entity.ReportDraft, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[key] = *draft
	return nil
}

// Reports is an in-memory adapter.ReportRepository.
type Reports struct {
	mu      sync.Mutex
	reports []entity.Report
}

// Create implements adapter.ReportRepository.
func (r *Reports) Create(_ context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, *report)
	return nil
}

// FindByID implements adapter.ReportRepository.
func (r *Reports) FindByID(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if report.ID == id {
			report := report
			return &report, nil
		}
	}
	return nil, domainerror.ErrReportNotFound
}

// FindByEntrepreneur implements adapter.ReportRepository.
func (r *Reports) FindByEntrepreneur(_ context.Context, entrepreneurID uuid.UUID) ([]*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Report, 0)
	for _, report := range r.reports {
		if report.EntrepreneurID == entrepreneurID {
			report := report
			result = append(result, &report)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Users is an in-memory adapter.UserRepository.
type Users struct {
	mu    sync.Mutex
	users []entity.User
}

// Create implements adapter.UserRepository.
func (u *Users) Create(_ context.Context, user *entity.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.users {
		if existing.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	u.users = append(u.users, *user)
	return nil
}

// FindByID implements adapter.UserRepository.
func (u *Users) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.ID == id {
			user := user
			return &user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// FindByEmail implements adapter.UserRepository.
func (u *Users) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// FindAll implements adapter.UserRepository.
func (u *Users) FindAll(_ context.Context) ([]*entity.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	result := make([]*entity.User, len(u.users))
	for i := range u.users {
		user := u.users[i]
		result[i] = &user
	}
	return result, nil
}

// Count implements adapter.UserRepository.
func (u *Users) Count(_ context.Context) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return int64(len(u.users)), nil
}

// EmailService records queued e-mails.
type EmailService struct {
	mu               sync.Mutex
	ReportDeliveries []adapter.QueueReportDeliveryInput
	Welcomes         []adapter.QueueStaffWelcomeInput
	FailWith         error
}

// QueueReportDelivery implements adapter.EmailService.
func (s *EmailService) QueueReportDelivery(_ context.Context, input adapter.QueueReportDeliveryInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.ReportDeliveries = append(s.ReportDeliveries, input)
	return nil
}

// QueueStaffWelcome implements adapter.EmailService.
func (s *EmailService) QueueStaffWelcome(_ context.Context, input adapter.QueueStaffWelcomeInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.Welcomes = append(s.Welcomes, input)
	return nil
}
