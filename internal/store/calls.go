package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ocst/internal/model"
)

// CallRegistry is the authoritative set of active calls. Every
// operation takes the internal mutex, so a snapshot never observes a
// half-applied mutation. Snapshots are copies and safe to share.
type CallRegistry struct {
	mu    sync.Mutex
	calls []*model.Call // creation order
	byID  map[string]*model.Call

	now   func() time.Time
	newID func() string
}

// NewCallRegistry creates an empty registry.
func NewCallRegistry() *CallRegistry {
	return &CallRegistry{
		byID:  make(map[string]*model.Call),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create validates the fields, assigns a fresh id and timestamp and
// stores the call with status pending. An empty priority defaults to
// not-urgent.
func (r *CallRegistry) Create(caller, title, details, location string, priority model.Priority) (model.Call, error) {
	title = strings.TrimSpace(title)
	details = strings.TrimSpace(details)
	location = strings.TrimSpace(location)
	if title == "" || details == "" || location == "" {
		return model.Call{}, ErrEmptyField
	}
	if priority == "" {
		priority = model.PriorityNotUrgent
	}
	if !priority.Valid() {
		return model.Call{}, ErrBadPriority
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	call := &model.Call{
		ID:        r.newID(),
		Title:     title,
		Details:   details,
		Location:  location,
		Priority:  priority,
		Status:    model.StatusPending,
		Caller:    caller,
		Timestamp: r.now(),
	}
	r.calls = append(r.calls, call)
	r.byID[call.ID] = call
	return *call, nil
}

// MarkReceived transitions a pending call to received. Marking an
// already-received call is a benign no-op: the call is returned
// unchanged, updated is false and the original receivedBy stands.
func (r *CallRegistry) MarkReceived(id, byUser string) (call model.Call, updated bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return model.Call{}, false, ErrCallNotFound
	}
	if c.Status == model.StatusReceived {
		return *c, false, nil
	}
	c.Status = model.StatusReceived
	c.ReceivedBy = byUser
	return *c, true, nil
}

// ClearAll empties the registry. It always succeeds, including on an
// already-empty registry.
func (r *CallRegistry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.byID = make(map[string]*model.Call)
}

// Snapshot returns all calls in creation order.
func (r *CallRegistry) Snapshot() []model.Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Call, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, *c)
	}
	return out
}
