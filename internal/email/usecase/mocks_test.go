package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"personal-assistant/internal/email/repository"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/gmail"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu        sync.Mutex
	emails    map[string]model.Email
	failWrite error
}

func newMemRepo(emails ...model.Email) *memRepo {
	r := &memRepo{emails: map[string]model.Email{}}
	for _, e := range emails {
		r.emails[e.ID] = e
	}
	return r
}

func (r *memRepo) Upsert(ctx context.Context, e model.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	if old, ok := r.emails[e.ID]; ok {
		if e.Summary == "" {
			e.Summary = old.Summary
		}
		e.CreatedAt = old.CreatedAt
	}
	r.emails[e.ID] = e
	return nil
}

func (r *memRepo) Get(ctx context.Context, id string) (model.Email, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.emails[id]
	if !ok {
		return model.Email{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *memRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Email, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Email
	for _, e := range r.emails {
		if !opt.UnreadOnly || e.IsUnread {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *memRepo) MarkRead(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.emails[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.IsUnread = false
	e.UpdatedAt = at
	r.emails[id] = e
	return nil
}

func (r *memRepo) SetSummary(ctx context.Context, id, summary string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.emails[id]
	if !ok {
		return repository.ErrNotFound
	}
	e.Summary = summary
	e.UpdatedAt = at
	r.emails[id] = e
	return nil
}

type mockMailbox struct {
	messages map[string]gmail.Message
	err      error

	label    string
	limit    int
	marked   []string
	drafted  []string
	fetched  []string
	draftErr error
}

func (m *mockMailbox) GetByLabel(ctx context.Context, label string, max int) ([]gmail.Message, error) {
	m.label, m.limit = label, max
	if m.err != nil {
		return nil, m.err
	}
	out := make([]gmail.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockMailbox) GetMessage(ctx context.Context, id string) (gmail.Message, error) {
	m.fetched = append(m.fetched, id)
	if m.err != nil {
		return gmail.Message{}, m.err
	}
	msg, ok := m.messages[id]
	if !ok {
		return gmail.Message{}, gmail.ErrMessageNotFound
	}
	return msg, nil
}

func (m *mockMailbox) MarkAsRead(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.messages[id]; !ok {
		return gmail.ErrMessageNotFound
	}
	m.marked = append(m.marked, id)
	return nil
}

func (m *mockMailbox) CreateDraft(ctx context.Context, to, subject, body string) (string, error) {
	if m.draftErr != nil {
		return "", m.draftErr
	}
	m.drafted = append(m.drafted, to+"|"+subject+"|"+body)
	return "d-1", nil
}

type mockSummarizer struct {
	summary string
	err     error
	calls   int
}

func (m *mockSummarizer) Summarize(ctx context.Context, subject, body string) (string, error) {
	m.calls++
	return m.summary, m.err
}
