package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"personal-assistant/internal/model"
	"personal-assistant/internal/task/repository"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu      sync.Mutex
	tasks   map[string]model.Task
	failGet error
}

func newMemRepo(tasks ...model.Task) *memRepo {
	r := &memRepo{tasks: map[string]model.Task{}}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *memRepo) Create(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	return nil
}

func (r *memRepo) Get(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet != nil {
		return model.Task{}, r.failGet
	}
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *memRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if opt.Status == "" || t.Status == opt.Status {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.tasks[t.ID] = t
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memRepo) Count(ctx context.Context, status model.TaskStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if t.Status == model.TaskStatusPending && (t.ScheduledTime == nil || !t.ScheduledTime.After(now)) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memRepo) Claim(ctx context.Context, id string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.Status != model.TaskStatusPending {
		return false, nil
	}
	t.Status = model.TaskStatusRunning
	r.tasks[id] = t
	return true, nil
}

type mockResponder struct {
	commands []string
}

func (m *mockResponder) Respond(ctx context.Context, text string) string {
	m.commands = append(m.commands, text)
	return "reply to " + text
}

type sentMessage struct {
	chatID int64
	text   string
}

type mockNotifier struct {
	fail bool
	sent []sentMessage
}

func (m *mockNotifier) Send(ctx context.Context, chatID int64, text string) bool {
	m.sent = append(m.sent, sentMessage{chatID, text})
	return !m.fail
}
