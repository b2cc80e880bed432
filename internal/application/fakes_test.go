package application

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
	"github.com/iamonjarvis/anywork-backend/internal/realtime"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.Job{}}
}

func (r *fakeJobRepo) Create(j *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID.IsZero() {
		j.ID = bson.NewObjectID()
	}
	if j.Status == "" {
		j.Status = entity.JobStatusOpen
	}
	r.jobs[j.ID.Hex()] = j
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *j
	copied.Applicants = append([]entity.Applicant(nil), j.Applicants...)
	return &copied, nil
}

func (r *fakeJobRepo) FindOpen() ([]entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Job{}
	for _, j := range r.jobs {
		if j.Status != entity.JobStatusClosed {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindByApplicant(userID string) ([]entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Job{}
	for _, j := range r.jobs {
		for _, a := range j.Applicants {
			if a.User.Hex() == userID {
				out = append(out, *j)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindByEmployer(userID string) ([]entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Job{}
	for _, j := range r.jobs {
		if j.Employer.Hex() == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) PushApplicant(jobID string, a entity.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return repository.ErrNotFound
	}
	j.Applicants = append(j.Applicants, a)
	return nil
}

func (r *fakeJobRepo) SetApplicantStatus(jobID, applicantID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return repository.ErrNotFound
	}
	for i := range j.Applicants {
		if j.Applicants[i].User.Hex() == applicantID {
			j.Applicants[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeContactRepo struct {
	mu    sync.Mutex
	lists map[string]*entity.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{lists: map[string]*entity.Contact{}}
}

func (r *fakeContactRepo) GetByOwner(ownerID string) (*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.lists[ownerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	copied.Contacts = append([]entity.ContactRef(nil), c.Contacts...)
	return &copied, nil
}

func (r *fakeContactRepo) Save(c *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	r.lists[c.UserID.Hex()] = c
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []entity.Message
}

func (r *fakeMessageRepo) Insert(m *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) FindBetween(a, b string) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Message{}
	for _, m := range r.messages {
		s, rc := m.SenderID.Hex(), m.ReceiverID.Hex()
		if (s == a && rc == b) || (s == b && rc == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) FindByJob(jobID string) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Message{}
	for _, m := range r.messages {
		if m.JobID != nil && m.JobID.Hex() == jobID {
			out = append(out, m)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []NotificationEvent
}

func (n *recordingNotifier) Notify(_ context.Context, ev NotificationEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

type fakeBus struct {
	mu        sync.Mutex
	published []realtime.Event
}

func (b *fakeBus) Publish(_ context.Context, channel string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, realtime.Event{Channel: channel, Payload: payload})
	return nil
}

func (b *fakeBus) Subscribe(ctx context.Context, _ string) (<-chan realtime.Event, error) {
	ch := make(chan realtime.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
