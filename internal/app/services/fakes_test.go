package services

import (
	"context"
	"sort"
	"sync"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
)

// fakeApplicationStore serializes transactions on one mutex, which stands in for the row lock
type fakeApplicationStore struct {
	mu           sync.Mutex
	students     map[string]*models.Student
	mentorships  map[int64]*models.Mentorship
	participants map[int64][]models.Participant
	nextID       int64
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		students:     map[string]*models.Student{},
		mentorships:  map[int64]*models.Mentorship{},
		participants: map[int64][]models.Participant{},
	}
}

func (f *fakeApplicationStore) addStudent(s models.Student) {
	f.students[s.PRN] = &s
}

func (f *fakeApplicationStore) addMentorship(m models.Mentorship, enrolled ...int64) {
	f.mentorships[m.ID] = &m
	for _, studentID := range enrolled {
		f.nextID++
		f.participants[m.ID] = append(f.participants[m.ID], models.Participant{
			ID: f.nextID, MentorshipID: m.ID, StudentID: studentID,
		})
	}
}

func (f *fakeApplicationStore) count(mentorshipID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.participants[mentorshipID])
}

func (f *fakeApplicationStore) FindStudentByPRN(_ context.Context, prn string) (*models.Student, error) {
	s, ok := f.students[prn]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeApplicationStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.ApplicationTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := make(map[int64][]models.Participant, len(f.participants))
	for id, list := range f.participants {
		snapshot[id] = append([]models.Participant(nil), list...)
	}

	if err := fn(ctx, &fakeTx{store: f}); err != nil {
		f.participants = snapshot
		return err
	}
	return nil
}

type fakeTx struct {
	store *fakeApplicationStore
}

func (t *fakeTx) FindStudentByPRN(ctx context.Context, prn string) (*models.Student, error) {
	return t.store.FindStudentByPRN(ctx, prn)
}

func (t *fakeTx) LockMentorship(_ context.Context, id int64) (*models.Mentorship, error) {
	m, ok := t.store.mentorships[id]
	if !ok {
		return nil, apperrors.ErrMentorshipNotFound
	}
	cp := *m
	cp.ParticipantCount = len(t.store.participants[id])
	return &cp, nil
}

func (t *fakeTx) HasParticipant(_ context.Context, mentorshipID, studentID int64) (bool, error) {
	for _, p := range t.store.participants[mentorshipID] {
		if p.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeTx) AddParticipant(_ context.Context, p *models.Participant) error {
	t.store.nextID++
	p.ID = t.store.nextID
	t.store.participants[p.MentorshipID] = append(t.store.participants[p.MentorshipID], *p)
	return nil
}

type publishedEvent struct {
	mentorshipID int64
	current, max int
}

type recordingHooks struct {
	mu        sync.Mutex
	published []publishedEvent
	outcomes  map[string]int
	clicks    map[int64]int
}

func newRecordingHooks() *recordingHooks {
	return &recordingHooks{outcomes: map[string]int{}, clicks: map[int64]int{}}
}

func (h *recordingHooks) PublishOccupancy(mentorshipID int64, current, max int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.published = append(h.published, publishedEvent{mentorshipID, current, max})
}

func (h *recordingHooks) ObserveApplication(outcome string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outcomes[outcome]++
}

func (h *recordingHooks) IncInternshipApply(internshipID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clicks[internshipID]++
}

// fakeAlumniStore returns pre-arranged pages; it does not evaluate the query predicate
type fakeAlumniStore struct {
	page       []models.Alumni
	total      int64
	pool       []models.Alumni
	lastQuery  repositories.ListQuery
	excludeArg []int64
	limitArg   int
	byID       map[int64]*models.Alumni
	created    []*models.Alumni
	err        error
}

func (f *fakeAlumniStore) List(_ context.Context, q repositories.ListQuery) ([]models.Alumni, int64, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return append([]models.Alumni(nil), f.page...), f.total, nil
}

func (f *fakeAlumniStore) ListExcluding(_ context.Context, q repositories.ListQuery, excludeIDs []int64, limit int) ([]models.Alumni, error) {
	f.excludeArg = append([]int64(nil), excludeIDs...)
	f.limitArg = limit

	excluded := make(map[int64]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var out []models.Alumni
	for _, a := range f.pool {
		if len(out) == limit {
			break
		}
		if !excluded[a.ID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlumniStore) GetByID(_ context.Context, id int64) (*models.Alumni, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrAlumniNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAlumniStore) Create(_ context.Context, a *models.Alumni) error {
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	a.ID = int64(len(f.byID) + 1)
	if f.byID == nil {
		f.byID = map[int64]*models.Alumni{}
	}
	cp := *a
	f.byID[a.ID] = &cp
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAlumniStore) Update(_ context.Context, a *models.Alumni) error {
	if _, ok := f.byID[a.ID]; !ok {
		return apperrors.ErrAlumniNotFound
	}
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAlumniStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrAlumniNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeMentorshipStore struct {
	items        []models.Mentorship
	participants map[int64][]models.Participant
	distinct     map[string][]string
	lastQuery    repositories.ListQuery
	created      *models.Mentorship
}

func (f *fakeMentorshipStore) List(_ context.Context, q repositories.ListQuery) ([]models.Mentorship, int64, error) {
	f.lastQuery = q
	return f.items, int64(len(f.items)), nil
}

func (f *fakeMentorshipStore) GetByID(_ context.Context, id int64) (*models.Mentorship, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, apperrors.ErrMentorshipNotFound
}

func (f *fakeMentorshipStore) Create(_ context.Context, m *models.Mentorship) error {
	m.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *m)
	f.created = m
	return nil
}

func (f *fakeMentorshipStore) SetApproved(_ context.Context, id int64, approved bool) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsApproved = approved
			return nil
		}
	}
	return apperrors.ErrMentorshipNotFound
}

func (f *fakeMentorshipStore) DistinctValues(_ context.Context, column string) ([]string, error) {
	values := append([]string(nil), f.distinct[column]...)
	sort.Strings(values)
	return values, nil
}

func (f *fakeMentorshipStore) ListParticipants(_ context.Context, mentorshipID int64) ([]models.Participant, error) {
	return f.participants[mentorshipID], nil
}

type fakeInternshipStore struct {
	items     []models.Internship
	lastQuery repositories.ListQuery
}

func (f *fakeInternshipStore) List(_ context.Context, q repositories.ListQuery) ([]models.Internship, int64, error) {
	f.lastQuery = q
	return f.items, int64(len(f.items)), nil
}

func (f *fakeInternshipStore) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, apperrors.ErrInternshipNotFound
}

func (f *fakeInternshipStore) Create(_ context.Context, i *models.Internship) error {
	i.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *i)
	return nil
}
