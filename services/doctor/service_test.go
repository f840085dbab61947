package doctor

import (
	"context"
	"sync"
	"testing"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

type mockDoctorRepo struct {
	mu      sync.Mutex
	doctors map[string]*models.Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[string]*models.Doctor)}
}

func (m *mockDoctorRepo) Create(ctx context.Context, doc *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID == "" {
		doc.ID = "doc-gen"
	}
	cp := *doc
	m.doctors[doc.ID] = &cp
	return nil
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Doctor
	for _, d := range m.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDoctorRepo) SetWorkTimeRules(ctx context.Context, doctorID string, rules []models.WorkTimeRule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[doctorID]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	d.Availability.WorkTimeRules = rules
	return nil
}

func (m *mockDoctorRepo) SetSlotDuration(ctx context.Context, doctorID string, minutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[doctorID]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	d.Availability.SlotDurationMinutes = minutes
	return nil
}

func (m *mockDoctorRepo) AddExceptionDay(ctx context.Context, doctorID string, exc models.ExceptionDay) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[doctorID]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	kept := d.Availability.ExceptionDays[:0]
	for _, e := range d.Availability.ExceptionDays {
		if e.Date != exc.Date {
			kept = append(kept, e)
		}
	}
	d.Availability.ExceptionDays = append(kept, exc)
	return nil
}

func (m *mockDoctorRepo) RemoveExceptionDay(ctx context.Context, doctorID, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.doctors[doctorID]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	kept := d.Availability.ExceptionDays[:0]
	for _, e := range d.Availability.ExceptionDays {
		if e.Date != date {
			kept = append(kept, e)
		}
	}
	d.Availability.ExceptionDays = kept
	return nil
}

func (m *mockDoctorRepo) EnsureIndexes() error { return nil }

type mockInvalidator struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockInvalidator) InvalidateDoctor(ctx context.Context, doctorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, doctorID)
	return nil
}

func (m *mockInvalidator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func setupService() (*DefaultDoctorService, *mockDoctorRepo, *mockInvalidator) {
	repo := newMockDoctorRepo()
	repo.Create(context.Background(), &models.Doctor{ID: "doc-1", Name: "Dr. Okoye"})
	inv := &mockInvalidator{}
	return &DefaultDoctorService{Repo: repo, SlotCache: inv}, repo, inv
}

func TestSetWorkTimeRules_ValidatesAndInvalidates(t *testing.T) {
	svc, repo, inv := setupService()
	ctx := context.Background()

	rules := []models.WorkTimeRule{
		{Weekday: 1, From: "09:00", To: "12:00"},
		{Weekday: 1, From: "14:00", To: "17:00"},
	}
	if err := svc.SetWorkTimeRules(ctx, "doc-1", rules); err != nil {
		t.Fatalf("valid rules rejected: %v", err)
	}
	doc, _ := repo.GetByID(ctx, "doc-1")
	if len(doc.Availability.WorkTimeRules) != 2 {
		t.Errorf("rules not stored: %+v", doc.Availability.WorkTimeRules)
	}
	if inv.callCount() != 1 {
		t.Errorf("mutation must invalidate slot cache once, got %d", inv.callCount())
	}
}

func TestSetWorkTimeRules_FullReplace(t *testing.T) {
	svc, repo, _ := setupService()
	ctx := context.Background()

	svc.SetWorkTimeRules(ctx, "doc-1", []models.WorkTimeRule{{Weekday: 1, From: "09:00", To: "12:00"}})
	svc.SetWorkTimeRules(ctx, "doc-1", []models.WorkTimeRule{{Weekday: 3, From: "08:00", To: "10:00"}})

	doc, _ := repo.GetByID(ctx, "doc-1")
	if len(doc.Availability.WorkTimeRules) != 1 || doc.Availability.WorkTimeRules[0].Weekday != 3 {
		t.Errorf("second PUT must fully replace the rule set: %+v", doc.Availability.WorkTimeRules)
	}
}

func TestSetWorkTimeRules_RejectsBadRules(t *testing.T) {
	svc, _, inv := setupService()
	ctx := context.Background()

	cases := []models.WorkTimeRule{
		{Weekday: 7, From: "09:00", To: "12:00"},
		{Weekday: -1, From: "09:00", To: "12:00"},
		{Weekday: 1, From: "junk", To: "12:00"},
		{Weekday: 1, From: "12:00", To: "09:00"},
		{Weekday: 1, From: "09:00", To: "09:00"},
	}
	for _, rule := range cases {
		if err := svc.SetWorkTimeRules(ctx, "doc-1", []models.WorkTimeRule{rule}); err == nil {
			t.Errorf("rule %+v should be rejected", rule)
		}
	}
	if inv.callCount() != 0 {
		t.Error("rejected mutations must not invalidate the cache")
	}
}

func TestSetSlotDuration_AllowedSetOnly(t *testing.T) {
	svc, repo, _ := setupService()
	ctx := context.Background()

	for _, minutes := range models.AllowedSlotDurations {
		if err := svc.SetSlotDuration(ctx, "doc-1", minutes); err != nil {
			t.Errorf("allowed duration %d rejected: %v", minutes, err)
		}
	}
	for _, minutes := range []int{0, -30, 7, 25, 90} {
		if err := svc.SetSlotDuration(ctx, "doc-1", minutes); err == nil {
			t.Errorf("duration %d should be rejected", minutes)
		}
	}
	doc, _ := repo.GetByID(ctx, "doc-1")
	if doc.Availability.SlotDurationMinutes != 60 {
		t.Errorf("last accepted duration should stick, got %d", doc.Availability.SlotDurationMinutes)
	}
}

func TestAddExceptionDay_Validation(t *testing.T) {
	svc, repo, _ := setupService()
	ctx := context.Background()

	if err := svc.AddExceptionDay(ctx, "doc-1", models.ExceptionDay{
		Date: "2025-06-10", Scope: models.ExceptionFullDay, Reason: "vacation",
	}); err != nil {
		t.Fatalf("full-day exception rejected: %v", err)
	}
	if err := svc.AddExceptionDay(ctx, "doc-1", models.ExceptionDay{
		Date: "2025-06-11", Scope: models.ExceptionPartialDay, From: "10:00", To: "12:00",
	}); err != nil {
		t.Fatalf("partial-day exception rejected: %v", err)
	}

	bad := []models.ExceptionDay{
		{Date: "June 10", Scope: models.ExceptionFullDay},
		{Date: "2025-06-12", Scope: "half_day"},
		{Date: "2025-06-12", Scope: models.ExceptionPartialDay, From: "12:00", To: "10:00"},
		{Date: "2025-06-12", Scope: models.ExceptionPartialDay},
	}
	for _, exc := range bad {
		if err := svc.AddExceptionDay(ctx, "doc-1", exc); err == nil {
			t.Errorf("exception %+v should be rejected", exc)
		}
	}

	doc, _ := repo.GetByID(ctx, "doc-1")
	if len(doc.Availability.ExceptionDays) != 2 {
		t.Errorf("expected 2 stored exceptions, got %+v", doc.Availability.ExceptionDays)
	}
}

func TestAddExceptionDay_ReplacesSameDate(t *testing.T) {
	svc, repo, _ := setupService()
	ctx := context.Background()

	svc.AddExceptionDay(ctx, "doc-1", models.ExceptionDay{
		Date: "2025-06-10", Scope: models.ExceptionPartialDay, From: "10:00", To: "11:00",
	})
	svc.AddExceptionDay(ctx, "doc-1", models.ExceptionDay{
		Date: "2025-06-10", Scope: models.ExceptionFullDay,
	})

	doc, _ := repo.GetByID(ctx, "doc-1")
	if len(doc.Availability.ExceptionDays) != 1 {
		t.Fatalf("a date carries at most one exception, got %+v", doc.Availability.ExceptionDays)
	}
	if doc.Availability.ExceptionDays[0].Scope != models.ExceptionFullDay {
		t.Error("later exception for the same date must win")
	}
}

func TestRemoveExceptionDay_Invalidates(t *testing.T) {
	svc, repo, inv := setupService()
	ctx := context.Background()

	svc.AddExceptionDay(ctx, "doc-1", models.ExceptionDay{Date: "2025-06-10", Scope: models.ExceptionFullDay})
	before := inv.callCount()
	if err := svc.RemoveExceptionDay(ctx, "doc-1", "2025-06-10"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	doc, _ := repo.GetByID(ctx, "doc-1")
	if len(doc.Availability.ExceptionDays) != 0 {
		t.Errorf("exception not removed: %+v", doc.Availability.ExceptionDays)
	}
	if inv.callCount() != before+1 {
		t.Error("removal must invalidate the slot cache")
	}
}
