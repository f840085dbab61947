package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// mockAppointmentRepo enforces the same at-most-one-live-booking rule as the
// mongo partial unique index, under a mutex.
type mockAppointmentRepo struct {
	mu      sync.Mutex
	appts   map[string]*models.Appointment
	failAll bool
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (m *mockAppointmentRepo) CreateIfAbsent(ctx context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("store unreachable")
	}
	for _, a := range m.appts {
		if a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Time == appt.Time &&
			a.Status != models.StatusCancelled {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	cp := *appt
	m.appts[appt.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockAppointmentRepo) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errors.New("store unreachable")
	}
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return nil, errors.New("store unreachable")
	}
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) setField(id string, set func(*models.Appointment)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	set(a)
	return nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.setField(id, func(a *models.Appointment) { a.Status = status })
}

func (m *mockAppointmentRepo) UpdateAttendance(ctx context.Context, id, attendance string) error {
	return m.setField(id, func(a *models.Appointment) { a.Attendance = attendance })
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id string) error {
	return m.setField(id, func(a *models.Appointment) { a.Status = models.StatusCancelled })
}

func (m *mockAppointmentRepo) EnsureIndexes() error { return nil }

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

// recordingNotifier signals on a channel when a doctor push goes out.
type recordingNotifier struct {
	doctorPushes chan string
	fail         bool
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{doctorPushes: make(chan string, 8)}
}

func (n *recordingNotifier) SendDoctorPushNotification(ctx context.Context, doctorID, title, body string, data map[string]string) error {
	n.doctorPushes <- doctorID
	if n.fail {
		return errors.New("push gateway down")
	}
	return nil
}

func (n *recordingNotifier) SendPatientPushNotification(ctx context.Context, patientID, title, body string, data map[string]string) error {
	return nil
}

type recordingScheduler struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
}

func (s *recordingScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return nil
}
