package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain"
	dombatch "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/batch"
	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/update"
)

// --- Mocks ---

type mockStudentUpdater struct {
	mu       sync.Mutex
	calls    []string
	updates  []update.Update
	failIDs  map[string]error
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (m *mockStudentUpdater) Update(_ context.Context, id string, u update.Update) (domstudent.Student, error) {
	cur := m.inFlight.Add(1)
	for {
		max := m.maxSeen.Load()
		if cur <= max || m.maxSeen.CompareAndSwap(max, cur) {
			break
		}
	}
	defer m.inFlight.Add(-1)

	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.updates = append(m.updates, u)
	m.mu.Unlock()

	if err, ok := m.failIDs[id]; ok {
		return domstudent.Student{}, err
	}
	return domstudent.Student{}, nil
}

func (m *mockStudentUpdater) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type mockBulkDeleter struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (m *mockBulkDeleter) BulkDelete(_ context.Context, ids []string) error {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string(nil), ids...))
	m.mu.Unlock()
	return m.err
}

type mockClassMembership struct {
	mu             sync.Mutex
	removeStudents [][]string
	removeProfs    [][]string
	classIDs       []string
	err            error
}

func (m *mockClassMembership) RemoveStudents(_ context.Context, classID string, ids []string) error {
	m.mu.Lock()
	m.classIDs = append(m.classIDs, classID)
	m.removeStudents = append(m.removeStudents, append([]string(nil), ids...))
	m.mu.Unlock()
	return m.err
}

func (m *mockClassMembership) RemoveProfessors(_ context.Context, classID string, ids []string) error {
	m.mu.Lock()
	m.classIDs = append(m.classIDs, classID)
	m.removeProfs = append(m.removeProfs, append([]string(nil), ids...))
	m.mu.Unlock()
	return m.err
}

func newService(students *mockStudentUpdater, studentsBulk, professorsBulk *mockBulkDeleter, classes *mockClassMembership) *Service {
	if students == nil {
		students = &mockStudentUpdater{}
	}
	if studentsBulk == nil {
		studentsBulk = &mockBulkDeleter{}
	}
	if professorsBulk == nil {
		professorsBulk = &mockBulkDeleter{}
	}
	if classes == nil {
		classes = &mockClassMembership{}
	}
	return New(students, studentsBulk, professorsBulk, classes)
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("s-%d", i)
	}
	return out
}

// --- UpdateStudents ---

func TestUpdateStudents_AllSucceed(t *testing.T) {
	students := &mockStudentUpdater{}
	svc := newService(students, nil, nil, nil)

	report, err := svc.UpdateStudents(context.Background(), ids(12), map[string]any{"semester": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(report.Succeeded()); got != 12 {
		t.Errorf("succeeded = %d, want 12", got)
	}
	if got := len(report.Failed()); got != 0 {
		t.Errorf("failed = %d, want 0", got)
	}
	if students.callCount() != 12 {
		t.Errorf("backend calls = %d, want 12", students.callCount())
	}
}

func TestUpdateStudents_PartialFailure(t *testing.T) {
	boom := errors.New("backend down")
	students := &mockStudentUpdater{failIDs: map[string]error{"s-1": boom, "s-3": boom}}
	svc := newService(students, nil, nil, nil)

	report, err := svc.UpdateStudents(context.Background(), ids(5), map[string]any{"division": "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(report.Succeeded()); got != 3 {
		t.Errorf("succeeded = %d, want 3", got)
	}
	if got := len(report.Failed()); got != 2 {
		t.Errorf("failed = %d, want 2", got)
	}
	if report.Total() != 5 {
		t.Errorf("total = %d, want 5", report.Total())
	}
	for _, f := range report.Failed() {
		if !errors.Is(f.Err(), boom) {
			t.Errorf("failure %s wrapped %v, want backend error", f.ID(), f.Err())
		}
	}
}

func TestUpdateStudents_ProgressSequence(t *testing.T) {
	students := &mockStudentUpdater{failIDs: map[string]error{"s-2": errors.New("nope")}}
	svc := newService(students, nil, nil, nil)

	var progress []dombatch.Progress
	_, err := svc.UpdateStudents(context.Background(), ids(9), map[string]any{"semester": 3},
		WithProgress(func(p dombatch.Progress) { progress = append(progress, p) }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(progress) != 9 {
		t.Fatalf("progress callbacks = %d, want 9", len(progress))
	}
	for i, p := range progress {
		if p.Done != i+1 {
			t.Errorf("progress[%d].Done = %d, want %d", i, p.Done, i+1)
		}
		if p.Total != 9 {
			t.Errorf("progress[%d].Total = %d, want 9", i, p.Total)
		}
	}
}

func TestUpdateStudents_ConcurrencyBound(t *testing.T) {
	students := &mockStudentUpdater{}
	svc := newService(students, nil, nil, nil)

	_, err := svc.UpdateStudents(context.Background(), ids(40), map[string]any{"semester": 1},
		WithConcurrency(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max := students.maxSeen.Load(); max > 3 {
		t.Errorf("observed %d in-flight updates, bound is 3", max)
	}
}

func TestUpdateStudents_DedupKeepsFirstOccurrence(t *testing.T) {
	students := &mockStudentUpdater{}
	svc := newService(students, nil, nil, nil)

	report, err := svc.UpdateStudents(context.Background(),
		[]string{"a", "b", "a", "", "c", "b"}, map[string]any{"semester": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total() != 3 {
		t.Errorf("total = %d, want 3 after dedup", report.Total())
	}
	if students.callCount() != 3 {
		t.Errorf("backend calls = %d, want 3", students.callCount())
	}
}

func TestUpdateStudents_EmptyAfterDedup(t *testing.T) {
	students := &mockStudentUpdater{}
	svc := newService(students, nil, nil, nil)

	_, err := svc.UpdateStudents(context.Background(), []string{"", ""}, map[string]any{"semester": 2})
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
	if students.callCount() != 0 {
		t.Errorf("backend calls = %d, want 0 on pre-flight rejection", students.callCount())
	}
}

func TestUpdateStudents_UnusableFieldsRejectedPreFlight(t *testing.T) {
	students := &mockStudentUpdater{}
	svc := newService(students, nil, nil, nil)

	_, err := svc.UpdateStudents(context.Background(), ids(3),
		map[string]any{"semester": "abc", "division": "   "})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("err = %v, want ErrEmptyUpdate", err)
	}
	if students.callCount() != 0 {
		t.Errorf("backend calls = %d, want 0 on pre-flight rejection", students.callCount())
	}
}

func TestUpdateStudents_SanitizesFields(t *testing.T) {
	students := &mockStudentUpdater{}
	svc := newService(students, nil, nil, nil)

	_, err := svc.UpdateStudents(context.Background(), []string{"s-0"},
		map[string]any{"semester": "5", "division": "A", "name": "evil"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(students.updates) != 1 {
		t.Fatalf("updates recorded = %d, want 1", len(students.updates))
	}
	u := students.updates[0]
	if u.Semester() == nil || *u.Semester() != 5 {
		t.Errorf("semester = %v, want 5", u.Semester())
	}
	if u.Division() == nil || *u.Division() != "A" {
		t.Errorf("division = %v, want A", u.Division())
	}
}

// --- Bulk variants ---

func TestDeleteStudents_SingleBackendCall(t *testing.T) {
	bulk := &mockBulkDeleter{}
	svc := newService(nil, bulk, nil, nil)

	var progress []dombatch.Progress
	report, err := svc.DeleteStudents(context.Background(), []string{"a", "b", "a", "c"},
		WithProgress(func(p dombatch.Progress) { progress = append(progress, p) }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bulk.calls) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(bulk.calls))
	}
	if got := len(bulk.calls[0]); got != 3 {
		t.Errorf("ids in call = %d, want 3 after dedup", got)
	}
	if !report.AllSucceeded() {
		t.Error("expected full success")
	}
	if len(progress) != 1 || progress[0].Done != 3 || progress[0].Total != 3 {
		t.Errorf("progress = %v, want exactly one {3 3}", progress)
	}
}

func TestDeleteStudents_FailureFailsEveryID(t *testing.T) {
	boom := errors.New("bulk endpoint down")
	bulk := &mockBulkDeleter{err: boom}
	svc := newService(nil, bulk, nil, nil)

	var progress []dombatch.Progress
	report, err := svc.DeleteStudents(context.Background(), []string{"a", "b", "c"},
		WithProgress(func(p dombatch.Progress) { progress = append(progress, p) }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(report.Failed()); got != 3 {
		t.Fatalf("failed = %d, want 3", got)
	}
	if len(report.Succeeded()) != 0 {
		t.Errorf("succeeded = %v, want none", report.Succeeded())
	}
	for _, f := range report.Failed() {
		if !errors.Is(f.Err(), boom) {
			t.Errorf("failure %s carries %v, want the bulk error", f.ID(), f.Err())
		}
	}
	if len(progress) != 1 || progress[0].Done != 3 || progress[0].Total != 3 {
		t.Errorf("progress = %v, want exactly one {3 3}", progress)
	}
}

func TestDeleteStudents_EmptyRejected(t *testing.T) {
	bulk := &mockBulkDeleter{}
	svc := newService(nil, bulk, nil, nil)

	_, err := svc.DeleteStudents(context.Background(), nil)
	if !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
	if len(bulk.calls) != 0 {
		t.Errorf("backend calls = %d, want 0", len(bulk.calls))
	}
}

func TestDeleteProfessors_Success(t *testing.T) {
	bulk := &mockBulkDeleter{}
	svc := newService(nil, nil, bulk, nil)

	report, err := svc.DeleteProfessors(context.Background(), []string{"p-1", "p-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.AllSucceeded() || report.Total() != 2 {
		t.Errorf("report = %+v, want 2 successes", report)
	}
}

func TestRemoveClassStudents_Success(t *testing.T) {
	classes := &mockClassMembership{}
	svc := newService(nil, nil, nil, classes)

	report, err := svc.RemoveClassStudents(context.Background(), "class-1", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.AllSucceeded() {
		t.Error("expected full success")
	}
	if len(classes.removeStudents) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(classes.removeStudents))
	}
	if classes.classIDs[0] != "class-1" {
		t.Errorf("classID = %s, want class-1", classes.classIDs[0])
	}
}

func TestRemoveClassStudents_MissingClassID(t *testing.T) {
	classes := &mockClassMembership{}
	svc := newService(nil, nil, nil, classes)

	_, err := svc.RemoveClassStudents(context.Background(), "", []string{"a"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(classes.removeStudents) != 0 {
		t.Errorf("backend calls = %d, want 0", len(classes.removeStudents))
	}
}

func TestRemoveClassProfessors_Failure(t *testing.T) {
	boom := errors.New("membership endpoint down")
	classes := &mockClassMembership{err: boom}
	svc := newService(nil, nil, nil, classes)

	report, err := svc.RemoveClassProfessors(context.Background(), "class-1", []string{"p-1", "p-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(report.Failed()); got != 2 {
		t.Errorf("failed = %d, want 2", got)
	}
}

// --- dedup ---

func TestDedup(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"keeps order", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"drops repeats", []string{"a", "b", "a", "b", "a"}, []string{"a", "b"}},
		{"drops empties", []string{"", "a", ""}, []string{"a"}},
		{"idempotent", []string{"a", "b"}, []string{"a", "b"}},
		{"all empty", []string{"", ""}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedup(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("dedup(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("dedup(%v) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}
