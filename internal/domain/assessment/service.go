package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/vineland/vsms-api/internal/domain/archive"
	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/patient"
	"github.com/vineland/vsms-api/internal/domain/response"
)

// PersistenceError wraps a failure of the store collaborator. The
// session state is left untouched so the same submission can be retried
// without re-entry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Service orchestrates validation, scoring, submission and the
// post-submit session reset.
type Service struct {
	cat   *catalog.Catalog
	store Store
	now   func() time.Time
}

func NewService(cat *catalog.Catalog, store Store) *Service {
	return &Service{cat: cat, store: store, now: time.Now}
}

// Catalog returns the item table the service scores against.
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// Submit assembles a record from the session and hands it to the store.
// Only after the store acknowledges does the session reset: responses
// back to all NOT_TESTED, identity fields cleared, patient type and age
// level preserved. On any failure the session is untouched for retry.
func (s *Service) Submit(ctx context.Context, sess *Session) (*Record, error) {
	rec, err := Assemble(s.cat, sess.Info, sess.Responses, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Submit(ctx, rec.ToStored()); err != nil {
		return nil, &PersistenceError{Op: "submit assessment", Err: err}
	}
	sess.Responses.Reset()
	sess.Info.ClearIdentity()
	return rec, nil
}

// NextPatientID re-derives the next sequential patient id from the
// latest stored collection. It must be called again whenever the
// collection may have changed; the allocator itself holds no state.
func (s *Service) NextPatientID(ctx context.Context) (string, error) {
	records, err := s.store.FetchAll(ctx)
	if err != nil {
		return "", &PersistenceError{Op: "fetch patient ids", Err: err}
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.PatientID)
	}
	return patient.NextID(ids), nil
}

// Records returns the full stored archive.
func (s *Service) Records(ctx context.Context) ([]archive.StoredRecord, error) {
	records, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch assessments", Err: err}
	}
	return records, nil
}

// Record looks up a single stored record by assessment id.
func (s *Service) Record(ctx context.Context, assessmentID string) (archive.StoredRecord, bool, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return archive.StoredRecord{}, false, err
	}
	for _, r := range records {
		if r.AssessmentID == assessmentID {
			return r, true, nil
		}
	}
	return archive.StoredRecord{}, false, nil
}

// Session is the single active entry context: the demographics being
// filled in and the live response set. It is exclusively owned by one
// clinician at a time; the core arbitrates no concurrent writers.
type Session struct {
	Info      patient.Info
	Responses *response.Set
}

// NewSession starts a fresh entry context over the catalog.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{Responses: response.New(cat)}
}
