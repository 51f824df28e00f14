package assessment

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/patient"
	"github.com/vineland/vsms-api/internal/domain/response"
)

var testTime = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func validInfo() patient.Info {
	return patient.Info{
		ChildName:     "Asha Kumar",
		PatientID:     "VIN100",
		TherapistName: "Dr. Rao",
		PatientType:   patient.TypeNew,
		AgeLevel:      "6-7",
	}
}

func scoredSet(cat *catalog.Catalog) *response.Set {
	rs := response.New(cat)
	rs.Set(1, response.Yes)
	return rs
}

func TestAssemble_GateOrder(t *testing.T) {
	cat := catalog.Flat()
	cases := []struct {
		name    string
		mutate  func(*patient.Info)
		want    string
	}{
		{"empty child name surfaces first", func(i *patient.Info) {
			i.ChildName = "  "
			i.PatientID = "" // also invalid, must not be reported
		}, "child name required"},
		{"therapist gate second", func(i *patient.Info) {
			i.TherapistName = ""
			i.PatientID = ""
		}, "therapist name required"},
		{"patient id gate third", func(i *patient.Info) {
			i.PatientID = " "
		}, "patient id required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := validInfo()
			tc.mutate(&info)
			_, err := Assemble(cat, info, scoredSet(cat), testTime)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if verr.Message != tc.want {
				t.Errorf("message = %q, want %q", verr.Message, tc.want)
			}
		})
	}
}

func TestAssemble_ZeroItemsScored(t *testing.T) {
	cat := catalog.Flat()
	_, err := Assemble(cat, validInfo(), response.New(cat), testTime)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Message != "at least one item must be scored" {
		t.Errorf("message = %q", verr.Message)
	}
}

func TestAssemble_SingleNoPasses(t *testing.T) {
	cat := catalog.Flat()
	rs := response.New(cat)
	rs.Set(1, response.No)
	rec, err := Assemble(cat, validInfo(), rs, testTime)
	if err != nil {
		t.Fatalf("a NO satisfies the attempted gate, got error: %v", err)
	}
	if rec.Totals.Grand != 0 {
		t.Errorf("grand = %v, want 0 (NO scores nothing)", rec.Totals.Grand)
	}
}

func TestAssemble_RecordFields(t *testing.T) {
	cat := catalog.Flat()
	rs := response.New(cat)
	rs.Set(1, response.Yes) // SOC
	rs.Set(9, response.Yes) // COM
	rec, err := Assemble(cat, validInfo(), rs, testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.AssessmentDate != "15/06/2025" {
		t.Errorf("assessment date = %q, want 15/06/2025", rec.AssessmentDate)
	}
	if !rec.Timestamp.Equal(testTime) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp, testTime)
	}
	if !strings.HasPrefix(rec.AssessmentID, "VSMS-20250615103000-") {
		t.Errorf("assessment id = %q, want time-derived prefix", rec.AssessmentID)
	}
	if rec.AssessmentID == rec.PatientID {
		t.Error("assessment id must be distinct from patient id")
	}
	if rec.Totals.ByDomain[catalog.SOC] != 1 || rec.Totals.ByDomain[catalog.COM] != 1 {
		t.Errorf("totals = %v", rec.Totals.ByDomain)
	}
	if rec.Totals.Grand != 2 {
		t.Errorf("grand = %v, want 2", rec.Totals.Grand)
	}
}

func TestAssemble_UniqueIDs(t *testing.T) {
	cat := catalog.Flat()
	a, _ := Assemble(cat, validInfo(), scoredSet(cat), testTime)
	b, _ := Assemble(cat, validInfo(), scoredSet(cat), testTime)
	if a.AssessmentID == b.AssessmentID {
		t.Error("same-instant assemblies produced identical assessment ids")
	}
}

func TestAssemble_SnapshotIsCopy(t *testing.T) {
	cat := catalog.Flat()
	rs := scoredSet(cat)
	rec, err := Assemble(cat, validInfo(), rs, testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rs.Set(1, response.No)
	if rec.Responses[1] != response.Yes {
		t.Error("record responses follow the live set; snapshot must be a copy")
	}
}

func TestToStored(t *testing.T) {
	cat := catalog.Weighted()
	rs := response.New(cat)
	rs.Set(1, response.Yes) // SOC, 0.8
	rs.Set(9, response.Yes) // COM, 0.8
	rec, err := Assemble(cat, validInfo(), rs, testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := rec.ToStored()
	if stored.SOCTotal != 0.8 || stored.COMTotal != 0.8 {
		t.Errorf("stored totals SOC=%v COM=%v, want 0.8 each", stored.SOCTotal, stored.COMTotal)
	}
	if stored.GrandTotal != 1.6 {
		t.Errorf("stored grand = %v, want 1.6", stored.GrandTotal)
	}
	if stored.PatientID != "VIN100" || stored.ChildName != "Asha Kumar" {
		t.Errorf("identity fields not carried: %+v", stored)
	}
	if !strings.Contains(stored.ResponsesJSON, `"1":"YES"`) {
		t.Errorf("responses not serialized: %s", stored.ResponsesJSON)
	}
}
