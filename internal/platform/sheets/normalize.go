package sheets

import (
	"strconv"
	"time"

	"github.com/vineland/vsms-api/internal/domain/archive"
)

// Normalize maps one raw sheet row onto the canonical stored record.
// Rows have appeared with two casings over the sheet's history
// (Patient_ID vs patientId); both are accepted here so the rest of the
// system only ever deals with the canonical shape.
func Normalize(row map[string]interface{}) archive.StoredRecord {
	return archive.StoredRecord{
		PatientID:      str(row, "patientId", "Patient_ID"),
		ChildName:      str(row, "childName", "Child_Name"),
		DOB:            str(row, "dob", "DOB"),
		Age:            str(row, "age", "Age"),
		Gender:         str(row, "gender", "Gender"),
		AssessmentDate: str(row, "assessmentDate", "Assessment_Date"),
		AgeLevel:       str(row, "ageLevel", "Age_Level"),
		TherapistName:  str(row, "therapistName", "Therapist_Name"),
		AssessmentID:   str(row, "assessmentId", "Assessment_ID"),
		ResponsesJSON:  str(row, "responsesJSON", "Vineland_Data_JSON"),
		SHGTotal:       num(row, "SHG_total", "SHG_Total"),
		SHETotal:       num(row, "SHE_total", "SHE_Total"),
		SHDTotal:       num(row, "SHD_total", "SHD_Total"),
		SDTotal:        num(row, "SD_total", "SD_Total"),
		OCCTotal:       num(row, "OCC_total", "OCC_Total"),
		COMTotal:       num(row, "COM_total", "COM_Total"),
		LOCTotal:       num(row, "LOC_total", "LOC_Total"),
		SOCTotal:       num(row, "SOC_total", "SOC_Total"),
		GrandTotal:     num(row, "grandTotal", "Grand_Total"),
		Timestamp:      stamp(row, "timestamp", "Timestamp"),
	}
}

func str(row map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok {
			switch x := v.(type) {
			case string:
				return x
			case float64:
				return strconv.FormatFloat(x, 'f', -1, 64)
			}
		}
	}
	return ""
}

func num(row map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := row[k]; ok {
			switch x := v.(type) {
			case float64:
				return x
			case string:
				if f, err := strconv.ParseFloat(x, 64); err == nil {
					return f
				}
			}
		}
	}
	return 0
}

func stamp(row map[string]interface{}, keys ...string) time.Time {
	for _, k := range keys {
		if s, ok := row[k].(string); ok {
			for _, layout := range []string{time.RFC3339, "02/01/2006 15:04:05", "02/01/2006"} {
				if t, err := time.Parse(layout, s); err == nil {
					return t
				}
			}
		}
	}
	return time.Time{}
}
