package archive

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vineland/vsms-api/internal/domain/catalog"
	"github.com/vineland/vsms-api/internal/domain/scoring"
)

const exportSheet = "Assessments"

var exportHeader = []string{
	"Timestamp", "Patient ID", "Child Name", "DOB", "Age", "Gender",
	"Assessment Date", "Age Level", "Therapist", "Assessment ID",
	"SHG", "SHE", "SHD", "SD", "OCC", "COM", "LOC", "SOC", "Grand Total",
}

// ExportXLSX renders the archive as a workbook mirroring the spreadsheet
// layout the records are stored in.
func ExportXLSX(records []StoredRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheet)

	for col, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range records {
		row := []interface{}{
			r.Timestamp.Format("02/01/2006 15:04:05"),
			r.PatientID, r.ChildName, r.DOB, r.Age, r.Gender,
			r.AssessmentDate, catalog.BlockLabel(r.AgeLevel), r.TherapistName, r.AssessmentID,
		}
		for _, d := range catalog.Domains {
			row = append(row, scoring.FormatScore(r.DomainTotal(d)))
		}
		row = append(row, scoring.FormatScore(r.GrandTotal))

		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
