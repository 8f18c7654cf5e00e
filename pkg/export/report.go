// Package export writes a watering report workbook: one sheet of schedule
// rows, one sheet of window totals.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"irricore/entities"
	"irricore/pkg/aggregate"
	"irricore/pkg/calendar"
)

const (
	SheetSchedules = "Schedules"
	SheetSummary   = "Summary"
)

var scheduleHeader = []any{
	"ID", "Location", "Date", "Status", "Recommended (L)", "Actual (L)", "Executed By", "Notes",
}

func WriteReport(w io.Writer, schedules []*entities.WateringSchedule, stats aggregate.Stats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSchedules); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetSchedules, "A1", &scheduleHeader); err != nil {
		return err
	}
	for i, s := range schedules {
		actual := any("")
		if s.Execution.ActualAmount != nil {
			actual = *s.Execution.ActualAmount
		}
		notes := s.Notes
		if s.Execution.Notes != "" {
			notes = s.Execution.Notes
		}
		row := []any{
			s.ID,
			s.LocationID,
			s.Date.Format(calendar.DayFormat),
			string(s.Status),
			s.RecommendedAmount,
			actual,
			s.Execution.ExecutedBy,
			notes,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetSchedules, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return err
	}
	summary := [][]any{
		{"Pending", stats.PendingCount},
		{"Completed", stats.CompletedCount},
		{"Skipped", stats.SkippedCount},
		{"Total water used (L)", stats.TotalWaterUsed},
	}
	for i, row := range summary {
		r := row
		if err := f.SetSheetRow(SheetSummary, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return err
		}
	}

	return f.Write(w)
}
