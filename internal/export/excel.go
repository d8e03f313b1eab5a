// Package export writes the fact and dimension tables into a two-sheet
// xlsx workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/okian/matchforge/internal/domain/model"
)

// Sheet names of the exported workbook.
const (
	FactSheet    = "Match_Performance_Facts"
	SummarySheet = "Player_Summary_Dim"
)

// FactColumns is the fixed column order of the fact sheet.
var FactColumns = []string{
	"Match_ID", "Player_ID", "Team_Name", "Position", "Opponent_Strength",
	"Goals", "Assists", "Minutes_Played", "Shots_On_Target",
	"Pass_Completion_Rate", "Tackles_Succeeded", "Interceptions",
	"Performance_Score", "Efficiency_Tier",
}

// SummaryColumns is the fixed column order of the summary sheet.
var SummaryColumns = []string{
	"Player_ID", "Avg_Score_vs_Average", "Avg_Score_vs_Strong", "Avg_Score_vs_Weak",
}

// Workbook writes both tables to path. The workbook is assembled fully in
// memory and persisted by a single save, so a mid-write failure cannot
// leave a partial file that passes for valid output. The underlying file
// is closed on success and failure alike.
func Workbook(path string, facts []model.MatchRecord, summary []model.PlayerSummaryRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", ErrExportFailed, cerr)
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), FactSheet); err != nil {
		return fmt.Errorf("%w: rename fact sheet: %w", ErrExportFailed, err)
	}
	if err = writeFactSheet(f, facts); err != nil {
		return err
	}

	if _, err = f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("%w: create summary sheet: %w", ErrExportFailed, err)
	}
	if err = writeSummarySheet(f, summary); err != nil {
		return err
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %q: %w", ErrExportFailed, path, err)
	}
	return nil
}

func writeFactSheet(f *excelize.File, facts []model.MatchRecord) error {
	if err := writeRow(f, FactSheet, 1, toCells(FactColumns)); err != nil {
		return err
	}
	for i := range facts {
		r := &facts[i]
		row := []interface{}{
			r.MatchID, r.PlayerID, r.TeamName, string(r.Position), string(r.OpponentStrength),
			r.Goals, r.Assists, r.MinutesPlayed, r.ShotsOnTarget,
			r.PassCompletionRate, r.TacklesSucceeded, r.Interceptions,
			r.PerformanceScore, r.EfficiencyTier.String(),
		}
		if err := writeRow(f, FactSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary []model.PlayerSummaryRow) error {
	if err := writeRow(f, SummarySheet, 1, toCells(SummaryColumns)); err != nil {
		return err
	}
	for i := range summary {
		s := &summary[i]
		row := []interface{}{s.PlayerID, s.AvgScoreVsAverage, s.AvgScoreVsStrong, s.AvgScoreVsWeak}
		if err := writeRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow writes one row starting at column A of the given 1-based row.
func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("%w: %s row %d: %w", ErrExportFailed, sheet, row, err)
	}
	return nil
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

// ReadSheet reloads one sheet of an exported workbook as raw string rows,
// header included. Round-trip tests use it to verify nothing was dropped.
func ReadSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
