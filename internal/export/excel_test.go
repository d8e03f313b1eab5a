package export_test

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/okian/matchforge/internal/domain/model"
	"github.com/okian/matchforge/internal/export"
	. "github.com/smartystreets/goconvey/convey"
)

func fixtureRecords() []model.MatchRecord {
	return []model.MatchRecord{
		{
			MatchID: 101, PlayerID: "P001", TeamName: "Team A",
			OpponentStrength: model.StrengthStrong, Position: model.PositionForward,
			MinutesPlayed: 90, Goals: 2, Assists: 1, ShotsOnTarget: 4,
			PassCompletionRate: 0.82, TacklesSucceeded: 1, Interceptions: 0,
			PerformanceScore: 8.75, EfficiencyTier: model.TierExcellent,
		},
		{
			MatchID: 102, PlayerID: "P002", TeamName: "Team B",
			OpponentStrength: model.StrengthWeak, Position: model.PositionGoalkeeper,
			MinutesPlayed: 90, PassCompletionRate: 0.70,
			PerformanceScore: 1.0, EfficiencyTier: model.TierPoor,
		},
	}
}

func fixtureSummary() []model.PlayerSummaryRow {
	return []model.PlayerSummaryRow{
		{PlayerID: "P001", AvgScoreVsAverage: 0, AvgScoreVsStrong: 8.75, AvgScoreVsWeak: 0},
		{PlayerID: "P002", AvgScoreVsAverage: 0, AvgScoreVsStrong: 0, AvgScoreVsWeak: 1.0},
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	Convey("Given an exported workbook", t, func() {
		path := filepath.Join(t.TempDir(), "report.xlsx")
		facts := fixtureRecords()
		summary := fixtureSummary()
		So(export.Workbook(path, facts, summary), ShouldBeNil)

		Convey("When the fact sheet is reloaded", func() {
			rows, err := export.ReadSheet(path, export.FactSheet)
			So(err, ShouldBeNil)

			Convey("Then the column order survives exactly", func() {
				So(rows[0], ShouldResemble, export.FactColumns)
			})

			Convey("Then no rows are silently dropped", func() {
				So(rows, ShouldHaveLength, len(facts)+1)
			})

			Convey("Then cell values reload faithfully", func() {
				So(rows[1][0], ShouldEqual, "101")
				So(rows[1][1], ShouldEqual, "P001")
				So(rows[1][3], ShouldEqual, "Forward")
				So(rows[1][13], ShouldEqual, "Excellent")

				score, perr := strconv.ParseFloat(rows[1][12], 64)
				So(perr, ShouldBeNil)
				So(score, ShouldEqual, 8.75)
			})
		})

		Convey("When the summary sheet is reloaded", func() {
			rows, err := export.ReadSheet(path, export.SummarySheet)
			So(err, ShouldBeNil)

			Convey("Then headers and row count match the in-memory table", func() {
				So(rows[0], ShouldResemble, export.SummaryColumns)
				So(rows, ShouldHaveLength, len(summary)+1)
			})

			Convey("Then sentinel zeroes persist as data, not blanks", func() {
				avg, perr := strconv.ParseFloat(rows[1][1], 64)
				So(perr, ShouldBeNil)
				So(avg, ShouldEqual, 0.0)
			})
		})
	})
}

func TestWorkbookWriteFailure(t *testing.T) {
	Convey("Given an unwritable output path", t, func() {
		path := filepath.Join(t.TempDir(), "missing", "nested", "report.xlsx")

		Convey("Then the export fails with a wrapped error", func() {
			err := export.Workbook(path, fixtureRecords(), fixtureSummary())
			So(errors.Is(err, export.ErrExportFailed), ShouldBeTrue)
		})
	})
}
