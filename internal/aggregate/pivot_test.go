package aggregate_test

import (
	"testing"

	"github.com/okian/matchforge/internal/aggregate"
	"github.com/okian/matchforge/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayerSummaries(t *testing.T) {
	Convey("Given three known rows for one player", t, func() {
		records := []model.MatchRecord{
			{PlayerID: "P001", OpponentStrength: model.StrengthStrong, PerformanceScore: 2.0},
			{PlayerID: "P001", OpponentStrength: model.StrengthStrong, PerformanceScore: 4.0},
			{PlayerID: "P001", OpponentStrength: model.StrengthWeak, PerformanceScore: 6.0},
		}

		Convey("When summaries are built", func() {
			rows := aggregate.PlayerSummaries(records)

			Convey("Then the player occupies exactly one row", func() {
				So(rows, ShouldHaveLength, 1)
				So(rows[0].PlayerID, ShouldEqual, "P001")
			})

			Convey("Then per-strength means are correct and absent groups default to 0", func() {
				So(rows[0].AvgScoreVsStrong, ShouldEqual, 3.0)
				So(rows[0].AvgScoreVsWeak, ShouldEqual, 6.0)
				So(rows[0].AvgScoreVsAverage, ShouldEqual, 0.0)
			})
		})
	})

	Convey("Given rows for several players", t, func() {
		records := []model.MatchRecord{
			{PlayerID: "P003", OpponentStrength: model.StrengthAverage, PerformanceScore: 5.0},
			{PlayerID: "P001", OpponentStrength: model.StrengthAverage, PerformanceScore: 7.0},
			{PlayerID: "P002", OpponentStrength: model.StrengthAverage, PerformanceScore: 9.0},
		}

		Convey("When summaries are built", func() {
			rows := aggregate.PlayerSummaries(records)

			Convey("Then rows come back sorted by player id", func() {
				So(rows, ShouldHaveLength, 3)
				So(rows[0].PlayerID, ShouldEqual, "P001")
				So(rows[1].PlayerID, ShouldEqual, "P002")
				So(rows[2].PlayerID, ShouldEqual, "P003")
			})
		})
	})

	Convey("Given means that need rounding", t, func() {
		records := []model.MatchRecord{
			{PlayerID: "P001", OpponentStrength: model.StrengthStrong, PerformanceScore: 1.0},
			{PlayerID: "P001", OpponentStrength: model.StrengthStrong, PerformanceScore: 2.0},
			{PlayerID: "P001", OpponentStrength: model.StrengthStrong, PerformanceScore: 2.01},
		}

		Convey("Then the mean is rounded to 2 decimals", func() {
			rows := aggregate.PlayerSummaries(records)
			// (1 + 2 + 2.01) / 3 = 1.67
			So(rows[0].AvgScoreVsStrong, ShouldEqual, 1.67)
		})
	})

	Convey("Given no records", t, func() {
		Convey("Then the summary is empty", func() {
			So(aggregate.PlayerSummaries(nil), ShouldBeEmpty)
		})
	})
}
