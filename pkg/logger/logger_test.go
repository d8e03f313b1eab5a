package logger_test

import (
	"context"
	"testing"

	"github.com/okian/matchforge/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)

			ctx := context.Background()
			So(func() {
				l.Info(ctx, "info message", logger.String("k", "v"))
				l.Debug(ctx, "debug message", logger.Int("n", 1))
				l.Warn(ctx, "warn message", logger.Float64("f", 1.5))
				l.Error(ctx, "error message", logger.Bool("b", true))
			}, ShouldNotPanic)
		})

		Convey("Then Named returns a scoped logger", func() {
			So(logger.Get().Named("stage"), ShouldNotBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels parse case-insensitively", func() {
			for _, level := range []string{"debug", "INFO", "warn", "warning", "Error", ""} {
				So(logger.SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("Then unknown levels are rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field helpers", t, func() {
		Convey("Then each carries its key and value", func() {
			So(logger.String("a", "b"), ShouldResemble, logger.Field{Key: "a", Value: "b"})
			So(logger.Int("n", 2), ShouldResemble, logger.Field{Key: "n", Value: 2})
			So(logger.Int64("n64", int64(3)), ShouldResemble, logger.Field{Key: "n64", Value: int64(3)})
			So(logger.Float64("f", 2.5), ShouldResemble, logger.Field{Key: "f", Value: 2.5})
			So(logger.Bool("b", true), ShouldResemble, logger.Field{Key: "b", Value: true})
			So(logger.Any("x", []int{1}), ShouldResemble, logger.Field{Key: "x", Value: []int{1}})
		})

		Convey("Then Error uses the conventional key", func() {
			So(logger.Error(nil).Key, ShouldEqual, "error")
		})
	})
}
