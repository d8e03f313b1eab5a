package config_test

import (
	"errors"
	"testing"

	"github.com/okian/matchforge/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given the build-time defaults", t, func() {
		cfg := config.New()

		Convey("Then they describe the published dataset shape", func() {
			So(cfg.Rows, ShouldEqual, 1000)
			So(cfg.PlayerPoolSize, ShouldEqual, 50)
			So(cfg.TeamPoolSize, ShouldEqual, 10)
			So(cfg.Seed, ShouldEqual, 42)
			So(cfg.OutputPath, ShouldEqual, "Soccer_Analytics_Report_Data.xlsx")
			So(cfg.LogLevel, ShouldEqual, "info")
		})

		Convey("Then they validate", func() {
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("Then New mirrors the exported constants other packages build on", func() {
			So(cfg.Rows, ShouldEqual, config.DefaultRows)
			So(cfg.PlayerPoolSize, ShouldEqual, config.DefaultPlayerPool)
			So(cfg.TeamPoolSize, ShouldEqual, config.DefaultTeamPool)
			So(cfg.Seed, ShouldEqual, config.DefaultSeed)
			So(cfg.OutputPath, ShouldEqual, config.DefaultOutputPath)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given invalid parameter combinations", t, func() {
		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"zero rows", func(c *config.Config) { c.Rows = 0 }},
			{"negative rows", func(c *config.Config) { c.Rows = -5 }},
			{"empty player pool", func(c *config.Config) { c.PlayerPoolSize = 0 }},
			{"empty team pool", func(c *config.Config) { c.TeamPoolSize = 0 }},
			{"oversized team pool", func(c *config.Config) { c.TeamPoolSize = 27 }},
			{"empty output path", func(c *config.Config) { c.OutputPath = "" }},
		}

		for _, tc := range cases {
			Convey("Then "+tc.name+" is rejected", func() {
				cfg := config.New()
				tc.mutate(cfg)
				So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
			})
		}
	})
}
