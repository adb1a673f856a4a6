package parity

import (
	"path/filepath"
	"runtime"
	"testing"

	"prospector/core"

	. "github.com/smartystreets/goconvey/convey"
)

func newEngines() (Engine, Engine) {
	cfg, err := core.NewConfig()
	if err != nil {
		panic(err)
	}
	return NewFastEngine(cfg), NewReferenceEngine(cfg)
}

func testdataPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "testdata", "scenarios.yaml")
}

func TestParityProgrammaticSuite(t *testing.T) {
	Convey("Given the default programmatic suite", t, func() {
		suite := DefaultSuite([]uint64{0, 1, 2, 42, 123}, 300)

		for _, scenario := range suite {
			scenario := scenario
			Convey("scenario "+scenario.Name, func() {
				fast, ref := newEngines()
				bundle := Run(scenario.Seed, scenario.Actions, fast, ref)
				So(bundle, ShouldBeNil)
			})
		}
	})
}

func TestParityYAMLFixtures(t *testing.T) {
	scenarios, err := LoadScenarios(testdataPath())
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}

	Convey("Given the YAML-fixture scenarios", t, func() {
		for _, scenario := range scenarios {
			scenario := scenario
			Convey("scenario "+scenario.Name, func() {
				fast, ref := newEngines()
				bundle := Run(scenario.Seed, scenario.Actions, fast, ref)
				So(bundle, ShouldBeNil)
			})
		}
	})
}

func TestParityDeterminismAcrossRuns(t *testing.T) {
	suite := DefaultSuite([]uint64{7}, 200)
	scenario := suite[0]

	fastA, refA := newEngines()
	firstFast := runTrace(fastA, scenario.Seed, scenario.Actions)
	firstRef := runTrace(refA, scenario.Seed, scenario.Actions)

	fastB, refB := newEngines()
	secondFast := runTrace(fastB, scenario.Seed, scenario.Actions)
	secondRef := runTrace(refB, scenario.Seed, scenario.Actions)

	Convey("Given the same seed and actions run twice", t, func() {
		Convey("the fast engine is bit-identical across runs", func() {
			So(firstFast, ShouldResemble, secondFast)
		})
		Convey("the reference engine is bit-identical across runs", func() {
			So(firstRef, ShouldResemble, secondRef)
		})
	})
}

func runTrace(e Engine, seed uint64, actions []uint8) []Trace {
	e.Reset(seed)
	traces := make([]Trace, len(actions))
	for i, a := range actions {
		traces[i] = e.Step(a)
	}
	return traces
}
