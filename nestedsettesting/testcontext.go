package nestedsettesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Rng *rand.Rand
}

type TestConfig struct {
	// Seed fixes the RNG so generated trees and shuffles are the same from
	// run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		T:   t,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}
