package chart

import (
	"errors"
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("chart")

// ArgsAssembler defines the assembler arguments
type ArgsAssembler struct {
	Observer Observer
}

type assembler struct {
	observer Observer
}

// NewAssembler creates an assembler reporting every build to the provided observer
func NewAssembler(args ArgsAssembler) (*assembler, error) {
	if check.IfNil(args.Observer) {
		return nil, errors.New("nil observer")
	}

	return &assembler{
		observer: args.Observer,
	}, nil
}

// Build assembles the chart, see the package level Build function. The assembler holds no mutable
// state so concurrent calls are safe.
func (a *assembler) Build(chain coverage.Chain, spec *layout.Builder) (*Chart, error) {
	start := time.Now()
	result, skipped, err := build(chain, spec)
	elapsed := time.Since(start)

	outcome := Outcome(err)
	a.observer.ObserveBuild(outcome, elapsed, skipped)
	if err != nil {
		log.Debug("chart assembly failed", "reason", outcome, "error", err)
		return nil, err
	}

	log.Debug("chart assembled",
		"domain", len(result.Domain),
		"axes", len(result.Axes),
		"series", result.NumSeries(),
		"skipped points", skipped,
		"duration", elapsed)

	return result, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (a *assembler) IsInterfaceNil() bool {
	return a == nil
}
