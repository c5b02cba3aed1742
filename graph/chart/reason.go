package chart

import (
	"errors"

	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
)

// Build outcomes, also used as failure reasons
const (
	OutcomeSuccess         = "success"
	OutcomeConfiguration   = "configuration"
	OutcomeChainIntegrity  = "chain_integrity"
	OutcomeInvalidSnapshot = "invalid_snapshot"
	OutcomeOther           = "other"
)

// Outcome classifies a Build error
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, layout.ErrConfiguration):
		return OutcomeConfiguration
	case errors.Is(err, coverage.ErrChainIntegrity):
		return OutcomeChainIntegrity
	case errors.Is(err, coverage.ErrInvalidSnapshot):
		return OutcomeInvalidSnapshot
	default:
		return OutcomeOther
	}
}
