package testsCommon

import (
	"github.com/iulianpascalau/coverage-graph/graph/chart"
	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
)

// AssemblerStub -
type AssemblerStub struct {
	BuildHandler func(chain coverage.Chain, spec *layout.Builder) (*chart.Chart, error)
}

// Build -
func (stub *AssemblerStub) Build(chain coverage.Chain, spec *layout.Builder) (*chart.Chart, error) {
	if stub.BuildHandler != nil {
		return stub.BuildHandler(chain, spec)
	}

	return &chart.Chart{}, nil
}

// IsInterfaceNil -
func (stub *AssemblerStub) IsInterfaceNil() bool {
	return stub == nil
}
