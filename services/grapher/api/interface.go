package api

import (
	"net/http"

	"github.com/iulianpascalau/coverage-graph/graph/chart"
	"github.com/iulianpascalau/coverage-graph/graph/coverage"
	"github.com/iulianpascalau/coverage-graph/graph/layout"
	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
)

// ChartAssembler defines the component able to build charts from a history and a layout
type ChartAssembler interface {
	Build(chain coverage.Chain, spec *layout.Builder) (*chart.Chart, error)
	IsInterfaceNil() bool
}

// LayoutProvider defines the registry of named layouts
type LayoutProvider interface {
	// Layout returns the layout registered under the provided name
	Layout(name string) (common.LayoutDTO, bool)

	// Names returns the sorted list of the registered layout names
	Names() []string

	IsInterfaceNil() bool
}

// MetricsHandler defines the metrics component as seen by the server
type MetricsHandler interface {
	RecordRateLimited()
	Handler() http.Handler
	IsInterfaceNil() bool
}
