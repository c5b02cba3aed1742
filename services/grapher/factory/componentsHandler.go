package factory

import (
	"github.com/iulianpascalau/coverage-graph/graph/chart"
	"github.com/iulianpascalau/coverage-graph/services/grapher/api"
	"github.com/iulianpascalau/coverage-graph/services/grapher/config"
	"github.com/iulianpascalau/coverage-graph/services/grapher/metrics"
	"github.com/iulianpascalau/coverage-graph/services/grapher/presets"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type componentsHandler struct {
	metrics   *metrics.Metrics
	assembler api.ChartAssembler
	layouts   api.LayoutProvider
	server    Server
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(
	serviceKeyApi string,
	cfg config.Config,
) (*componentsHandler, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	serviceMetrics := metrics.New(registry)

	assembler, err := chart.NewAssembler(chart.ArgsAssembler{
		Observer: serviceMetrics,
	})
	if err != nil {
		return nil, err
	}

	layouts, err := presets.NewPresets(cfg.Layouts)
	if err != nil {
		return nil, err
	}

	serverArgs := api.ArgsWebServer{
		ServiceKeyApi:        serviceKeyApi,
		ListenAddress:        cfg.ListenAddress,
		DefaultHistoryLength: cfg.DefaultHistoryLength,
		RateLimit:            cfg.RateLimit,
		Assembler:            assembler,
		Layouts:              layouts,
		Metrics:              serviceMetrics,
		GeneralHandler:       api.CORSMiddleware,
	}

	server, err := api.NewServer(serverArgs)
	if err != nil {
		return nil, err
	}

	return &componentsHandler{
		metrics:   serviceMetrics,
		assembler: assembler,
		layouts:   layouts,
		server:    server,
	}, nil
}

// GetMetrics returns the metrics component
func (ch *componentsHandler) GetMetrics() *metrics.Metrics {
	return ch.metrics
}

// GetAssembler returns the chart assembler
func (ch *componentsHandler) GetAssembler() api.ChartAssembler {
	return ch.assembler
}

// GetLayouts returns the named layouts registry
func (ch *componentsHandler) GetLayouts() api.LayoutProvider {
	return ch.layouts
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() {
	ch.server.Start()
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	_ = ch.server.Close()
}
