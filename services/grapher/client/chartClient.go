package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iulianpascalau/coverage-graph/graph/chart"
	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"
)

const (
	chartPath   = "/api/chart"
	layoutsPath = "/api/layouts"
)

var log = logger.GetOrCreate("client")

// RequestError is returned when the service answers with a non 2xx status code
type RequestError struct {
	StatusCode int
	Reason     string
	Message    string
}

// Error returns the error message
func (e *RequestError) Error() string {
	if len(e.Reason) > 0 {
		return fmt.Sprintf("service rejected request with status code %d, reason %s: %s", e.StatusCode, e.Reason, e.Message)
	}

	return fmt.Sprintf("service rejected request with status code %d: %s", e.StatusCode, e.Message)
}

type chartClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewChartClient creates a new client for the grapher service reachable at the provided base endpoint
func NewChartClient(endpoint, apiKey string, timeout time.Duration) *chartClient {
	return &chartClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BuildChart asks the service to assemble a chart
func (cc *chartClient) BuildChart(ctx context.Context, request common.ChartRequest) (*chart.Chart, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart request: %w", err)
	}

	response, err := cc.do(ctx, http.MethodPost, chartPath, body)
	if err != nil {
		return nil, err
	}

	result := &chart.Chart{}
	err = json.Unmarshal(response, result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}

	log.Debug("received chart", "endpoint", cc.endpoint, "axes", len(result.Axes), "series", result.NumSeries())

	return result, nil
}

// Layouts returns the names of the layouts known by the service
func (cc *chartClient) Layouts(ctx context.Context) ([]string, error) {
	response, err := cc.do(ctx, http.MethodGet, layoutsPath, nil)
	if err != nil {
		return nil, err
	}

	items := gjson.GetBytes(response, "layouts").Array()
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.String())
	}

	return names, nil
}

func (cc *chartClient) do(ctx context.Context, method string, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, cc.endpoint+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Api-Key", cc.apiKey)

	resp, err := cc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error sending request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Reason:     gjson.GetBytes(data, "reason").String(),
			Message:    gjson.GetBytes(data, "error").String(),
		}
	}

	return data, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (cc *chartClient) IsInterfaceNil() bool {
	return cc == nil
}
