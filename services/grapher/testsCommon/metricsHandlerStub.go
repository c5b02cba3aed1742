package testsCommon

import "net/http"

// MetricsHandlerStub -
type MetricsHandlerStub struct {
	RecordRateLimitedHandler func()
	HandlerHandler           func() http.Handler
}

// RecordRateLimited -
func (stub *MetricsHandlerStub) RecordRateLimited() {
	if stub.RecordRateLimitedHandler != nil {
		stub.RecordRateLimitedHandler()
	}
}

// Handler -
func (stub *MetricsHandlerStub) Handler() http.Handler {
	if stub.HandlerHandler != nil {
		return stub.HandlerHandler()
	}

	return http.NotFoundHandler()
}

// IsInterfaceNil -
func (stub *MetricsHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
