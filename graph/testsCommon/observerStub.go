package testsCommon

import "time"

// ObserverStub -
type ObserverStub struct {
	ObserveBuildHandler func(outcome string, duration time.Duration, skippedPoints int)
}

// ObserveBuild -
func (stub *ObserverStub) ObserveBuild(outcome string, duration time.Duration, skippedPoints int) {
	if stub.ObserveBuildHandler != nil {
		stub.ObserveBuildHandler(outcome, duration, skippedPoints)
	}
}

// IsInterfaceNil -
func (stub *ObserverStub) IsInterfaceNil() bool {
	return stub == nil
}
