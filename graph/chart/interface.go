package chart

import "time"

// Observer receives the result of every assembled chart
type Observer interface {
	// ObserveBuild is called once per Build with the outcome, the elapsed time and the number of points dropped by skip-zero
	ObserveBuild(outcome string, duration time.Duration, skippedPoints int)
	IsInterfaceNil() bool
}
