package logging

import (
	"time"
)

// TimingContext holds the start of a measurement begun with Start
type TimingContext struct {
	name      string
	startTime time.Time
}

// Start begins a timing measurement. Pair it with End or EndWithCount.
//
// Example:
//
//	timer := logging.Start("emit editor.sidebar.toggle")
//	// ... notify listeners ...
//	logging.EndWithCount(timer, delivered)
func Start(name string) TimingContext {
	return TimingContext{name: name, startTime: time.Now()}
}

// End logs the duration since Start at debug level
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}

// EndWithCount logs the duration since Start together with an item count
func EndWithCount(ctx TimingContext, count int) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
		"count", count,
	)
}

// Time runs fn and logs how long it took
func Time(name string, fn func()) {
	ctx := Start(name)
	fn()
	End(ctx)
}
