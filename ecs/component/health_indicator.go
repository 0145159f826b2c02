package component

// HealthIndicator is one heart of the hero's life bar.
type HealthIndicator struct {
	Slot    int
	Visible bool
}

var HealthIndicatorComponent = NewComponent[HealthIndicator]()
