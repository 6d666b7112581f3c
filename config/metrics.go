package config

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	// Enabled registers the conversion metrics with the default
	// Prometheus registerer when no recorder is passed explicitly.
	Enabled bool `json:"enabled"`
}
