package tables

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tsawler/shiftsheet/model"
)

// ErrUnknownDetector is returned by [NewDetector] for unregistered names.
var ErrUnknownDetector = errors.New("unknown table detector")

// Detector is the interface for table detection algorithms
type Detector interface {
	// Detect finds tables in a page
	Detect(page *model.Page) ([]*model.Table, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

// Config holds detector configuration
type Config struct {
	// Minimum rows for a valid table
	MinRows int

	// Minimum columns for a valid table
	MinCols int

	// Minimum confidence threshold (0-1)
	MinConfidence float64

	// Whether ruling lines may define rows and columns
	UseLines bool

	// Tolerance for column alignment and line snapping (points)
	AlignmentTolerance float64

	// Largest difference between two fragments' vertical centers for them
	// to share a row when rows are built from text (points)
	RowTolerance float64

	// Vertical gap that splits fragments into separate clusters (points)
	ClusterGap float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinRows:            2,
		MinCols:            2,
		MinConfidence:      0.3,
		UseLines:           true,
		AlignmentTolerance: 2.0,
		RowTolerance:       3.0,
		ClusterGap:         50.0,
	}
}

// Validate reports configuration values no detector can work with.
func (c Config) Validate() error {
	switch {
	case c.MinRows < 1:
		return fmt.Errorf("min rows must be positive, got %d", c.MinRows)
	case c.MinCols < 1:
		return fmt.Errorf("min cols must be positive, got %d", c.MinCols)
	case c.MinConfidence < 0 || c.MinConfidence > 1:
		return fmt.Errorf("min confidence must be within [0, 1], got %g", c.MinConfidence)
	case c.AlignmentTolerance <= 0:
		return fmt.Errorf("alignment tolerance must be positive, got %g", c.AlignmentTolerance)
	case c.RowTolerance <= 0:
		return fmt.Errorf("row tolerance must be positive, got %g", c.RowTolerance)
	}
	return nil
}

// Factory builds a fresh detector. Detectors carry configuration, so every
// caller gets its own instance.
type Factory func() Detector

// DetectorRegistry holds registered detector factories
type DetectorRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new detector registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		factories: make(map[string]Factory),
	}
}

// Register registers a detector factory under name
func (r *DetectorRegistry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// New builds the detector registered under name
func (r *DetectorRegistry) New(name string) (Detector, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDetector, name)
	}
	return factory(), nil
}

// List returns all registered detector names, sorted
func (r *DetectorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterDetector registers a detector factory globally
func RegisterDetector(name string, factory Factory) {
	globalRegistry.Register(name, factory)
}

// NewDetector builds a globally registered detector
func NewDetector(name string) (Detector, error) {
	return globalRegistry.New(name)
}

// ListDetectors returns all registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	RegisterDetector(GeometricName, func() Detector { return NewGeometricDetector() })
}
