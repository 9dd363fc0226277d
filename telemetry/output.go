package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/flurry/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir      string
	perfFile *os.File

	perfHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	perfPath := filepath.Join(dir, "perf.csv")
	f, err := os.Create(perfPath)
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WritePerf writes a perf stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStatsCSV) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats}

	if !om.perfHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil {
			return fmt.Errorf("closing perf.csv: %w", err)
		}
	}
	return nil
}
