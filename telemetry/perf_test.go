package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(10)
	stats := p.Stats()

	if stats.AvgFrame != 0 || stats.FPS != 0 {
		t.Error("empty collector should return zero stats")
	}
}

func TestPerfCollectorRecordsFrames(t *testing.T) {
	p := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		p.StartFrame()
		p.StartPhase(PhaseBackground)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseSimulate)
		time.Sleep(time.Millisecond)
		p.EndFrame()
	}

	stats := p.Stats()

	if stats.AvgFrame <= 0 {
		t.Error("average frame duration not recorded")
	}
	if stats.MinFrame > stats.AvgFrame || stats.AvgFrame > stats.MaxFrame {
		t.Errorf("avg %v outside [min %v, max %v]", stats.AvgFrame, stats.MinFrame, stats.MaxFrame)
	}
	if stats.FPS <= 0 {
		t.Error("fps not derived from frame duration")
	}

	pctSum := 0.0
	for _, pct := range stats.PhasePct {
		pctSum += pct
	}
	if pctSum <= 0 || pctSum > 101 {
		t.Errorf("phase percentages sum to %v", pctSum)
	}
}

func TestPerfCollectorWindowWraps(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 10; i++ {
		p.StartFrame()
		p.EndFrame()
	}

	if p.sampleCount != 4 {
		t.Errorf("sample count = %d, want window size 4", p.sampleCount)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgFrame: 2 * time.Millisecond,
		MinFrame: time.Millisecond,
		MaxFrame: 3 * time.Millisecond,
		P95:      3 * time.Millisecond,
		FPS:      500,
		PhasePct: map[string]float64{
			PhaseBackground: 10,
			PhaseSimulate:   60,
			PhaseConvert:    20,
			PhasePresent:    10,
		},
	}

	row := stats.ToCSV(600)
	if row.Frame != 600 {
		t.Errorf("frame = %d, want 600", row.Frame)
	}
	if row.AvgFrameUS != 2000 {
		t.Errorf("avg = %d us, want 2000", row.AvgFrameUS)
	}
	if row.SimulatePct != 60 {
		t.Errorf("simulate pct = %v, want 60", row.SimulatePct)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// All methods must be nil-safe.
	if err := om.WritePerf(PerfStatsCSV{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := om.WritePerf(PerfStatsCSV{Frame: 1, FPS: 60}); err != nil {
		t.Fatal(err)
	}
	if err := om.WritePerf(PerfStatsCSV{Frame: 2, FPS: 61}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
}
