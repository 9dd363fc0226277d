// Package telemetry collects frame timing over a rolling window and exports
// aggregates via slog and CSV.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for the render frame.
const (
	PhaseBackground = "background"
	PhaseSimulate   = "simulate"
	PhaseConvert    = "convert"
	PhasePresent    = "present"
)

// phases lists all frame phases in execution order.
var phases = []string{PhaseBackground, PhaseSimulate, PhaseConvert, PhasePresent}

// FrameSample holds timing data for a single rendered frame.
type FrameSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timings over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize frames
// (e.g. 120 for two seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = FrameSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}

	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated frame statistics over the window.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	StdDev   time.Duration
	P95      time.Duration

	// Phase percentages of total frame time
	PhasePct map[string]float64

	FPS float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{PhasePct: make(map[string]float64)}
	}

	durations := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	var minFrame, maxFrame time.Duration

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		durations[i] = float64(s.FrameDuration)

		if i == 0 || s.FrameDuration < minFrame {
			minFrame = s.FrameDuration
		}
		if s.FrameDuration > maxFrame {
			maxFrame = s.FrameDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean := stat.Mean(durations, nil)
	sd := stat.StdDev(durations, nil)
	if p.sampleCount < 2 {
		sd = 0
	}

	sort.Float64s(durations)
	p95 := stat.Quantile(0.95, stat.Empirical, durations, nil)

	avg := time.Duration(mean)
	phasePct := make(map[string]float64)
	totalFrames := time.Duration(p.sampleCount) * avg
	if totalFrames > 0 {
		for phase, sum := range phaseSum {
			phasePct[phase] = float64(sum) / float64(totalFrames) * 100
		}
	}

	var fps float64
	if mean > 0 {
		fps = float64(time.Second) / mean
	}

	return PerfStats{
		AvgFrame: avg,
		MinFrame: minFrame,
		MaxFrame: maxFrame,
		StdDev:   time.Duration(sd),
		P95:      time.Duration(p95),
		PhasePct: phasePct,
		FPS:      fps,
	}
}

// LogStats logs frame statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrame.Microseconds(),
		"min_frame_us", s.MinFrame.Microseconds(),
		"max_frame_us", s.MaxFrame.Microseconds(),
		"p95_frame_us", s.P95.Microseconds(),
		"fps", int(s.FPS),
	}

	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95.Microseconds()),
		slog.Float64("fps", s.FPS),
	}

	for phase, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(phase+"_pct", pct))
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of frame stats.
type PerfStatsCSV struct {
	Frame         int64   `csv:"frame"`
	AvgFrameUS    int64   `csv:"avg_frame_us"`
	MinFrameUS    int64   `csv:"min_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	StdDevUS      int64   `csv:"stddev_us"`
	P95FrameUS    int64   `csv:"p95_frame_us"`
	FPS           float64 `csv:"fps"`
	BackgroundPct float64 `csv:"background_pct"`
	SimulatePct   float64 `csv:"simulate_pct"`
	ConvertPct    float64 `csv:"convert_pct"`
	PresentPct    float64 `csv:"present_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(frame int64) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:         frame,
		AvgFrameUS:    s.AvgFrame.Microseconds(),
		MinFrameUS:    s.MinFrame.Microseconds(),
		MaxFrameUS:    s.MaxFrame.Microseconds(),
		StdDevUS:      s.StdDev.Microseconds(),
		P95FrameUS:    s.P95.Microseconds(),
		FPS:           s.FPS,
		BackgroundPct: s.PhasePct[PhaseBackground],
		SimulatePct:   s.PhasePct[PhaseSimulate],
		ConvertPct:    s.PhasePct[PhaseConvert],
		PresentPct:    s.PhasePct[PhasePresent],
	}
}
