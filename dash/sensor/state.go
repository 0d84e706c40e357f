// Package sensor maintains per-sensor history used by the dashboard: a
// bounded trend window, a stride-sampled graph ring, an incremental rolling
// average and a peak-hold timer.
package sensor

import (
	"time"

	"obdash/dash/config"
)

// Trend is the direction of a sensor over the recent history window.
type Trend int8

const (
	TrendFlat Trend = iota
	TrendRising
	TrendFalling
)

// State holds the bounded history of one sensor. The zero value is ready to
// use.
type State struct {
	// Trend window, a ring of the last HistorySize samples.
	hist      [config.HistorySize]float32
	histStart int
	histLen   int

	// Graph ring, one sample kept every GraphStride frames.
	graph      [config.GraphSize]float32
	graphStart int
	graphLen   int

	// Rolling average ring with running sum, one sample every AvgStride
	// frames.
	avg    [config.AvgSize]float32
	avgIdx int
	avgLen int
	sum    float32

	peakSince time.Time
	hasPeak   bool
}

// Update pushes one sample. maxUpdated marks a new extreme (re-arms the
// peak highlight); frame drives the graph and average strides.
func (s *State) Update(sample float32, maxUpdated bool, now time.Time, frame uint32) {
	s.pushHistory(sample)

	if frame%config.AvgStride == 0 {
		if s.avgLen < len(s.avg) {
			s.avg[s.avgIdx] = sample
			s.sum += sample
			s.avgLen++
		} else {
			s.sum += sample - s.avg[s.avgIdx]
			s.avg[s.avgIdx] = sample
		}
		s.avgIdx = (s.avgIdx + 1) % len(s.avg)
	}

	if maxUpdated {
		s.peakSince = now
		s.hasPeak = true
	}

	if frame%config.GraphStride == 0 {
		s.pushGraph(sample)
	}
}

func (s *State) pushHistory(sample float32) {
	if s.histLen < len(s.hist) {
		s.hist[(s.histStart+s.histLen)%len(s.hist)] = sample
		s.histLen++
		return
	}
	s.hist[s.histStart] = sample
	s.histStart = (s.histStart + 1) % len(s.hist)
}

func (s *State) pushGraph(sample float32) {
	if s.graphLen < len(s.graph) {
		s.graph[(s.graphStart+s.graphLen)%len(s.graph)] = sample
		s.graphLen++
		return
	}
	s.graph[s.graphStart] = sample
	s.graphStart = (s.graphStart + 1) % len(s.graph)
}

// Trend compares the mean of the newest TrendWindow samples against the
// mean of the oldest TrendWindow samples. With fewer than two full windows
// of history the trend is flat.
func (s *State) Trend() Trend {
	k := config.TrendWindow
	if s.histLen < 2*k {
		return TrendFlat
	}
	var oldSum, newSum float32
	for i := 0; i < k; i++ {
		oldSum += s.hist[(s.histStart+i)%len(s.hist)]
		newSum += s.hist[(s.histStart+s.histLen-k+i)%len(s.hist)]
	}
	diff := (newSum - oldSum) / float32(k)
	switch {
	case diff > config.TrendThreshold:
		return TrendRising
	case diff < -config.TrendThreshold:
		return TrendFalling
	default:
		return TrendFlat
	}
}

// IsPeak reports whether a new extreme happened within the peak-hold
// window.
func (s *State) IsPeak(now time.Time) bool {
	return s.hasPeak && now.Sub(s.peakSince) < config.PeakHold
}

// Average returns the rolling mean of the stride-selected samples, or 0
// before the first one lands.
func (s *State) Average() float32 {
	if s.avgLen == 0 {
		return 0
	}
	return s.sum / float32(s.avgLen)
}

// Reset clears the graph and the peak timer and collapses the rolling
// average onto the given sample, so the displayed average never dips to a
// bogus zero while the ring refills. The trend history is deliberately kept
// so the arrow does not flicker on reset.
func (s *State) Reset(sample float32) {
	s.graphStart, s.graphLen = 0, 0
	s.avg[0] = sample
	s.avgIdx, s.avgLen, s.sum = 1, 1, sample
	s.hasPeak = false
}

// GraphLen returns the number of samples currently in the graph ring.
func (s *State) GraphLen() int { return s.graphLen }

// GraphAt returns graph sample i, oldest first. i must be < GraphLen.
func (s *State) GraphAt(i int) float32 {
	return s.graph[(s.graphStart+i)%len(s.graph)]
}

// GraphBounds returns the min and max of the buffered graph samples. With
// an empty ring both are 0.
func (s *State) GraphBounds() (min, max float32) {
	if s.graphLen == 0 {
		return 0, 0
	}
	min = s.GraphAt(0)
	max = min
	for i := 1; i < s.graphLen; i++ {
		v := s.GraphAt(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// HistoryLen returns the number of samples in the trend window.
func (s *State) HistoryLen() int { return s.histLen }
