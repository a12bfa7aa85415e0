package analyzer

import (
	"fmt"
	"time"

	"github.com/clockin-tool/clockin/internal/core/session"
)

const day = 24 * time.Hour

// HistogramSlot is one fixed-width time-of-day bucket: its start offset
// from midnight, the accumulated overlap of all sessions, and that
// overlap's share of the grand total.
type HistogramSlot struct {
	Start    time.Duration
	Duration time.Duration
	Fraction float64
}

// Histogram is the workload shape over a canonical 24-hour axis. Every
// day in the analyzed range is superposed onto the same axis, so the
// slots show at which times of day work typically happens.
type Histogram struct {
	SlotWidth time.Duration
	Slots     []HistogramSlot
	Total     time.Duration
}

// timeOfDay returns t's offset from its local midnight, using civil
// components so zone transitions inside the day cannot push it outside
// [0, 24h).
func timeOfDay(t time.Time) time.Duration {
	hour, min, sec := t.Clock()
	return time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(t.Nanosecond())
}

// BuildHistogram accumulates the time-of-day overlap of day-split
// sub-sessions into slots of the given width. The width must evenly
// divide 24 hours; anything else is a configuration error rejected
// before any accumulation.
func BuildHistogram(parts []session.Session, slotWidth time.Duration) (*Histogram, error) {
	if slotWidth <= 0 || day%slotWidth != 0 {
		return nil, fmt.Errorf("slot width %v does not evenly divide 24h", slotWidth)
	}

	slots := make([]HistogramSlot, int(day/slotWidth))
	for i := range slots {
		slots[i].Start = time.Duration(i) * slotWidth
	}

	var total time.Duration
	for _, part := range parts {
		start := timeOfDay(part.Start)
		end := timeOfDay(part.End)
		// A day-split sub-session ending at 00:00:00 ends at the day's
		// final midnight, not its first; credit it to the last slot.
		if end == 0 && part.Duration() > 0 {
			end = day
		}

		for i := range slots {
			slotStart := slots[i].Start
			slotEnd := slotStart + slotWidth
			overlap := min(end, slotEnd) - max(start, slotStart)
			if overlap > 0 {
				slots[i].Duration += overlap
				total += overlap
			}
		}
	}

	for i := range slots {
		if total > 0 {
			slots[i].Fraction = float64(slots[i].Duration) / float64(total)
		}
	}

	return &Histogram{
		SlotWidth: slotWidth,
		Slots:     slots,
		Total:     total,
	}, nil
}
