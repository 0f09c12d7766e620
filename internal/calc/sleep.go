package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day in minutes after midnight. It serializes as
// "HH:MM" in JSON.
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClock accepts "H:MM" or "HH:MM" in 24-hour form.
func ParseClock(s string) (ClockTime, error) {
	bad := invalid("time_hm", "Time (HH:MM) must look like 23:30")
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, bad
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, bad
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, bad
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, bad
	}
	return ClockTime(h*60 + m), nil
}

// Add shifts t by minutes, wrapping around midnight in either direction.
func (t ClockTime) Add(minutes int) ClockTime {
	v := (int(t) + minutes) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return ClockTime(v)
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *ClockTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	v, err := ParseClock(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

/* ─── Sleep cycles ────────────────────────────────────────────────────── */

// SleepMode says what the anchor time means.
type SleepMode string

const (
	// SleepNow: the anchor is bedtime; suggest wake-up times.
	SleepNow SleepMode = "sleep_now"
	// WakeAt: the anchor is the wake-up time; suggest bedtimes.
	WakeAt SleepMode = "wake_at"
)

const (
	SleepCycleMinutes = 90
	FallAsleepMinutes = 15
)

// sleepCycleCounts are the whole-cycle counts offered, shortest night first.
var sleepCycleCounts = []int{3, 4, 5, 6}

// SleepOption is one suggested time and the cycles it corresponds to.
type SleepOption struct {
	Cycles int       `json:"cycles"`
	Time   ClockTime `json:"time"`
}

// SleepTimes lists candidate times N full cycles away from the anchor.
// For SleepNow the fall-asleep buffer is added before counting cycles forward;
// for WakeAt cycles are counted back from the wake time and the buffer is
// subtracted last.
func SleepTimes(anchor ClockTime, mode SleepMode) ([]SleepOption, error) {
	if anchor < 0 || int(anchor) >= minutesPerDay {
		return nil, invalid("time_hm", "Time (HH:MM) must look like 23:30")
	}
	opts := make([]SleepOption, 0, len(sleepCycleCounts))
	switch mode {
	case SleepNow:
		start := anchor.Add(FallAsleepMinutes)
		for _, n := range sleepCycleCounts {
			opts = append(opts, SleepOption{Cycles: n, Time: start.Add(n * SleepCycleMinutes)})
		}
	case WakeAt:
		for _, n := range sleepCycleCounts {
			opts = append(opts, SleepOption{Cycles: n, Time: anchor.Add(-n*SleepCycleMinutes - FallAsleepMinutes)})
		}
	default:
		return nil, invalid("mode", "Mode must be one of sleep_now, wake_at")
	}
	return opts, nil
}
