package stats

// TimeMilestone describes progress toward the next lifetime practice
// hours milestone. The ladder starts with small steps (5h .. 100h),
// widens to 50h steps up to 500h, then 100h steps up to 2000h.
type TimeMilestone struct {
	Completed     bool
	NextHours     int
	RemainingSecs int
	Progress      float64 // fraction of the current step, in [0,1]
}

// hourLadder returns every milestone threshold in seconds, ascending.
func hourLadder() []int {
	var secs []int
	for _, h := range []int{5, 10, 25, 50, 75, 100} {
		secs = append(secs, h*3600)
	}
	for h := 150; h <= 500; h += 50 {
		secs = append(secs, h*3600)
	}
	for h := 600; h <= 2000; h += 100 {
		secs = append(secs, h*3600)
	}
	return secs
}

// NextTimeMilestone locates the next hours milestone above totalSecs
// and the progress through the current step.
func NextTimeMilestone(totalSecs int) TimeMilestone {
	if totalSecs < 0 {
		totalSecs = 0
	}

	ladder := hourLadder()
	prev := 0
	for _, threshold := range ladder {
		if totalSecs < threshold {
			progress := float64(totalSecs-prev) / float64(threshold-prev)
			if progress < 0 {
				progress = 0
			}
			return TimeMilestone{
				NextHours:     threshold / 3600,
				RemainingSecs: threshold - totalSecs,
				Progress:      progress,
			}
		}
		prev = threshold
	}

	return TimeMilestone{Completed: true, Progress: 1}
}
