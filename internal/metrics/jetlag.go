package metrics

import (
	"math"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/opt"
)

// JetLag is the breakdown behind the social jet lag score. Minutes is
// |mean weekend wake - mean weekday wake|, or 0 when either bucket is empty.
type JetLag struct {
	Minutes      float64            `json:"minutes"`
	WeekdayMean  opt.Value[float64] `json:"weekdayMean"`
	WeekendMean  opt.Value[float64] `json:"weekendMean"`
	WeekdayCount int                `json:"weekdayCount"`
	WeekendCount int                `json:"weekendCount"`
}

// SocialJetLag returns the weekday/weekend wake-time misalignment in minutes.
func SocialJetLag(logs logstore.Logs) float64 {
	return SocialJetLagDetail(logs).Minutes
}

// SocialJetLagDetail buckets every log with a sleep entry by the day of week
// of its own date (Mon-Fri vs Sat-Sun) and compares the mean wake time,
// in minutes since midnight, of the two buckets. Logs with an unreadable
// date or wake time are skipped.
func SocialJetLagDetail(logs logstore.Logs) JetLag {
	var weekday, weekend []int
	for key, l := range logs {
		sleep, ok := l.SleepLog.Get()
		if !ok || sleep.WakeTime == "" {
			continue
		}
		wake, err := dailylog.ParseClock(sleep.WakeTime)
		if err != nil {
			continue
		}
		date := l.Date
		if date == "" {
			date = key
		}
		we, ok := isWeekend(date)
		if !ok {
			continue
		}
		if we {
			weekend = append(weekend, wake)
		} else {
			weekday = append(weekday, wake)
		}
	}

	jl := JetLag{
		WeekdayMean:  mean(weekday),
		WeekendMean:  mean(weekend),
		WeekdayCount: len(weekday),
		WeekendCount: len(weekend),
	}
	wd, okWD := jl.WeekdayMean.Get()
	we, okWE := jl.WeekendMean.Get()
	if okWD && okWE {
		jl.Minutes = math.Abs(we - wd)
	}
	return jl
}

func mean(xs []int) opt.Value[float64] {
	if len(xs) == 0 {
		return opt.None[float64]()
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return opt.Some(float64(sum) / float64(len(xs)))
}
