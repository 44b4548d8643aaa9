package schedule

import (
	"fmt"
	"time"
)

// DefaultWorkingHoursPerDay is used when the caller passes 0.
const DefaultWorkingHoursPerDay = 8.0

// Prediction is the output of PredictCompletion.
type Prediction struct {
	PredictedDate       time.Time `json:"predicted_date"`
	EarlyDate           time.Time `json:"early_date"`
	LateDate            time.Time `json:"late_date"`
	RemainingHours      float64   `json:"remaining_hours"`
	CompletedPercentage float64   `json:"completed_percentage"`
}

// Bottleneck flags a task that drags the schedule.
type Bottleneck struct {
	TaskID         string  `json:"task_id"`
	Type           string  `json:"type"` // "duration" or "dependencies"
	ImpactHours    float64 `json:"impact_hours"`
	Recommendation string  `json:"recommendation"`
}

// PredictCompletion projects a completion window from current
// progress. A task marked completed removes exactly its scheduled
// duration from the remaining total. The early/late bounds are ±20%.
func (s *Scheduler) PredictCompletion(result *Result, statuses map[string]string, startDate time.Time, hoursPerDay float64) *Prediction {
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultWorkingHoursPerDay
	}

	total := 0.0
	completed := 0.0
	for id, a := range result.Assignments {
		dur := a.End - a.Start
		total += dur
		if statuses[id] == "completed" {
			completed += dur
		}
	}

	remaining := total - completed
	pct := 0.0
	if total > 0 {
		pct = completed / total * 100
	}

	return &Prediction{
		PredictedDate:       addWorkingHours(startDate, remaining, hoursPerDay),
		EarlyDate:           addWorkingHours(startDate, remaining*0.8, hoursPerDay),
		LateDate:            addWorkingHours(startDate, remaining*1.2, hoursPerDay),
		RemainingHours:      remaining,
		CompletedPercentage: pct,
	}
}

// FindBottlenecks flags critical-path tasks that either run more than
// twice the average duration or gate three or more critical-path
// dependents.
func (s *Scheduler) FindBottlenecks(durations map[string]float64) ([]Bottleneck, error) {
	cp, ok := s.resolver.CriticalPath(durations)
	if !ok {
		return nil, ErrCyclicGraph
	}
	criticalSet := make(map[string]bool, len(cp.CriticalTasks))
	for _, id := range cp.CriticalTasks {
		criticalSet[id] = true
	}

	avg := 0.0
	ids := s.resolver.TaskIDs()
	if len(ids) > 0 {
		sum := 0.0
		for _, id := range ids {
			sum += durations[id]
		}
		avg = sum / float64(len(ids))
	}

	bottlenecks := make([]Bottleneck, 0)
	for _, id := range ids {
		if !criticalSet[id] {
			continue
		}
		if avg > 0 && durations[id] > 2*avg {
			bottlenecks = append(bottlenecks, Bottleneck{
				TaskID:      id,
				Type:        "duration",
				ImpactHours: durations[id] - avg,
				Recommendation: fmt.Sprintf(
					"Task %s takes %.1fh against a %.1fh average; consider splitting it", id, durations[id], avg),
			})
		}

		criticalDependents := 0
		impact := 0.0
		for _, dep := range s.resolver.Dependents(id) {
			if criticalSet[dep] {
				criticalDependents++
				impact += durations[dep]
			}
		}
		if criticalDependents >= 3 {
			bottlenecks = append(bottlenecks, Bottleneck{
				TaskID:      id,
				Type:        "dependencies",
				ImpactHours: impact,
				Recommendation: fmt.Sprintf(
					"Task %s gates %d critical tasks; prioritise it or relax its dependents", id, criticalDependents),
			})
		}
	}
	return bottlenecks, nil
}

// addWorkingHours advances from start by the given number of working
// hours, skipping weekends.
func addWorkingHours(start time.Time, hours, hoursPerDay float64) time.Time {
	days := int(hours / hoursPerDay)
	if remainder := hours - float64(days)*hoursPerDay; remainder > 0 {
		days++
	}
	date := start
	for days > 0 {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days--
		}
	}
	return date
}
