package gen

import "time"

// Schedule is the timing block of one shipment.
type Schedule struct {
	Departure     time.Time
	Arrival       time.Time
	DurationHours float64
}

// Timing derives a Schedule from the run's base time.
type Timing interface {
	Schedule(src *Source, base time.Time) Schedule
}

// ConsistentTiming departs within MaxDepartHours of base and arrives exactly
// DurationHours later.
type ConsistentTiming struct {
	MaxDepartHours int
	MinDuration    float64
	MaxDuration    float64
}

func (t ConsistentTiming) Schedule(src *Source, base time.Time) Schedule {
	depart := base.Add(time.Duration(src.IntRange(0, t.MaxDepartHours)) * time.Hour)
	hours := round(src.Uniform(t.MinDuration, t.MaxDuration), 1)
	return Schedule{
		Departure:     depart,
		Arrival:       depart.Add(hoursToDuration(hours)),
		DurationHours: hours,
	}
}

// IndependentTiming draws departure and arrival separately around base, so
// arrival can land before departure. DurationHours is unrelated to either.
type IndependentTiming struct {
	DepartDays    [2]int
	ArriveDays    [2]int
	ArriveHours   [2]int
	DurationHours [2]float64
}

func (t IndependentTiming) Schedule(src *Source, base time.Time) Schedule {
	depart := base.AddDate(0, 0, src.IntRange(t.DepartDays[0], t.DepartDays[1]))
	arrive := base.AddDate(0, 0, src.IntRange(t.ArriveDays[0], t.ArriveDays[1])).
		Add(time.Duration(src.IntRange(t.ArriveHours[0], t.ArriveHours[1])) * time.Hour)
	return Schedule{
		Departure:     depart,
		Arrival:       arrive,
		DurationHours: round(src.Uniform(t.DurationHours[0], t.DurationHours[1]), 1),
	}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour)).Round(time.Second)
}
