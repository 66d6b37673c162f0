package nlparse

import (
	"regexp"
	"strconv"
)

// recurrenceSpec is what a recurrence rule resolves to.
type recurrenceSpec struct {
	kind     Recurrence
	interval int
	unit     RecurrenceUnit
	days     []int
}

// recurrenceRule maps a phrase to a repeat rule. A rule is skipped when
// unless matches anywhere in the text.
type recurrenceRule struct {
	name    string
	pattern *regexp.Regexp
	unless  *regexp.Regexp
	resolve func(m []string) (recurrenceSpec, bool)
	score   int
}

const weekdayList = `(?:` + weekdayAlternation + `)`

// Explicit phrasing always outranks the semantic guesses at the bottom of the
// table, so "take vitamins every 3 days" stays every 3 days.
var recurrenceRules = []recurrenceRule{
	{
		name:    "every n units",
		pattern: regexp.MustCompile(`\bevery\s+(\d+)\s+(day|week|month|year)s?\b`),
		resolve: func(m []string) (recurrenceSpec, bool) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 || n > maxCount {
				return recurrenceSpec{}, false
			}
			unit := unitBySingular[m[2]]
			if n == 1 {
				return recurrenceSpec{kind: singularKind[unit], interval: 1, unit: unit}, true
			}
			return recurrenceSpec{kind: RecurrenceCustom, interval: n, unit: unit}, true
		},
		score: 15,
	},
	{
		name:    "every weekday list",
		pattern: regexp.MustCompile(`\bevery\s+(` + weekdayList + `(?:(?:\s*,\s*(?:and\s+)?|\s+and\s+)` + weekdayList + `)+)\b`),
		resolve: func(m []string) (recurrenceSpec, bool) {
			return weeklyOn(weekdaySet(m[1])...), true
		},
		score: 15,
	},
	{
		name:    "every weekday name",
		pattern: regexp.MustCompile(`\bevery\s+(` + weekdayList + `)\b`),
		resolve: func(m []string) (recurrenceSpec, bool) {
			return weeklyOn(weekdaySet(m[1])...), true
		},
		score: 15,
	},
	{
		name:    "every weekday",
		pattern: regexp.MustCompile(`\bevery\s+weekdays?\b`),
		resolve: fixedSpec(weeklyOn(1, 2, 3, 4, 5)),
		score:   15,
	},
	{
		name:    "every weekend",
		pattern: regexp.MustCompile(`\bevery\s+weekends?\b`),
		resolve: fixedSpec(weeklyOn(0, 6)),
		score:   15,
	},
	// Biweekly forms run before the bare keywords: \bweekly\b also matches
	// inside "bi-weekly".
	{
		name:    "biweekly",
		pattern: regexp.MustCompile(`\b(?:bi-?weekly|every\s+other\s+week)\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 2, unit: UnitWeeks}),
		score:   12,
	},
	{
		name:    "bimonthly",
		pattern: regexp.MustCompile(`\b(?:bi-?monthly|every\s+other\s+month)\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 2, unit: UnitMonths}),
		score:   12,
	},
	{
		name:    "every other day",
		pattern: regexp.MustCompile(`\bevery\s+other\s+day\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 2, unit: UnitDays}),
		score:   12,
	},
	{
		name:    "every other year",
		pattern: regexp.MustCompile(`\bevery\s+other\s+year\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 2, unit: UnitYears}),
		score:   12,
	},
	{
		name:    "daily",
		pattern: regexp.MustCompile(`\b(?:every\s+day|daily)\b`),
		resolve: fixedSpec(every(RecurrenceDaily)),
		score:   10,
	},
	{
		name:    "weekly",
		pattern: regexp.MustCompile(`\b(?:every\s+week|weekly)\b`),
		resolve: fixedSpec(every(RecurrenceWeekly)),
		score:   10,
	},
	{
		name:    "monthly",
		pattern: regexp.MustCompile(`\b(?:every\s+month|monthly)\b`),
		resolve: fixedSpec(every(RecurrenceMonthly)),
		score:   10,
	},
	{
		name:    "yearly",
		pattern: regexp.MustCompile(`\b(?:every\s+year|yearly|annually)\b`),
		resolve: fixedSpec(every(RecurrenceYearly)),
		score:   10,
	},

	// Semantic inference: recurrence guessed from what the reminder is about.
	{
		name:    "birthday",
		pattern: regexp.MustCompile(`\b(?:birthday|anniversary)\b`),
		resolve: fixedSpec(every(RecurrenceYearly)),
		score:   10,
	},
	{
		name:    "medication",
		pattern: regexp.MustCompile(`\b(?:medication|medicine|meds|vitamins?|pills?)\b`),
		resolve: fixedSpec(every(RecurrenceDaily)),
		score:   10,
	},
	{
		name:    "rent",
		pattern: regexp.MustCompile(`\b(?:rent|mortgage)\b`),
		unless:  regexp.MustCompile(`\b(?:paid|pay\s+off)\b`),
		resolve: fixedSpec(every(RecurrenceMonthly)),
		score:   8,
	},
	{
		name:    "payday",
		pattern: regexp.MustCompile(`\b(?:paycheck|payday|salary)\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 2, unit: UnitWeeks}),
		score:   8,
	},
	{
		name:    "subscription",
		pattern: regexp.MustCompile(`\b(?:subscriptions?|renewal)\b`),
		resolve: fixedSpec(every(RecurrenceMonthly)),
		score:   7,
	},
	{
		name:    "trash",
		pattern: regexp.MustCompile(`\b(?:trash|garbage|recycling)\b`),
		resolve: fixedSpec(every(RecurrenceWeekly)),
		score:   8,
	},
	{
		name:    "plants",
		pattern: regexp.MustCompile(`\bwater\s+the\s+plants\b`),
		resolve: fixedSpec(every(RecurrenceWeekly)),
		score:   7,
	},
	{
		name:    "workout",
		pattern: regexp.MustCompile(`\b(?:gym|workout|exercise)\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 2, unit: UnitDays}),
		score:   5,
	},
	{
		name:    "oil change",
		pattern: regexp.MustCompile(`\boil\s+change\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 3, unit: UnitMonths}),
		score:   7,
	},
	{
		name:    "haircut",
		pattern: regexp.MustCompile(`\bhaircut\b`),
		resolve: fixedSpec(every(RecurrenceMonthly)),
		score:   5,
	},
	{
		name:    "dentist",
		pattern: regexp.MustCompile(`\bdentist\b`),
		unless:  regexp.MustCompile(`\b(?:appointment|today|tomorrow)\b`),
		resolve: fixedSpec(recurrenceSpec{kind: RecurrenceCustom, interval: 6, unit: UnitMonths}),
		score:   5,
	},
}

var unitBySingular = map[string]RecurrenceUnit{
	"day":   UnitDays,
	"week":  UnitWeeks,
	"month": UnitMonths,
	"year":  UnitYears,
}

var singularKind = map[RecurrenceUnit]Recurrence{
	UnitDays:   RecurrenceDaily,
	UnitWeeks:  RecurrenceWeekly,
	UnitMonths: RecurrenceMonthly,
	UnitYears:  RecurrenceYearly,
}

var kindUnit = map[Recurrence]RecurrenceUnit{
	RecurrenceDaily:   UnitDays,
	RecurrenceWeekly:  UnitWeeks,
	RecurrenceMonthly: UnitMonths,
	RecurrenceYearly:  UnitYears,
}

// inferRecurrence applies the first matching recurrence rule.
func (s *parseState) inferRecurrence() {
	for _, rule := range recurrenceRules {
		m := rule.pattern.FindStringSubmatch(s.text)
		if m == nil {
			continue
		}
		if rule.unless != nil && rule.unless.MatchString(s.text) {
			continue
		}
		spec, ok := rule.resolve(m)
		if !ok {
			continue
		}
		s.result.Recurrence = spec.kind
		s.result.RecurrenceInterval = spec.interval
		s.result.RecurrenceUnit = spec.unit
		s.result.RecurrenceDays = spec.days
		s.score(rule.score)
		return
	}
}

// every is a named recurrence with interval one.
func every(kind Recurrence) recurrenceSpec {
	return recurrenceSpec{kind: kind, interval: 1, unit: kindUnit[kind]}
}

func weeklyOn(days ...int) recurrenceSpec {
	return recurrenceSpec{kind: RecurrenceWeekly, interval: 1, unit: UnitWeeks, days: days}
}

func fixedSpec(spec recurrenceSpec) func([]string) (recurrenceSpec, bool) {
	return func([]string) (recurrenceSpec, bool) {
		out := spec
		if spec.days != nil {
			out.days = append([]int(nil), spec.days...)
		}
		return out, true
	}
}
