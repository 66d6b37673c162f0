package nlparse

// Priority is the urgency level of a reminder.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Category is the life area a reminder belongs to.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryFamily   Category = "family"
	CategoryHealth   Category = "health"
	CategoryErrands  Category = "errands"
	CategoryFinance  Category = "finance"
	CategorySocial   Category = "social"
	CategoryLearning Category = "learning"
	CategoryTravel   Category = "travel"
	CategoryHome     Category = "home"
	CategoryOther    Category = "other"
)

// Recurrence is the repeat rule kind.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
	RecurrenceCustom  Recurrence = "custom"
)

// RecurrenceUnit is the unit RecurrenceInterval is counted in.
type RecurrenceUnit string

const (
	UnitDays   RecurrenceUnit = "days"
	UnitWeeks  RecurrenceUnit = "weeks"
	UnitMonths RecurrenceUnit = "months"
	UnitYears  RecurrenceUnit = "years"
)

// ParsedReminder is the structured result of parsing one free-text phrase.
//
// DueTime, RecurrenceInterval, RecurrenceUnit and RecurrenceDays are zero when
// absent. Every recurrence other than none carries an interval and a unit.
type ParsedReminder struct {
	Title              string         `json:"title"`
	DueDate            string         `json:"dueDate"`
	DueTime            string         `json:"dueTime,omitempty"`
	Priority           Priority       `json:"priority"`
	Category           Category       `json:"category"`
	Recurrence         Recurrence     `json:"recurrence"`
	RecurrenceInterval int            `json:"recurrenceInterval,omitempty"`
	RecurrenceUnit     RecurrenceUnit `json:"recurrenceUnit,omitempty"`
	RecurrenceDays     []int          `json:"recurrenceDays,omitempty"`
	Confidence         int            `json:"confidence"`
}

// HasTime reports whether a time of day was recognized.
func (r ParsedReminder) HasTime() bool {
	return r.DueTime != ""
}

// IsRecurring reports whether the reminder repeats.
func (r ParsedReminder) IsRecurring() bool {
	return r.Recurrence != RecurrenceNone && r.Recurrence != ""
}

// MaxConfidence caps the additive confidence score.
const MaxConfidence = 100
