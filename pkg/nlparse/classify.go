package nlparse

import "regexp"

type categoryRule struct {
	category Category
	pattern  *regexp.Regexp
}

// categoryRules are checked in order; the first group that matches wins.
var categoryRules = []categoryRule{
	{CategoryWork, regexp.MustCompile(`\b(?:work|meeting|meetings|office|boss|client|clients|project|deadline|presentation|report|standup|stand-up|interview|colleague|conference|email|emails|slides|sprint|manager)\b`)},
	{CategoryFamily, regexp.MustCompile(`\b(?:mom|mum|dad|mother|father|sister|brother|kids?|son|daughter|family|grandma|grandpa|grandmother|grandfather|wife|husband|parents?|baby|aunt|uncle|cousin)\b`)},
	{CategoryHealth, regexp.MustCompile(`\b(?:doctor|dentist|medication|medicine|meds|pills?|vitamins?|gym|workout|exercise|yoga|therapy|therapist|health|hospital|checkup|check-up|prescription|jog|jogging|running|physio)\b`)},
	{CategoryErrands, regexp.MustCompile(`\b(?:buy|groceries|grocery|shop|shopping|pick\s+up|pickup|drop\s+off|store|milk|post\s+office|dry\s+cleaning|errands?|oil\s+change|car\s+wash|haircut|return)\b`)},
	{CategoryFinance, regexp.MustCompile(`\b(?:pay|bill|bills|rent|mortgage|bank|tax|taxes|invoice|budget|insurance|salary|paycheck|payday|subscriptions?|renewal|loan|credit\s+card)\b`)},
	{CategorySocial, regexp.MustCompile(`\b(?:party|dinner|lunch|coffee|drinks|birthday|anniversary|friends?|date\s+night|wedding|hangout|catch\s+up|bbq)\b`)},
	{CategoryLearning, regexp.MustCompile(`\b(?:study|learn|learning|read|reading|course|class|homework|exam|lecture|lesson|tutorial|research|practice)\b`)},
	{CategoryTravel, regexp.MustCompile(`\b(?:flight|trip|travel|hotel|airport|pack|packing|passport|vacation|visa|check-in)\b`)},
	{CategoryHome, regexp.MustCompile(`\b(?:clean|cleaning|trash|garbage|recycling|plants|laundry|dishes|vacuum|repair|fix|cook|mow|lawn|garden|home|house)\b`)},
}

// classifyCategory assigns the first matching category group.
func (s *parseState) classifyCategory() {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(s.text) {
			s.result.Category = rule.category
			s.score(15)
			return
		}
	}
}

type priorityRule struct {
	priority Priority
	pattern  *regexp.Regexp
	unless   *regexp.Regexp
}

// priorityRules are checked urgent > high > medium > low. Priority only
// comes from explicit keywords.
var priorityRules = []priorityRule{
	{
		priority: PriorityUrgent,
		pattern:  regexp.MustCompile(`\b(?:urgent|urgently|asap|immediately|critical|emergency)\b`),
		unless:   regexp.MustCompile(`\bnot\s+(?:that\s+|very\s+)?urgent\b`),
	},
	{
		priority: PriorityHigh,
		pattern:  regexp.MustCompile(`\b(?:important|crucial|high[\s-]priority|top[\s-]priority)\b`),
		unless:   regexp.MustCompile(`\bnot\s+(?:that\s+|very\s+)?important\b`),
	},
	{
		priority: PriorityMedium,
		pattern:  regexp.MustCompile(`\b(?:medium|normal)[\s-]priority\b`),
	},
	{
		priority: PriorityLow,
		pattern:  regexp.MustCompile(`\b(?:low[\s-]priority|not\s+(?:that\s+|very\s+)?urgent|not\s+(?:that\s+|very\s+)?important|no\s+rush|whenever|someday|eventually)\b`),
	},
}

// classifyPriority assigns the first matching explicit priority group. With
// the legacy due-date policy enabled, an unmarked reminder due today or
// tomorrow is promoted without adding confidence.
func (s *parseState) classifyPriority() {
	for _, rule := range priorityRules {
		if !rule.pattern.MatchString(s.text) {
			continue
		}
		if rule.unless != nil && rule.unless.MatchString(s.text) {
			continue
		}
		s.result.Priority = rule.priority
		if rule.priority != PriorityMedium {
			s.score(10)
		}
		return
	}

	if s.parser.dueDatePriority && s.dateFound {
		s.result.Priority = s.priorityFromDueDate()
	}
}

func (s *parseState) priorityFromDueDate() Priority {
	due, err := s.parser.calendar.ParseDate(s.result.DueDate)
	if err != nil {
		return PriorityMedium
	}
	switch s.parser.calendar.DaysBetween(s.today, due) {
	case 0:
		return PriorityUrgent
	case 1:
		return PriorityHigh
	}
	return PriorityMedium
}
