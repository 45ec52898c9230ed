package kb

// FAQItem is a single question/answer pair. Action marks answers that carry
// a clickable follow-up (the UI renders ActionText as a button).
type FAQItem struct {
	Question   string `yaml:"question" json:"question"`
	Answer     string `yaml:"answer" json:"answer"`
	Action     bool   `yaml:"action,omitempty" json:"action,omitempty"`
	ActionText string `yaml:"action_text,omitempty" json:"action_text,omitempty"`
}

// FAQCategory groups FAQ items under a title. The title doubles as the basis
// for the category's context hint.
type FAQCategory struct {
	Title     string    `yaml:"title" json:"title"`
	Questions []FAQItem `yaml:"questions" json:"questions"`
}

// ScheduleItem is one entry of the event programme. Time is display text, not
// necessarily parseable; entries are kept in authored order.
type ScheduleItem struct {
	Time             string `yaml:"time" json:"time"`
	EventDescription string `yaml:"event_description" json:"event_description"`
	Category         string `yaml:"category" json:"category"`
	Details          string `yaml:"details,omitempty" json:"details,omitempty"`
}

// KnowledgeBase holds all curated assistant content. It is loaded once at
// startup and treated as read-only afterwards.
type KnowledgeBase struct {
	FAQ         []FAQCategory       `yaml:"faq" json:"faq"`
	Schedule    []ScheduleItem      `yaml:"schedule" json:"schedule"`
	Suggestions map[string][]string `yaml:"suggestions" json:"suggestions"`
}
