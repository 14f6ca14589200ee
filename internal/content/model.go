// Package content defines the published learning catalog: courses made of
// decision+recall scenarios. Content is authored elsewhere and immutable
// once published; at runtime the catalog is read-only.
package content

// Course groups an ordered list of scenarios.
type Course struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Level            string     `json:"level"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	SortOrder        int        `json:"sort_order"`
	Scenarios        []Scenario `json:"scenarios"`
}

// Scenario is a single decision+recall learning unit.
type Scenario struct {
	ID         string           `json:"id"`
	CourseID   string           `json:"course_id"`
	OrderIndex int              `json:"order_index"`
	Title      string           `json:"title"`
	Prompt     string           `json:"prompt"`
	Options    []Option         `json:"options"`
	Recall     []RecallQuestion `json:"recall"`
	Mission    string           `json:"mission,omitempty"`
	Tags       []string         `json:"tags"`
}

// Option is one labeled choice of a scenario's decision prompt.
type Option struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Feedback string `json:"feedback"`
	IsBest   bool   `json:"is_best"`
}

// RecallQuestion is a single-answer quiz question attached to a scenario.
type RecallQuestion struct {
	ID              string         `json:"id"`
	Question        string         `json:"question"`
	Choices         []RecallChoice `json:"choices"`
	CorrectChoiceID string         `json:"correct_choice_id"`
	Explanation     string         `json:"explanation"`
}

// RecallChoice is one answer option of a recall question.
type RecallChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BestOption returns the option flagged as best, or nil if none is flagged.
func (s *Scenario) BestOption() *Option {
	for i := range s.Options {
		if s.Options[i].IsBest {
			return &s.Options[i]
		}
	}
	return nil
}

// Option returns the option with the given id, or nil.
func (s *Scenario) Option(id string) *Option {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}
