package domain

import "fmt"

// TaskFilter narrows a task listing by equality. Empty or "all" values pass
// everything through.
type TaskFilter struct {
	Status   string
	Priority string
	Assignee string
}

// FilterTasks selects a game's tasks for display. Category "all" (or empty)
// concatenates the four buckets in bug, controls, quest, review order. The
// result is always a fresh slice; the backing arrays are never mutated.
func FilterTasks(g *Game, category string, filter TaskFilter) ([]*Task, error) {
	var source []*Task
	switch {
	case category == "" || category == CategoryAll:
		source = g.Issues.All()
	default:
		c := Category(category)
		if !c.Valid() {
			return nil, NewError(ErrCodeValidation, fmt.Sprintf("invalid category %q", category))
		}
		source = append([]*Task(nil), g.Issues.ByCategory(c)...)
	}

	out := make([]*Task, 0, len(source))
	for _, t := range source {
		if !passes(filter.Status, string(t.Status)) {
			continue
		}
		if !passes(filter.Priority, severityValue(t.Priority)) {
			continue
		}
		if !passes(filter.Assignee, stringValue(t.Assignee)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func passes(want, got string) bool {
	return want == "" || want == CategoryAll || want == got
}

func severityValue(s *Severity) string {
	if s == nil {
		return ""
	}
	return string(*s)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
