package domain

import "sort"

// SortForDisplay orders tasks deterministically for rendering:
//
//  1. open tasks before completed tasks
//  2. reviews after all non-review tasks
//  3. among non-reviews, descending priority when both sides carry one
//  4. descending urgency when both sides carry one
//  5. newest created_at first
//
// Each rule applies only when every previous rule tied. The sort is stable
// and works on a copy; the backing category arrays are never reordered.
func SortForDisplay(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return displayLess(out[i], out[j])
	})
	return out
}

func displayLess(a, b *Task) bool {
	if a.IsCompleted() != b.IsCompleted() {
		return !a.IsCompleted()
	}
	if a.IsReview() != b.IsReview() {
		return !a.IsReview()
	}
	if !a.IsReview() && a.Priority != nil && b.Priority != nil && a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() > b.Priority.Rank()
	}
	if a.Urgency != nil && b.Urgency != nil && a.Urgency.Rank() != b.Urgency.Rank() {
		return a.Urgency.Rank() > b.Urgency.Rank()
	}
	return a.CreatedAt.After(b.CreatedAt)
}
