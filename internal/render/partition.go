package render

import (
	"sort"

	"eldview.openfreight.org/internal/models"
)

// PartitionLogDates returns the distinct log_date values present in
// entries, in ascending lexicographic order. For the YYYY-MM-DD format the
// backend emits that is also chronological order. The result drives
// how many log sheets are rendered downstream: one per returned date, no
// matter how little data a date holds. Empty input yields an empty, non-nil
// slice.
func PartitionLogDates(entries []models.DutyLogEntry) []string {
	seen := make(map[string]bool, len(entries))
	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.LogDate] {
			continue
		}
		seen[entry.LogDate] = true
		dates = append(dates, entry.LogDate)
	}
	sort.Strings(dates)
	return dates
}
