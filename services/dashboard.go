package services

import "github.com/pocketbase/pocketbase/core"

// LeadStats holds the dashboard headline counts.
type LeadStats struct {
	Total          int `json:"total"`
	New            int `json:"new"`
	Interested     int `json:"interested"`
	PendingPayment int `json:"pendingPayment"`
}

// StatusCount is one slice of the per-status lead distribution.
type StatusCount struct {
	Status string `json:"name"`
	Count  int    `json:"count"`
}

// CalcLeadStats tallies the headline counts from lead records.
func CalcLeadStats(leads []*core.Record) LeadStats {
	stats := LeadStats{Total: len(leads)}
	for _, lead := range leads {
		switch lead.GetString("status") {
		case "New":
			stats.New++
		case "Interested":
			stats.Interested++
		case "Pending Payment":
			stats.PendingPayment++
		}
	}
	return stats
}

// StatusDistribution counts leads per status in the fixed pipeline order,
// dropping statuses with no leads. Records carrying an unknown status (stale
// data from a renamed pipeline stage) are appended after the known ones in
// first-seen order rather than silently dropped.
func StatusDistribution(leads []*core.Record) []StatusCount {
	counts := make(map[string]int, len(LeadStatuses))
	var unknownOrder []string
	for _, lead := range leads {
		status := lead.GetString("status")
		if _, seen := counts[status]; !seen && !IsValidLeadStatus(status) {
			unknownOrder = append(unknownOrder, status)
		}
		counts[status]++
	}

	var dist []StatusCount
	for _, status := range LeadStatuses {
		if counts[status] > 0 {
			dist = append(dist, StatusCount{Status: status, Count: counts[status]})
		}
	}
	for _, status := range unknownOrder {
		dist = append(dist, StatusCount{Status: status, Count: counts[status]})
	}
	return dist
}
