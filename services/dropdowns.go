package services

// LeadStatuses is the lead pipeline in display order. Dashboard distribution
// and the status dropdown both follow this order.
var LeadStatuses = []string{
	"New",
	"Contacted",
	"Call not picked",
	"Interested",
	"Visit booked",
	"Not interested",
	"Quotation request",
	"Negotiation",
	"Pending Payment",
	"Lost",
}

// CurrencyCodes returns the supported quotation currency codes.
var CurrencyCodes = []string{"INR", "USD", "EUR", "GBP"}

// TaxRateOptions returns the per-item tax percentage options.
var TaxRateOptions = []int{0, 5, 12, 18, 28}

// IsValidLeadStatus reports whether s is one of the known pipeline statuses.
func IsValidLeadStatus(s string) bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}
