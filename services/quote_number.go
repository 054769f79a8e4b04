package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// GenerateQuotationNumber creates the next quotation identifier.
// Format: QUO-{calendar_year}-{sequence}, sequence 4-digit zero-padded and
// counted per calendar year. Concurrent saves can in principle race to the
// same sequence; the quotation_id unique index turns that into a save error
// rather than a duplicate.
func GenerateQuotationNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("QUO-%d-", year)

	existing, err := app.FindRecordsByFilter(
		"quotations",
		"quotation_id ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection empty or not yet created; start at 1.
		existing = nil
	}

	return fmt.Sprintf("%s%04d", prefix, len(existing)+1), nil
}
