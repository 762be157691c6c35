// backend/src/models/canonical.go
package models

// CanonicalRecord is the unified representation of one lottery-result row.
// The record processor is responsible for populating every field from the
// generic row, defaulting to the empty string when the feed has no matching
// column. Fields are never left unset: empty string is the "absent" sentinel.
//
// Records are created in bulk by one normalization pass per successful feed
// load and replaced wholesale on the next load; they are never mutated in
// place. The ID is minted per load cycle and only serves the detail lookup.
type CanonicalRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	LotteryName string `json:"lottery_name"`
	Draw        string `json:"draw"`
	Result      string `json:"result"`
	PrizeList   string `json:"prize_list"`
	Notes       string `json:"notes"`
}
