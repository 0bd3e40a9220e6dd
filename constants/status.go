package constants

// ReceiptStatus is the canonical status for rows in receipts.
type ReceiptStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ReceiptStatus = "pending"    // uploaded, never processed
	StatusProcessing ReceiptStatus = "processing" // extraction in flight
	StatusCompleted  ReceiptStatus = "completed"  // values persisted
	StatusFailed     ReceiptStatus = "failed"     // terminal failure, error_message set
)

// ReceiptStatuses holds the allowed values for the status field in Receipt.
var ReceiptStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
}

// IsValidReceiptStatus reports whether s is one of the canonical statuses.
func IsValidReceiptStatus(s string) bool {
	for _, v := range ReceiptStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Eligible reports whether a receipt in status s may be (re)processed.
// Receipts currently processing are excluded to avoid re-entrancy on an
// in-flight extraction; completed and failed receipts may be re-run.
func (s ReceiptStatus) Eligible() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusFailed
}
