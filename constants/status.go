package constants

// RecordStatus is the canonical status for rows in passport_records.
type RecordStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    RecordStatus = "pending"    // accepted, waiting in the processing queue
	StatusProcessing RecordStatus = "processing" // picked up by the dispatch loop
	StatusCompleted  RecordStatus = "completed"  // terminal success
	StatusFailed     RecordStatus = "failed"     // terminal failure
)

// RemarkSuccess is stored in remarks when recognition succeeds.
const RemarkSuccess = "识别成功"

// MaxRemarkLen is the remarks column width; longer messages are truncated.
const MaxRemarkLen = 255

// StatusMessagePending is the localized default shown for records the
// tracker has not seen yet.
const StatusMessagePending = "等待处理"
