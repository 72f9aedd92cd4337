// Package pipeline contains the asynchronous recognition workers: the
// admission controller gating new uploads, the single dispatch loop
// driving OCR calls, the result writer draining completed work, and a
// periodic monitor. Queues are in-process; queued tasks do not survive a
// restart and the corresponding records stay pending or processing.
package pipeline

import (
	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/extract"
)

// ProcessingTask points the dispatch loop at one accepted upload. The
// image path is the stored file name, relative to the upload directory.
type ProcessingTask struct {
	RecordID  int64
	ImagePath string
}

// WriteTask is a fully-formed update waiting for the result writer.
// Dates travel as strings so the writer re-validates them independently
// of extraction.
type WriteTask struct {
	RecordID int64
	Status   constants.RecordStatus
	Fields   extract.Fields
	Remarks  string
}
