package model

// ProcessRequest is one webhook invocation: which message to inspect and the
// free-text comment forwarded to the classification gateway.
type ProcessRequest struct {
	Ref     MessageRef
	Comment string
}

// ProcessResult is the terminal outcome of an invocation. OK distinguishes
// the two non-fatal endings: classification answered (Response set) or image
// resolution failed and an apology was posted (Detail set).
type ProcessResult struct {
	OK       bool
	Detail   string
	Response ClassificationResponse
}
