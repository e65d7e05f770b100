package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"       // queued for processing
	JobStatusRunning     JobStatus = "RUNNING"      // in progress
	JobStatusParseOK     JobStatus = "PARSE_OK"     // fields extracted from the token stream
	JobStatusParseFailed JobStatus = "PARSE_FAILED" // terminal failure
)

// JobStatuses lists every accepted status value, for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusParseOK),
	string(JobStatusParseFailed),
}

// PageFormat identifies which page token dumps a job carries.
type PageFormat string

const (
	PageFormatFirst  PageFormat = "PAGE_1"
	PageFormatSecond PageFormat = "PAGE_2"
	PageFormatBoth   PageFormat = "PAGE_1_2"
)

var PageFormats = []string{
	string(PageFormatFirst),
	string(PageFormatSecond),
	string(PageFormatBoth),
}
