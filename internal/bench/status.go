// Package bench parses benchmark run logs and aggregates per-language and
// global statistics from them.
package bench

// Status classifies the outcome of a single benchmark case.
type Status string

// The fixed status vocabulary.
const (
	StatusExact    Status = "Exact"
	StatusFormat   Status = "Format"
	StatusConflict Status = "Conflict"
	StatusDiffer   Status = "Differ"
	StatusParse    Status = "Parse"
	StatusPanic    Status = "Panic"
)

// StatusOrder lists the categories roughly from best to worst. Tables always
// render columns in this order, and a before/after confusion matrix reads as
// satisfying when it is lower-triangular.
var StatusOrder = []Status{
	StatusExact,
	StatusFormat,
	StatusConflict,
	StatusDiffer,
	StatusParse,
	StatusPanic,
}
