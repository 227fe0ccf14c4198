package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldComponent  = "component"
	FieldSource     = "source"
	FieldEvent      = "event"
	FieldTeam       = "team"
	FieldCount      = "count"
	FieldAttempt    = "attempt"
	FieldDurationMS = "duration_ms"
)
