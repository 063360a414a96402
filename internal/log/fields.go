package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldStep      = "step"
	FieldType      = "extension_type"
	FieldName      = "extension_name"
	FieldPath      = "path"
	FieldURL       = "url"
	FieldCommand   = "command"
	FieldVersion   = "version"
)
