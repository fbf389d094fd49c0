package logging

// Standardized field names for structured logging.
// Keep these stable: log consumers filter on them.
const (
	FieldTransactionID = "transaction_id"
	FieldKind          = "kind"
	FieldCategory      = "category"
	FieldField         = "field"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldCount         = "count"
	FieldDropped       = "dropped"
	FieldFilter        = "filter"
	FieldDriver        = "driver"
	FieldStorageKey    = "storage_key"
	FieldFile          = "file_path"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
