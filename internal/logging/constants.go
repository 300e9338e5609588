package logging

// Field names shared by every component so log output can be filtered
// consistently.
const (
	FieldComponent  = "component"
	FieldRecord     = "record"
	FieldBackend    = "backend"
	FieldItemID     = "item_id"
	FieldGuestID    = "guest_id"
	FieldCategory   = "category"
	FieldCount      = "count"
	FieldFormat     = "format"
	FieldOutputFile = "output_file"
	FieldPath       = "path"
	FieldOperation  = "operation"
)
