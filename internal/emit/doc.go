// Package emit serializes a collected Mapping into descriptor files,
// one file per declaration.
//
// The file name is the declaration identity with its namespace separators
// ('.' and '/') replaced by underscores. Three body formats are supported:
//
//	legacy  {class:"a.b.C",
//	         fields:
//	         {
//	          name:"string"
//	         }
//	        }
//	json    strictly valid JSON with the same keys and field order
//	yaml    a YAML document with the same keys and field order
//
// The legacy format is not valid JSON (keys are unquoted, values are not
// escaped). It is kept byte-compatible for existing consumers and is the
// default.
//
// A failure writing one descriptor never stops the others. Writes are not
// atomic: a failed entry may leave a truncated file behind.
package emit
