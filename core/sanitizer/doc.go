// Package sanitizer normalizes free-form payment input before it is stored in
// an instruction.
//
//	sanitizer.TrimToUpper(" cekoskbx ")         // "CEKOSKBX"
//	sanitizer.RemoveWhitespace("SK77 0000 0000") // "SK7700000000"
//	sanitizer.FieldText("line one\tline two")    // "line one line two"
//
// FieldText exists because the payment record is tab-delimited: a tab or line
// break inside a value would shift every following field.
package sanitizer
