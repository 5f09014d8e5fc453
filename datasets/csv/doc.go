// Package csv reads a labeled dataset from a delimited file.
//
// Each record is a row of values. A row whose first field is non-empty starts a new
// label and the remaining fields are its first values. A row whose first field is
// empty continues the previous label, its values are appended to the same vector.
// Rows with every field empty are skipped. The following file yields a dataset with
// two labels, each a vector of four values:
//
//	A,0,1
//	,1,0
//	B,1,1
//	,0,0
package csv
