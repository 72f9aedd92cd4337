// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PassportRecord is the predicate function for passportrecord builders.
type PassportRecord func(*sql.Selector)
