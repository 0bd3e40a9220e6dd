// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DataValue is the predicate function for datavalue builders.
type DataValue func(*sql.Selector)

// Field is the predicate function for entfield builders.
type Field func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)
