package frame

import (
	"fmt"
	"reflect"

	"github.com/go-sif/flavor"
	"github.com/go-sif/flavor/errors"
)

type column struct {
	idx     int
	colType ColumnType
}

// Schema is an ordered set of named, typed columns
type Schema struct {
	schema map[string]*column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() *Schema {
	return &Schema{
		schema: make(map[string]*column),
		names:  []string{},
	}
}

// CreateColumn defines a new column at the end of the Schema
func (s *Schema) CreateColumn(colName string, columnType ColumnType) (*Schema, error) {
	if _, exists := s.schema[colName]; exists {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	s.schema[colName] = &column{idx: len(s.names), colType: columnType}
	s.names = append(s.names, colName)
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent
func (s *Schema) Equals(otherSchema *Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for i, name := range s.names {
		if otherSchema.names[i] != name {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(s.schema[name].colType) != reflect.TypeOf(otherSchema.schema[name].colType) {
			return fmt.Errorf("Column %s types do not match", name)
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() flavor.Schema {
	return s.clone()
}

func (s *Schema) clone() *Schema {
	newSchema := make(map[string]*column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = &column{idx: v.idx, colType: v.colType}
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return &Schema{schema: newSchema, names: names}
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.names)
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// GetIndex returns the position of a column within a row
func (s *Schema) GetIndex(colName string) (int, error) {
	col, ok := s.schema[colName]
	if !ok {
		return -1, errors.MissingColumnError{Name: colName}
	}
	return col.idx, nil
}

// ColumnNames returns the names in the Schema, in index order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the Schema, in index order
func (s *Schema) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].colType
	}
	return types
}
