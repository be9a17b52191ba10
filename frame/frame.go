package frame

import (
	"fmt"

	"github.com/go-sif/flavor"
	"github.com/go-sif/flavor/errors"
	uuid "github.com/gofrs/uuid"
)

// DataFrame is an in-memory table of rows respecting a Schema
type DataFrame struct {
	id     string
	schema *Schema
	rows   [][]interface{}
}

// CreateDataFrame returns an empty DataFrame with the given Schema.
// The DataFrame takes ownership of the Schema.
func CreateDataFrame(schema *Schema) *DataFrame {
	id, err := uuid.NewV4()
	if err != nil {
		panic(err)
	}
	return &DataFrame{
		id:     id.String(),
		schema: schema,
		rows:   [][]interface{}{},
	}
}

// ID returns the unique identifier of this DataFrame
func (df *DataFrame) ID() string {
	return df.id
}

// GetSchema returns the Schema of this DataFrame
func (df *DataFrame) GetSchema() flavor.Schema {
	return df.schema
}

// NumRows returns the number of rows in this DataFrame
func (df *DataFrame) NumRows() int {
	return len(df.rows)
}

// AppendRow adds a row to the end of this DataFrame. Values must be given in Schema order,
// and each must be nil or match its column's type.
func (df *DataFrame) AppendRow(values ...interface{}) error {
	if len(values) != df.schema.NumColumns() {
		return errors.IncompatibleRowError{Expected: df.schema.NumColumns(), Actual: len(values)}
	}
	types := df.schema.ColumnTypes()
	for i, v := range values {
		if !acceptsValue(types[i], v) {
			return fmt.Errorf("Value %#v for column %s is not of type %s", v, df.schema.names[i], types[i].Name())
		}
	}
	row := make([]interface{}, len(values))
	copy(row, values)
	df.rows = append(df.rows, row)
	return nil
}

// Row returns a copy of the values in the row at index i
func (df *DataFrame) Row(i int) ([]interface{}, error) {
	if i < 0 || i >= len(df.rows) {
		return nil, fmt.Errorf("Row index %d out of range [0, %d)", i, len(df.rows))
	}
	row := make([]interface{}, len(df.rows[i]))
	copy(row, df.rows[i])
	return row, nil
}

// Value returns the value of a column in the row at index i
func (df *DataFrame) Value(i int, colName string) (interface{}, error) {
	idx, err := df.schema.GetIndex(colName)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(df.rows) {
		return nil, fmt.Errorf("Row index %d out of range [0, %d)", i, len(df.rows))
	}
	return df.rows[i][idx], nil
}

// To applies operations to this DataFrame in order, feeding each the result of the last.
// The first error stops the chain and is returned together with the last good DataFrame.
func (df *DataFrame) To(ops ...flavor.DataFrameOperation) (flavor.DataFrame, error) {
	var current flavor.DataFrame = df
	for _, op := range ops {
		next, err := op(current)
		if err != nil {
			return current, err
		}
		current = next
	}
	return current, nil
}
