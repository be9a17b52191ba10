package frame

// ColumnType is the type of a column within a Schema
type ColumnType interface {
	Name() string // Name returns a human-readable name for this ColumnType
}

// BoolColumnType is a column holding bool values
type BoolColumnType struct{}

// Name returns the name of this ColumnType
func (b *BoolColumnType) Name() string { return "bool" }

// Int64ColumnType is a column holding int64 values
type Int64ColumnType struct{}

// Name returns the name of this ColumnType
func (b *Int64ColumnType) Name() string { return "int64" }

// Float64ColumnType is a column holding float64 values
type Float64ColumnType struct{}

// Name returns the name of this ColumnType
func (b *Float64ColumnType) Name() string { return "float64" }

// StringColumnType is a column holding string values
type StringColumnType struct{}

// Name returns the name of this ColumnType
func (b *StringColumnType) Name() string { return "string" }

func acceptsValue(colType ColumnType, val interface{}) bool {
	if val == nil {
		return true
	}
	switch colType.(type) {
	case *BoolColumnType:
		_, ok := val.(bool)
		return ok
	case *Int64ColumnType:
		_, ok := val.(int64)
		return ok
	case *Float64ColumnType:
		_, ok := val.(float64)
		return ok
	case *StringColumnType:
		_, ok := val.(string)
		return ok
	default:
		return false
	}
}
