package flavor

// Schema describes the named columns of a DataFrame
type Schema interface {
	Clone() Schema
	NumColumns() int
	HasColumn(colName string) bool
	ColumnNames() []string
}
