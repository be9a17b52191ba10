package flavor

// A DataFrame is an opaque tabular object (rows of named columns).
// Extensions receive one and hand it back; they never need to look inside.
type DataFrame interface {
	GetSchema() Schema                           // GetSchema returns the Schema of a DataFrame
	NumRows() int                                // NumRows returns the number of rows currently held by a DataFrame
	To(...DataFrameOperation) (DataFrame, error) // To is a "functional operations" factory method for DataFrames, chaining operations onto the current one.
}
