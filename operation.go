package flavor

// DataFrameOperation - A named DataFrame method. It receives a DataFrame and returns a DataFrame,
// which may be the very same one.
type DataFrameOperation func(df DataFrame) (DataFrame, error)

// AccessorFactory is a function that binds a fresh Accessor to a DataFrame
type AccessorFactory func(df DataFrame) Accessor
