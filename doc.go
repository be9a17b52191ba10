// Package flavor contains the core components of Flavor, a small framework for attaching named
// operations and accessors to DataFrames without modifying the DataFrame type itself.
// This root package defines the types which extensions are written against, and is a good
// overview of how a DataFrame, a DataFrameOperation and an Accessor fit together.
package flavor
