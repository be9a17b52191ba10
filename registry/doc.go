// Package registry attaches named DataFrameOperations and Accessors to DataFrames.
// Go cannot add methods to a type it does not own, so callers look extensions up
// by name here (or call the extension's functions directly) instead.
package registry
