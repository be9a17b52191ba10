// Package frame provides an in-memory DataFrame, suitable for small datasets and for exercising
// extensions. Frames may be built row by row, or parsed from JSON Lines using https://github.com/tidwall/gjson,
// in which case Schema column names are treated as gjson paths.
package frame
