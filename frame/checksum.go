package frame

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
)

// Checksum returns a digest of the Schema and contents of this DataFrame.
// Two DataFrames with equal Checksums hold the same columns and values, in the same order.
func (df *DataFrame) Checksum() uint64 {
	hasher := xxhash.New()
	types := df.schema.ColumnTypes()
	for i, name := range df.schema.names {
		fmt.Fprintf(hasher, "%q:%s;", name, types[i].Name())
	}
	hasher.Write([]byte{'\n'})
	for _, row := range df.rows {
		for _, v := range row {
			fmt.Fprintf(hasher, "%#v;", v)
		}
		hasher.Write([]byte{'\n'})
	}
	return hasher.Sum64()
}
