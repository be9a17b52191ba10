package frame

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tidwall/gjson"
)

// JSONLConf configures FromJSONL
type JSONLConf struct {
	HeaderLines   int // The number of lines to ignore from the beginning of the input. Defaults to 0.
	MaxBufferSize int // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// FromJSONL builds a DataFrame from JSON Lines data. Each column name in schema is a gjson path
// into a line; values which are absent or null become nil. Lines which are not valid JSON are rejected.
func FromJSONL(r io.Reader, schema *Schema, conf *JSONLConf) (*DataFrame, error) {
	if conf == nil {
		conf = &JSONLConf{}
	}
	conf = &JSONLConf{HeaderLines: conf.HeaderLines, MaxBufferSize: conf.MaxBufferSize}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), conf.MaxBufferSize)
	for i := 0; i < conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	df := CreateDataFrame(schema)
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	lineNum := conf.HeaderLines
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("Unable to parse line %d: invalid JSON", lineNum)
		}
		values, err := parseJSONRow(colNames, colTypes, gjson.Parse(line))
		if err != nil {
			return nil, fmt.Errorf("Unable to parse line %d: %w", lineNum, err)
		}
		if err = df.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return df, nil
}

func parseJSONRow(colNames []string, colTypes []ColumnType, json gjson.Result) ([]interface{}, error) {
	values := make([]interface{}, len(colNames))
	for i, colName := range colNames {
		val := json.Get(colName)
		if !val.Exists() || val.Type == gjson.Null {
			continue
		}
		switch colTypes[i].(type) {
		case *BoolColumnType:
			if val.Type != gjson.True && val.Type != gjson.False {
				return nil, fmt.Errorf("Column %s was not a boolean. Was: %s", colName, val.Raw)
			}
			values[i] = val.Bool()
		case *Int64ColumnType:
			if val.Type != gjson.Number {
				return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
			}
			if f := val.Float(); f != math.Trunc(f) {
				return nil, fmt.Errorf("Column %s was not an integer. Was: %s", colName, val.Raw)
			}
			values[i] = val.Int()
		case *Float64ColumnType:
			if val.Type != gjson.Number {
				return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
			}
			values[i] = val.Float()
		case *StringColumnType:
			if val.Type != gjson.String {
				return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, val.Raw)
			}
			values[i] = val.String()
		default:
			return nil, fmt.Errorf("Column %s has unsupported type %s", colName, colTypes[i].Name())
		}
	}
	return values, nil
}
