package dbx

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

// FoldFunc is the SQLite scalar that lower-cases its argument with full
// Unicode rules. The built-in LOWER() only folds ASCII letters.
const FoldFunc = "fold"

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction(FoldFunc, 1, foldScalar); err != nil {
		panic(err)
	}
}

func foldScalar(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", FoldFunc, v)
	}
}
