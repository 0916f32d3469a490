package algebra

import "vFGB/internal/qfield"

// mustElem is a terse qfield.Elem constructor for test tables.
func mustElem(n int64) qfield.Elem { return qfield.FromInt64(n) }
