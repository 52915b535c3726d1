// Package pattern recognizes date, time and uuid shaped strings. The
// same recognizer serves two callers: leaf values get a format
// annotation, and object keys that match collapse into one
// placeholder property per pattern and depth.
package pattern

import (
	"time"

	"github.com/google/uuid"
)

// Tokens without a layout of their own.
const (
	Datetime = "datetime"
	UUID     = "uuid"
)

type entry struct {
	layout string
	token  string
}

// Calendar layouts, most specific first so a loose one cannot shadow a
// stricter one. The token keeps the literal separator, 2024/01/15 and
// 2024-01-15 stay distinguishable.
var calendar = []entry{
	{"2006-01-02", "yyyy-mm-dd"},
	{"02-01-2006", "dd-mm-yyyy"},
	{"2006/01/02", "yyyy/mm/dd"},
	{"02/01/2006", "dd/mm/yyyy"},
	{"20060102", "yyyymmdd"},
	{"02012006", "ddmmyyyy"},
	{"January 02, 2006", "month dd, yyyy"},
	{"02 January 2006", "dd month yyyy"},
	{"2006-01", "yyyy-mm"},
	{"01-2006", "mm-yyyy"},
}

// Match reports the canonical format token for s. Datetime needs an
// explicit zone, so 2024-03-20T15:30:00Z matches and the zoneless
// variant does not. time.Parse checks calendar validity for the rest,
// rejecting strings like 2021-13-05 or 2021-02-30.
func Match(s string) (string, bool) {
	if len(s) < 7 || len(s) > 64 {
		return "", false
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return Datetime, true
	}
	for _, e := range calendar {
		if _, err := time.Parse(e.layout, s); err == nil {
			return e.token, true
		}
	}
	if _, err := uuid.Parse(s); err == nil {
		return UUID, true
	}
	return "", false
}
