// Package classify maps a calendar day onto the sign of a table.
package classify

import (
	"github.com/ppiankov/calsigns/internal/model"
)

// Match scans the table in order and returns the first entry whose start or
// end boundary accepts today.
//
// An entry accepts a day when the day sits in the start month on or after the
// start day, or in the end month on or before the end day. Months strictly
// between start and end are never accepted. Year-wrapping entries need no
// special handling since both tests only compare month and day.
//
// The boolean is false when nothing matches; that is not an error.
func Match(table *model.SignTable, today model.DayMonth) (model.Result, bool) {
	if table == nil {
		return model.Result{}, false
	}
	for _, e := range table.Entries {
		if accepts(e, today) {
			return model.ResultOf(e), true
		}
	}
	return model.Result{}, false
}

func accepts(e model.SignEntry, today model.DayMonth) bool {
	// Ranges covering three or more months lose their middle months here.
	// Japan Zen relies on it for May and September.
	afterStart := today.Month == e.Start.Month && today.Day >= e.Start.Day
	beforeEnd := today.Month == e.End.Month && today.Day <= e.End.Day
	return afterStart || beforeEnd
}
