package model

import "time"

// LinePoint is one (period-end, value) observation of a financial line item.
type LinePoint struct {
	Date  time.Time
	Value float64
}

// LineItem is a named statement line with chronologically ascending points,
// typically one per fiscal year.
type LineItem struct {
	Name   string
	Points []LinePoint
}

// StatementTable holds the line items of one financial statement in
// provider row order.
type StatementTable struct {
	Items []LineItem
}

// Empty reports whether the table carries no line items.
func (t StatementTable) Empty() bool { return len(t.Items) == 0 }

// Lookup returns the points for an exactly named line item.
func (t StatementTable) Lookup(name string) ([]LinePoint, bool) {
	for _, item := range t.Items {
		if item.Name == name {
			return item.Points, true
		}
	}
	return nil, false
}

// FirstOf tries the given line-item names in order and returns the points
// of the first one present. Providers label the same concept differently
// ("Net Income" vs "Net Income Common Stockholders"), so consumers pass an
// ordered alias list.
func (t StatementTable) FirstOf(aliases ...string) ([]LinePoint, bool) {
	for _, name := range aliases {
		if points, ok := t.Lookup(name); ok {
			return points, true
		}
	}
	return nil, false
}

// StatementSet bundles the three annual financial statements for a symbol.
// Any table may be empty when the provider has no data.
type StatementSet struct {
	Income       StatementTable
	BalanceSheet StatementTable
	CashFlow     StatementTable
}

// Empty reports whether no statement contains any data.
func (s *StatementSet) Empty() bool {
	if s == nil {
		return true
	}
	return s.Income.Empty() && s.BalanceSheet.Empty() && s.CashFlow.Empty()
}
