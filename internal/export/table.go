// Package export flattens reports into ordered rows and columns and
// writes them out as CSV. All number formatting lives here, not in the
// analysis core.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"equitylens/internal/model"
)

// Table is a fully materialized tabular result.
type Table struct {
	Columns []string
	Rows    [][]string
}

// WriteCSV writes the header row followed by all data rows.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const dateLayout = "2006-01-02"

// cell renders an optional value, empty when unknown.
func cell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// HistoryTable flattens a price series, one row per trading day.
func HistoryTable(series model.PriceSeries) Table {
	t := Table{Columns: []string{"Date", "Open", "High", "Low", "Close", "Volume"}}
	for _, bar := range series {
		t.Rows = append(t.Rows, []string{
			bar.Time.Format(dateLayout),
			strconv.FormatFloat(bar.Open, 'f', -1, 64),
			strconv.FormatFloat(bar.High, 'f', -1, 64),
			strconv.FormatFloat(bar.Low, 'f', -1, 64),
			strconv.FormatFloat(bar.Close, 'f', -1, 64),
			strconv.FormatInt(bar.Volume, 10),
		})
	}
	return t
}

// StatementTable flattens one financial statement: line items as rows,
// period-end dates as columns in chronological order. Dates are the union
// across items; items missing a period leave the cell empty.
func StatementTable(statement model.StatementTable) Table {
	var dates []string
	seen := map[string]bool{}
	for _, item := range statement.Items {
		for _, p := range item.Points {
			d := p.Date.Format(dateLayout)
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	sort.Strings(dates) // ISO dates order lexicographically

	t := Table{Columns: append([]string{"Line Item"}, dates...)}
	index := make(map[string]int, len(dates))
	for i, d := range dates {
		index[d] = i
	}
	for _, item := range statement.Items {
		row := make([]string, len(dates)+1)
		row[0] = item.Name
		for _, p := range item.Points {
			row[index[p.Date.Format(dateLayout)]+1] = strconv.FormatFloat(p.Value, 'f', -1, 64)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// SummaryTable flattens the headline analysis results of a report into
// metric/value rows.
func SummaryTable(report *model.Report) Table {
	t := Table{Columns: []string{"Metric", "Value"}}
	add := func(name, value string) {
		t.Rows = append(t.Rows, []string{name, value})
	}

	add("Symbol", report.Symbol)
	if report.Profile != nil {
		add("Name", report.Profile.Name)
		add("Sector", report.Profile.Sector)
		add("Current Price", cell(report.Profile.CurrentPrice))
		add("Market Cap", cell(report.Profile.MarketCap))
		add("Trailing P/E", cell(report.Profile.TrailingPE))
	}

	add("MA20", cell(report.Indicators.MA20))
	add("MA50", cell(report.Indicators.MA50))
	add("RSI14", cell(report.Indicators.RSI14))
	add("Annualized Volatility", cell(report.Indicators.Volatility))

	add("DCF Fair Value", cell(report.Valuations.DCF))
	add("P/E Relative Fair Value", cell(report.Valuations.PERelative))
	add("Graham Number", cell(report.Valuations.Graham))
	add("PEG Ratio", cell(report.Valuations.PEG))

	add("Recommendation", report.Recommendation.Action)
	add("Recommendation Score", strconv.Itoa(report.Recommendation.Score))
	add("Risk Level", report.Recommendation.RiskLabel)
	for _, f := range report.Recommendation.Factors {
		add(f.Name, f.Detail)
	}

	add("Compounding Score", strconv.Itoa(report.Compounding.Score))
	add("Is Compounding", report.Compounding.Verdict.String())
	add("Compounding Summary", report.CompoundingSummary)

	if report.Economic != nil {
		add("Economic Sentiment", report.Economic.OverallSentiment)
		add("GDP Impact", report.Economic.GDPImpact)
		add("Inflation Impact", report.Economic.InflationImpact)
		add("Interest Rate Impact", report.Economic.InterestRateImpact)
	}
	return t
}
