package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"equitylens/internal/model"
)

// actionEmoji decorates the recommendation verdict.
func actionEmoji(action string) string {
	switch action {
	case "STRONG BUY":
		return "🟢🟢"
	case "BUY":
		return "🟢"
	case "HOLD":
		return "🟡"
	case "WEAK SELL":
		return "🟠"
	default:
		return "🔴"
	}
}

func fmtOptional(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

// FormatReport formats one research report into a Telegram message.
func FormatReport(report *model.Report) string {
	var b strings.Builder

	name := report.Symbol
	if report.Profile != nil && report.Profile.Name != "" {
		name = fmt.Sprintf("%s (%s)", report.Profile.Name, report.Symbol)
	}
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", name, time.Now().Format("2006-01-02")))

	if report.Profile != nil {
		b.WriteString(fmt.Sprintf("Price: %s\n", fmtOptional(report.Profile.CurrentPrice, "%.2f")))
		b.WriteString(fmt.Sprintf("P/E: %s | Yield: %s\n\n",
			fmtOptional(report.Profile.TrailingPE, "%.1f"),
			fmtOptional(yieldPercent(report.Profile.DividendYield), "%.2f%%")))
	}

	b.WriteString(fmt.Sprintf("%s <b>%s</b> (score %+d, risk %s)\n",
		actionEmoji(report.Recommendation.Action),
		report.Recommendation.Action,
		report.Recommendation.Score,
		report.Recommendation.RiskLabel))
	b.WriteString(report.Recommendation.Reason + "\n\n")

	b.WriteString("📈 <b>Factors:</b>\n")
	for _, f := range report.Recommendation.Factors {
		b.WriteString(fmt.Sprintf("  %s: %s\n", f.Name, f.Detail))
	}

	b.WriteString("\n💰 <b>Fair Value:</b>\n")
	b.WriteString(fmt.Sprintf("  DCF: %s | P/E relative: %s\n",
		fmtOptional(report.Valuations.DCF, "%.2f"),
		fmtOptional(report.Valuations.PERelative, "%.2f")))
	b.WriteString(fmt.Sprintf("  Graham: %s | PEG: %s\n",
		fmtOptional(report.Valuations.Graham, "%.2f"),
		fmtOptional(report.Valuations.PEG, "%.2f")))

	b.WriteString(fmt.Sprintf("\n♻️ Compounding: %s (score %d/10)\n",
		report.Compounding.Verdict, report.Compounding.Score))
	b.WriteString(report.CompoundingSummary + "\n")

	if report.Economic != nil {
		b.WriteString(fmt.Sprintf("\n🌐 Macro sentiment: %s\n", report.Economic.OverallSentiment))
	}
	return b.String()
}

// FormatWatchlistDigest formats the scheduled watchlist refresh into a
// single message, one line per symbol plus failures.
func FormatWatchlistDigest(reports []*model.Report, failures map[string]error) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗓 <b>Watchlist Digest</b> | %s\n\n", time.Now().Format("2006-01-02")))

	for _, r := range reports {
		b.WriteString(fmt.Sprintf("%s %s: %s (score %+d, risk %s)\n",
			actionEmoji(r.Recommendation.Action),
			r.Symbol,
			r.Recommendation.Action,
			r.Recommendation.Score,
			r.Recommendation.RiskLabel))
	}
	if len(failures) > 0 {
		symbols := make([]string, 0, len(failures))
		for symbol := range failures {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		b.WriteString("\n⚠️ Failed:\n")
		for _, symbol := range symbols {
			b.WriteString(fmt.Sprintf("  %s: %v\n", symbol, failures[symbol]))
		}
	}
	return b.String()
}

// yieldPercent scales a fractional dividend yield to percent.
func yieldPercent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return model.Float(*v * 100)
}
