package reporting

import (
	"fmt"
	"strings"

	"heronomics/internal/domain"
)

// RenderCSV renders the instrument set as a CSV string, one row per
// instrument in the given (name-sorted) order.
func RenderCSV(instruments []*domain.Instrument) string {
	var sb strings.Builder

	// Header
	sb.WriteString("name,symbol,sector,beta,base_price,current_price,daily_change_percent,")
	sb.WriteString("outstanding_shares,market_cap,earnings_per_share,pe_ratio,dividend_yield,")
	sb.WriteString("market_sentiment,analyst_rating\n")

	// Rows
	for _, inst := range instruments {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%.3f,%.2f,%.2f,%.6f,%d,%.2f,%.2f,%.6f,%.6f,%s,%s\n",
			inst.Name,
			inst.Symbol,
			domain.SectorOf(inst.Name),
			inst.Beta,
			inst.BasePrice,
			inst.CurrentPrice,
			inst.DailyChangePercent,
			inst.OutstandingShares,
			inst.MarketCap,
			inst.EarningsPerShare,
			inst.PERatio,
			inst.DividendYield,
			inst.Sentiment,
			inst.Rating,
		))
	}

	return sb.String()
}
