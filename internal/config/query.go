package config

import (
	"net/url"
	"strings"
	"time"
)

// PlayersStatsURL is the base path of the player statistics listing.
const PlayersStatsURL = "https://www.hltv.org/stats/players"

const dateLayout = "2006-01-02"

// Query describes the filters encoded into the stats endpoint.
type Query struct {
	Start         time.Time
	End           time.Time
	Maps          string
	RankingFilter string
	Side          string
}

// RollingQuery returns a query covering the daysBack days that end at now.
func RollingQuery(now time.Time, daysBack int, maps, ranking, side string) Query {
	return Query{
		Start:         now.AddDate(0, 0, -daysBack),
		End:           now,
		Maps:          maps,
		RankingFilter: ranking,
		Side:          side,
	}
}

// BuildEndpoint encodes q onto base. Parameters keep a fixed order
// (startDate, endDate, maps, rankingFilter, side) and empty ones are left out.
func BuildEndpoint(base string, q Query) string {
	params := []struct{ key, value string }{
		{"startDate", formatDate(q.Start)},
		{"endDate", formatDate(q.End)},
		{"maps", q.Maps},
		{"rankingFilter", q.RankingFilter},
		{"side", q.Side},
	}

	// url.Values.Encode sorts keys, so the query string is built by hand.
	var sb strings.Builder
	for _, p := range params {
		if p.value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}

	if sb.Len() == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + sb.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
