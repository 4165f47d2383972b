package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Row is one table row as trimmed cell text, in column order. Values are never
// converted or checked against the header width.
type Row []string

// Extraction is the outcome of ExtractRows.
type Extraction struct {
	Rows []Row
	// Dropped counts data rows that had no cells.
	Dropped int
}

// ExtractRows skips the first row (the header) and converts every following row into
// a Row. Rows without <td> cells are dropped.
func ExtractRows(rows *goquery.Selection) *Extraction {
	out := &Extraction{Rows: make([]Row, 0, max(rows.Length()-1, 0))}

	rows.Slice(min(1, rows.Length()), rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			out.Dropped++
			return
		}

		row := make(Row, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			row = append(row, cellText(td))
		})
		out.Rows = append(out.Rows, row)
	})

	return out
}

// cellText trims every text node under sel and joins the non-empty ones with no
// separator, so "<a>NIP</a>\n <a>Astralis</a>" yields "NIPAstralis".
func cellText(sel *goquery.Selection) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(strings.TrimSpace(n.Data))
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return sb.String()
}
