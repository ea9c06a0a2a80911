package edgar

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"statement_deltas/pkg/core/delta"
)

// badgeClass marks the spans AnnotateHTML inserts.
const badgeClass = "delta-badge"

// htmlTable keeps the parsed document next to the delta.Table built from it,
// so badges can be written back to the right <td>.
type htmlTable struct {
	doc   *goquery.Document
	cells [][]*goquery.Selection
	table delta.Table
}

func parseHTMLTable(tableHTML string) (*htmlTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// earlier annotations must not leak into cell text
	doc.Find("." + badgeClass).Remove()

	ht := &htmlTable{doc: doc}
	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var sels []*goquery.Selection
		row := delta.Row{Index: i}
		tr.ChildrenFiltered("td, th").Each(func(j int, cell *goquery.Selection) {
			sels = append(sels, cell)
			row.Cells = append(row.Cells, delta.Cell{
				Row:    i,
				Col:    j,
				Text:   cell.Text(),
				Header: goquery.NodeName(cell) == "th",
			})
		})
		ht.cells = append(ht.cells, sels)
		ht.table.Rows = append(ht.table.Rows, row)
	})
	return ht, nil
}

// TableFromHTML converts the rows of an HTML table into a delta.Table.
// Existing delta badges are ignored.
func TableFromHTML(tableHTML string) (delta.Table, error) {
	ht, err := parseHTMLTable(tableHTML)
	if err != nil {
		return delta.Table{}, err
	}
	return ht.table, nil
}

// AnnotateHTML annotates an HTML statement table, appending a badge span to
// each current-period cell:
//
//	<span class="delta-badge delta-up">▲ 10.0%</span>
//
// Badges from a previous run are removed first, so the call is idempotent.
// Markup without rows is returned unchanged.
func AnnotateHTML(tableHTML string, kind delta.StatementKind) (string, error) {
	out, _, err := AnnotateHTMLSummary(tableHTML, kind)
	return out, err
}

// AnnotateHTMLSummary is AnnotateHTML that also counts the badges written.
func AnnotateHTMLSummary(tableHTML string, kind delta.StatementKind) (string, delta.Counts, error) {
	if strings.TrimSpace(tableHTML) == "" {
		return tableHTML, delta.Counts{}, nil
	}
	ht, err := parseHTMLTable(tableHTML)
	if err != nil {
		return "", nil, err
	}
	if len(ht.table.Rows) == 0 {
		return tableHTML, delta.Counts{}, nil
	}

	annotated := delta.Annotate(ht.table, kind)
	for i, row := range annotated.Rows {
		for j, cell := range row.Cells {
			if cell.Badge == nil {
				continue
			}
			ht.cells[i][j].AppendHtml(BadgeHTML(*cell.Badge))
		}
	}

	out, err := ht.doc.Find("body").Html()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render HTML: %w", err)
	}
	return out, delta.Summary(annotated), nil
}

// BadgeHTML renders a badge as the span inserted into annotated tables.
func BadgeHTML(b delta.Badge) string {
	return fmt.Sprintf(`<span class="%s %s">%s</span>`, badgeClass, b.Class(), html.EscapeString(b.Label()))
}
