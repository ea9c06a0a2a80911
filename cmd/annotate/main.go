// Command annotate adds period-over-period delta badges to one statement table.
//
//	annotate -kind income -in table.html > annotated.html
//	annotate -kind balance -format markdown -in table.md
//	annotate -kind cash_flow -format json < grid.hjson
//
// HTML and Markdown input produce annotated HTML; a JSON grid produces the
// annotated table as JSON. Without -in the table is read from stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"statement_deltas/pkg/core/delta"
	"statement_deltas/pkg/core/edgar"
	"statement_deltas/pkg/core/tableio"
)

func main() {
	kindFlag := flag.String("kind", "income", "statement kind: income, balance or cash_flow")
	format := flag.String("format", "html", "input format: html, markdown or json")
	in := flag.String("in", "", "input file (default stdin)")
	summary := flag.Bool("summary", false, "print badge counts to stderr")
	flag.Parse()

	kind, err := delta.ParseStatementKind(*kindFlag)
	if err != nil {
		log.Fatalf("[Annotate] %v", err)
	}

	src, err := readInput(*in)
	if err != nil {
		log.Fatalf("[Annotate] read input: %v", err)
	}

	var counts delta.Counts
	switch *format {
	case "html", "markdown":
		if *format == "markdown" {
			if src, err = tableio.MarkdownToHTML(src); err != nil {
				log.Fatalf("[Annotate] %v", err)
			}
		}
		var out string
		out, counts, err = edgar.AnnotateHTMLSummary(src, kind)
		if err != nil {
			log.Fatalf("[Annotate] %v", err)
		}
		fmt.Println(out)
	case "json":
		table, err := tableio.ParseGrid(src)
		if err != nil {
			log.Fatalf("[Annotate] %v", err)
		}
		annotated := delta.Annotate(table, kind)
		counts = delta.Summary(annotated)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(annotated); err != nil {
			log.Fatalf("[Annotate] %v", err)
		}
	default:
		log.Fatalf("[Annotate] unknown format %q", *format)
	}

	if *summary {
		fmt.Fprintf(os.Stderr, "%s: %d badges (up=%d down=%d flat=%d na=%d)\n",
			kind, counts.Total(), counts[delta.Up], counts[delta.Down], counts[delta.Flat], counts[delta.NA])
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
