package report

import (
	"fmt"
	"io"
	"sellerscheck/pkg/domain"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const lineWidth = 90

var banner = strings.Repeat("=", lineWidth) //nolint: gochecknoglobals

// printer writes the console report. It remembers the first write error and
// turns every later write into a no-op, so callers check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// errWriter keeps the first error of the underlying writer; the table writer
// discards write errors of its output mirror.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err

	return n, err
}

func (p *printer) header(title string, now time.Time) {
	p.printf("\n%s\n%s\n%s\n", banner, title, banner)
	p.printf("\nRun at: %s\n\n", now.Format(time.RFC3339))
}

// tableStyle renders borderless columns separated by one space, with a dashed
// rule under the header.
var tableStyle = table.Style{ //nolint: gochecknoglobals
	Name: "sellerscheck",
	Box: table.BoxStyle{
		MiddleHorizontal: "-",
		PaddingLeft:      "",
		PaddingRight:     " ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateHeader:  true,
		SeparateRows:    false,
	},
}

// columnWidths are the minimum widths of Domain, HTTP and Sellers. Status
// takes what is left of lineWidth so the header rule spans the full line.
var columnWidths = []int{25, 6, 10} //nolint: gochecknoglobals

func (p *printer) table(s Summary) {
	if p.err != nil {
		return
	}

	used := 0
	configs := make([]table.ColumnConfig, 0, len(columnWidths)+1)
	for i, width := range columnWidths {
		configs = append(configs, table.ColumnConfig{
			Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMin: width,
		})
		used += width + len(tableStyle.Box.PaddingRight)
	}
	configs = append(configs, table.ColumnConfig{
		Number:      len(columnWidths) + 1,
		Align:       text.AlignLeft,
		AlignHeader: text.AlignLeft,
		WidthMin:    lineWidth - used - len(tableStyle.Box.PaddingRight),
	})

	w := &errWriter{w: p.w}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(tableStyle)
	t.SetColumnConfigs(configs)
	t.SuppressTrailingSpaces()

	t.AppendHeader(table.Row{"Domain", "HTTP", "Sellers", "Status"})
	for _, row := range s.Rows {
		t.AppendRow(table.Row{
			row.Domain,
			formatStatus(row.HTTPStatus),
			strconv.FormatInt(row.SellerCount, 10),
			row.Classification.Label(),
		})
	}
	t.Render()
	if w.err != nil {
		p.err = w.err

		return
	}

	p.printf("\n%s\n", banner)
	p.printf("Result: %d/%d succeeded\n", s.Succeeded, s.Total)
	p.printf("%s\n\n", banner)
}

func (p *printer) allHealthy() {
	p.printf("✅ All domains healthy\n")
}

func (p *printer) unhealthy(s Summary) {
	p.printf("⚠️ %d domain(s) still have problems\n", s.Total-s.Succeeded)
	p.printf("\nDetails:\n")
}

// details prints attempts grouped by domain. attempts must already be
// ordered by domain; a header is printed each time the domain changes.
func (p *printer) details(attempts []domain.FetchAttempt) {
	current := ""
	for i, a := range attempts {
		if i == 0 || a.Domain != current {
			p.printf("\n%s:\n", a.Domain)
			current = a.Domain
		}
		p.printf("  - Fetched: %s\n", formatTime(a.FetchedAt))
		p.printf("  - HTTP: %s\n", formatStatus(a.HTTPStatus))
		p.printf("  - ETag: %s\n", formatString(a.ETag))
		p.printf("  - Processed: %s\n", formatTime(a.ProcessedAt))
	}
}

const null = "NULL"

func formatStatus(code *int) string {
	if code == nil {
		return null
	}

	return strconv.Itoa(*code)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return null
	}

	return t.Format(time.RFC3339)
}

func formatString(s *string) string {
	if s == nil {
		return null
	}

	return *s
}
