package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sellerhq/seller-console/fetch"
)

// load drives one remote call through a fetch.Resource, spinning on stderr
// while it is in flight. Commands stay responsive to Ctrl-C because the
// command context flows into the resource.
func load[P, T any](ctx context.Context, fn fetch.Func[P, T], initial T, params P, token string) (T, error) {
	resource := fetch.NewResource(fn, initial)
	defer resource.Close()

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " loading"
	spin.Start()
	resource.Load(ctx, params, token)
	resource.Wait()
	spin.Stop()

	state := resource.State()
	return state.Data, state.Err
}

func newTable(out io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	return tw
}

func money(currency string, amount float64) string {
	if currency == "" {
		currency = "NGN"
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func activeBadge(b bool) string {
	if b {
		return "ACTIVE"
	}
	return "INACTIVE"
}

// pageFooter prints the pagination summary under a list table.
func pageFooter(out io.Writer, page, totalPages, count int) {
	if totalPages <= 0 {
		return
	}
	fmt.Fprintf(out, "page %d of %d (%d total)\n", page, totalPages, count)
}
