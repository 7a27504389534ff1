// Command quote prints a one-shot quote table for the given symbols.
//
//	quote -sort price -desc AAPL MSFT ibm
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"TickerBoard/internal/di"
	"TickerBoard/internal/domain/models"
	"TickerBoard/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "config file path (empty for defaults)")
	sortField := flag.String("sort", "none", "sort field: none, symbol, price, change, changePercent")
	desc := flag.Bool("desc", false, "sort descending")
	wait := flag.Duration("wait", 15*time.Second, "how long to wait for quotes")
	flag.Parse()

	field := models.SortField(*sortField)
	if !field.IsValid() {
		log.Fatalf("unknown sort field %q", *sortField)
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	cfg.Logger.Output = "stderr"
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Logger.Level = "warn"
		cfg.Logger.Format = "console"
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Board.InitialTickers = args
	}

	board, err := di.InitializeBoard(cfg)
	if err != nil {
		log.Fatalf("board initialization failed: %v", err)
	}
	defer board.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *wait)
	defer cancel()
	if err := board.Wait(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Fatalf("wait: %v", err)
	}

	spec := board.SetSort(field)
	if *desc && spec.Field != models.SortNone {
		spec = board.SetSort(field)
	}
	if err := render(os.Stdout, board.Rows()); err != nil {
		log.Fatalf("render: %v", err)
	}
}

func render(w io.Writer, rows []models.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SYMBOL\tPRICE\tCHANGE\tCHANGE %\t")
	for _, r := range rows {
		switch r.State.Status {
		case models.StatusSuccess:
			q := r.State.Quote
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", q.Symbol, q.FormatPrice(), q.FormatChange(), q.FormatChangePercent())
		case models.StatusFailure:
			fmt.Fprintf(tw, "%s\t%s\t\t\t\n", r.Ticker, r.State.Err.Display())
		default:
			fmt.Fprintf(tw, "%s\tLoading...\t\t\t\n", r.Ticker)
		}
	}
	return tw.Flush()
}
