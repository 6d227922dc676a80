package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/stock"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, success.Sprint("ok")+" "+fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warn.Sprint("warn")+" "+fmt.Sprintf(format, args...))
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, accent.Sprint(title))
	fmt.Fprintln(w, neutral.Sprint(strings.Repeat("-", len(title))))
}

// renderStockPage prints one market overview page as an aligned table
func renderStockPage(w io.Writer, page *domain.StockPage) {
	printHeader(w, fmt.Sprintf("Market (%s first) page %d/%d", page.Order, page.Page, page.TotalPages))
	if len(page.Stocks) == 0 {
		printWarn(w, "no stocks listed")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, s := range page.Stocks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.StockID, s.Name, s.Price.StringFixed(stock.PriceScale))
	}
	tw.Flush()
}

// renderTrends colours each stock's absolute change since the trend window opened
func renderTrends(w io.Writer, trends []domain.StockTrend) {
	printHeader(w, "Trends")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRICE\tCHANGE")
	for _, t := range trends {
		change := "n/a"
		if t.Change != nil {
			change = t.Change.StringFixed(stock.PriceScale)
			switch {
			case t.Change.IsPositive():
				change = success.Sprint("+" + change)
			case t.Change.IsNegative():
				change = danger.Sprint(change)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Stock.StockID, t.Stock.Price.StringFixed(stock.PriceScale), change)
	}
	tw.Flush()
}
