// Package statement renders a monthly round-up statement as Markdown and
// converts it to HTML.
package statement

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"gulfacorns/internal/models"
	"gulfacorns/internal/money"
)

// MonthLayout is the accepted month format, e.g. 2025-03.
const MonthLayout = "2006-01"

// Total is an amount in a single currency.
type Total struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// Data is everything a statement shows for one user and one month.
type Data struct {
	UserName    string
	Month       time.Time
	Purchases   []models.Purchase
	Lots        []models.InvestLot
	RoundUps    []Total
	Invested    []Total
	Pending     []Total
	GeneratedAt time.Time
}

// MonthRange returns the half-open interval [start, end) covering month in loc.
// An empty month selects the month containing now.
func MonthRange(month string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	var start time.Time
	if month == "" {
		n := now.In(loc)
		start = time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation(MonthLayout, month, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
		}
		start = parsed
	}
	return start, start.AddDate(0, 1, 0), nil
}

// Totals groups amounts by currency, sorted by currency code.
func Totals[T any](items []T, currency func(T) string, amount func(T) decimal.Decimal) []Total {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, item := range items {
		c := currency(item)
		if _, ok := sums[c]; !ok {
			order = append(order, c)
		}
		sums[c] = sums[c].Add(amount(item))
	}
	sort.Strings(order)

	totals := make([]Total, 0, len(order))
	for _, c := range order {
		totals = append(totals, Total{Currency: c, Amount: sums[c]})
	}
	return totals
}

// RenderMarkdown writes the statement as GitHub-flavoured Markdown.
func RenderMarkdown(d *Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Round-up statement: %s\n\n", d.Month.Format("January 2006"))
	if d.UserName != "" {
		fmt.Fprintf(&b, "Prepared for **%s** on %s.\n\n", escape(d.UserName), d.GeneratedAt.Format("2 Jan 2006 15:04"))
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| | Amount |\n|---|---:|\n")
	writeTotalRows(&b, "Round-ups", d.RoundUps)
	writeTotalRows(&b, "Invested", d.Invested)
	writeTotalRows(&b, "Pending", d.Pending)
	b.WriteString("\n")

	b.WriteString("## Purchases\n\n")
	if len(d.Purchases) == 0 {
		b.WriteString("No purchases this month.\n\n")
	} else {
		b.WriteString("| Date | Merchant | Amount | Round-up |\n|---|---|---:|---:|\n")
		for _, p := range d.Purchases {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				p.CreatedAt.Format("2006-01-02"),
				escape(p.Merchant),
				money.Format(p.Amount, p.Currency),
				money.Format(p.Roundup, p.Currency),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Investments\n\n")
	if len(d.Lots) == 0 {
		b.WriteString("No investments this month.\n")
	} else {
		b.WriteString("| Date | Portfolio | Amount |\n|---|---|---:|\n")
		for _, l := range d.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				l.CreatedAt.Format("2006-01-02"),
				escape(l.Portfolio),
				money.Format(l.Amount, l.Currency),
			)
		}
	}

	return b.String()
}

func writeTotalRows(b *strings.Builder, label string, totals []Total) {
	if len(totals) == 0 {
		fmt.Fprintf(b, "| %s | 0 |\n", label)
		return
	}
	for _, t := range totals {
		fmt.Fprintf(b, "| %s | %s |\n", label, money.Format(t.Amount, t.Currency))
	}
}

// escape keeps user-supplied text from breaking table cells or injecting markup.
func escape(s string) string {
	r := strings.NewReplacer("|", `\|`, "<", "&lt;", ">", "&gt;", "\n", " ")
	return r.Replace(s)
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// RenderHTML converts the Markdown statement into a standalone HTML page.
func RenderHTML(d *Data) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(d)), &body); err != nil {
		return "", fmt.Errorf("render statement: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">")
	fmt.Fprintf(&page, "<title>Statement %s</title>", d.Month.Format(MonthLayout))
	page.WriteString("</head><body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body></html>\n")
	return page.String(), nil
}
