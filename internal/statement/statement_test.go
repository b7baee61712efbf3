package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gulfacorns/internal/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleData() *Data {
	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Data{
		UserName: "Demo User",
		Month:    month,
		Purchases: []models.Purchase{
			{Merchant: "Coffee | Co", Amount: d("4.50"), Currency: "USD", Roundup: d("0.50"), CreatedAt: month.AddDate(0, 0, 2)},
			{Merchant: "Grocer", Amount: d("23.75"), Currency: "USD", Roundup: d("0.25"), CreatedAt: month.AddDate(0, 0, 5)},
		},
		Lots: []models.InvestLot{
			{Amount: d("0.75"), Currency: "USD", Portfolio: "balanced", CreatedAt: month.AddDate(0, 0, 6)},
		},
		RoundUps:    []Total{{Currency: "USD", Amount: d("0.75")}},
		Invested:    []Total{{Currency: "USD", Amount: d("0.75")}},
		GeneratedAt: month.AddDate(0, 0, 10),
	}
}

func TestMonthRange(t *testing.T) {
	t.Run("explicit_month", func(t *testing.T) {
		start, end, err := MonthRange("2025-02", time.Now(), time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
		if !end.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("defaults_to_current_month", func(t *testing.T) {
		now := time.Date(2025, 12, 17, 15, 0, 0, 0, time.UTC)
		start, end, err := MonthRange("", now, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
		if !end.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		if _, _, err := MonthRange("2025-13", time.Now(), time.UTC); err == nil {
			t.Error("expected error")
		}
	})
}

func TestTotals(t *testing.T) {
	lots := []models.InvestLot{
		{Amount: d("0.500"), Currency: "KWD"},
		{Amount: d("1.25"), Currency: "USD"},
		{Amount: d("0.25"), Currency: "KWD"},
	}
	totals := Totals(lots,
		func(l models.InvestLot) string { return l.Currency },
		func(l models.InvestLot) decimal.Decimal { return l.Amount },
	)

	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	if totals[0].Currency != "KWD" || !totals[0].Amount.Equal(d("0.75")) {
		t.Errorf("unexpected KWD total %+v", totals[0])
	}
	if totals[1].Currency != "USD" || !totals[1].Amount.Equal(d("1.25")) {
		t.Errorf("unexpected USD total %+v", totals[1])
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleData())

	for _, want := range []string{
		"# Round-up statement: March 2025",
		"**Demo User**",
		"| Round-ups | $0.75 |",
		"| Pending | 0 |",
		`Coffee \| Co`,
		"| 2025-03-06 | balanced | $0.75 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected markdown to contain %q\n%s", want, out)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	out := RenderMarkdown(&Data{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	if !strings.Contains(out, "No purchases this month.") || !strings.Contains(out, "No investments this month.") {
		t.Errorf("expected empty-state text, got\n%s", out)
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<title>Statement 2025-03</title>",
		"<h1>Round-up statement: March 2025</h1>",
		"<table>",
		"<td>Grocer</td>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected html to contain %q", want)
		}
	}
}
