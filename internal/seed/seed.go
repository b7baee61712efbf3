// Package seed replays a YAML fixture through the services so demo data
// obeys the same rules as live traffic.
package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"gulfacorns/internal/logger"
	"gulfacorns/internal/roundup"
	"gulfacorns/internal/services"
)

// Fixture is the on-disk seed format. Amounts are strings so they keep
// their exact decimal value.
type Fixture struct {
	User struct {
		Email string `yaml:"email"`
		Name  string `yaml:"name"`
	} `yaml:"user"`
	Rule *struct {
		Type       string `yaml:"type"`
		Value      string `yaml:"value"`
		Multiplier int    `yaml:"multiplier"`
		Currency   string `yaml:"currency"`
	} `yaml:"rule"`
	Purchases []struct {
		Merchant string `yaml:"merchant"`
		Amount   string `yaml:"amount"`
		Currency string `yaml:"currency"`
	} `yaml:"purchases"`
	Invest    bool   `yaml:"invest"`
	Portfolio string `yaml:"portfolio"`
}

// Result summarizes what Apply wrote.
type Result struct {
	UserID    string
	Purchases int
	Lots      int
	Invested  decimal.Decimal
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture from YAML.
func Parse(data []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if f.User.Email == "" {
		return nil, fmt.Errorf("seed file: user.email is required")
	}
	return f, nil
}

// Apply provisions the user, sets the rule, records every purchase and
// optionally sweeps the pending balance.
func Apply(svc *services.Services, f *Fixture) (*Result, error) {
	log := logger.Named("seed")

	user, err := svc.User.EnsureUser(f.User.Email, f.User.Name)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	res := &Result{UserID: user.ID, Invested: decimal.Zero}

	if f.Rule != nil {
		value, err := decimal.NewFromString(f.Rule.Value)
		if err != nil {
			return nil, fmt.Errorf("rule value %q: %w", f.Rule.Value, err)
		}
		multiplier := f.Rule.Multiplier
		if multiplier == 0 {
			multiplier = 1
		}
		if _, err := svc.Rule.SetRule(user.ID, roundup.RuleType(f.Rule.Type), value, multiplier, f.Rule.Currency); err != nil {
			return nil, fmt.Errorf("set rule: %w", err)
		}
	}

	for i, p := range f.Purchases {
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return nil, fmt.Errorf("purchase %d amount %q: %w", i, p.Amount, err)
		}
		if _, err := svc.Purchase.RecordPurchase(user.ID, p.Merchant, amount, p.Currency); err != nil {
			return nil, fmt.Errorf("purchase %d (%s): %w", i, p.Merchant, err)
		}
		res.Purchases++
	}

	if f.Invest {
		inv, err := svc.Invest.Invest(user.ID, f.Portfolio)
		if err != nil {
			return nil, fmt.Errorf("invest: %w", err)
		}
		res.Lots = len(inv.Lots)
		res.Invested = inv.Invested
	}

	log.Infow("seed applied", "user_id", res.UserID, "purchases", res.Purchases, "lots", res.Lots, "invested", res.Invested.String())
	return res, nil
}
