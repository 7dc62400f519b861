// Package seed holds the embedded default categories and sample ledger.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// SampleTransaction is one done entry of the sample ledger.
type SampleTransaction struct {
	Category    string           `yaml:"category"`
	Amount      decimal.Decimal  `yaml:"amount"`
	Currency    domain.Currency  `yaml:"currency"`
	Type        domain.Direction `yaml:"type"`
	Date        string           `yaml:"date"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
}

// Fixtures is the parsed content of fixtures.yaml.
type Fixtures struct {
	Categories   []string            `yaml:"categories"`
	Transactions []SampleTransaction `yaml:"transactions"`
}

// Load parses the embedded fixtures.
func Load() (*Fixtures, error) {
	return Parse(fixturesYAML)
}

// Parse decodes and checks a fixtures document.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	known := make(map[string]bool, len(f.Categories))
	for _, name := range f.Categories {
		known[name] = true
	}
	for i, t := range f.Transactions {
		if !known[t.Category] {
			return nil, fmt.Errorf("seed transaction %d: unknown category %q", i, t.Category)
		}
		if !t.Currency.IsValid() || !t.Type.IsValid() {
			return nil, fmt.Errorf("seed transaction %d: invalid currency or type", i)
		}
		if _, err := domain.ParseDate(t.Date); err != nil {
			return nil, fmt.Errorf("seed transaction %d: %w", i, err)
		}
	}
	return &f, nil
}

// Entry converts the sample into a done ledger entry of categoryID.
func (t SampleTransaction) Entry(categoryID int64) domain.Transaction {
	var desc *string
	if t.Description != "" {
		d := t.Description
		desc = &d
	}
	return domain.Transaction{
		CategoryID:  categoryID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Type:        t.Type,
		Status:      domain.StatusDone,
		Date:        domain.MustParseDate(t.Date),
		Name:        t.Name,
		Description: desc,
	}
}
