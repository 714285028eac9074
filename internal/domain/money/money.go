// Package money implements the monetary arithmetic for Dutch invoices:
// 2-decimal rounding, per-line net/VAT/gross and invoice-level aggregates.
// All amounts are EUR; every value is rounded at the point where it is first
// produced and never re-derived from an aggregate.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/factuurpro/factuur-api/internal/domain"
)

// Dutch VAT rates (2025). Zero covers exports and reverse-charge B2B.
var (
	VATRateStandard = decimal.NewFromInt(21)
	VATRateReduced  = decimal.NewFromInt(9)
	VATRateZero     = decimal.Zero
)

var oneHundred = decimal.NewFromInt(100)

// Round2 rounds to 2 decimal places, half away from zero for positive and
// negative amounts alike (credit notes round symmetrically).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidVATRate reports whether rate is one of the allowed Dutch rates (0, 9, 21).
func ValidVATRate(rate decimal.Decimal) bool {
	return rate.Equal(VATRateZero) || rate.Equal(VATRateReduced) || rate.Equal(VATRateStandard)
}

// EffectiveVATRate resolves the rate actually charged on a line. Under the
// reverse-charge scheme the seller charges 0% regardless of the nominal rate.
func EffectiveVATRate(nominal decimal.Decimal, reverseCharge bool) decimal.Decimal {
	if reverseCharge {
		return VATRateZero
	}
	return nominal
}

// LineTotals holds the rounded amounts of a single invoice line.
type LineTotals struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
}

// InvoiceTotals holds the invoice-level aggregates.
type InvoiceTotals struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
}

// CalculateLineTotals computes net, VAT and gross for one line.
// Net is rounded first; VAT is computed on the rounded net; gross is the exact
// sum of the two rounded values, so gross == net + vat holds to the cent.
func CalculateLineTotals(quantity, unitPrice, vatRate decimal.Decimal) LineTotals {
	net := Round2(quantity.Mul(unitPrice))
	vat := Round2(net.Mul(vatRate).Div(oneHundred))
	gross := Round2(net.Add(vat))
	return LineTotals{Net: net, VAT: vat, Gross: gross}
}

// CalculateInvoiceTotals sums per-line totals. Each summand is already a
// 2-decimal value; the final Round2 guards the summation itself.
// An empty slice yields 0.00 across the board.
func CalculateInvoiceTotals(lines []LineTotals) InvoiceTotals {
	var net, vat, gross decimal.Decimal
	for _, l := range lines {
		net = net.Add(l.Net)
		vat = vat.Add(l.VAT)
		gross = gross.Add(l.Gross)
	}
	return InvoiceTotals{
		Net:   Round2(net),
		VAT:   Round2(vat),
		Gross: Round2(gross),
	}
}

// Breakdown is the result of splitting a single amount into net, VAT and gross.
type Breakdown struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
}

// NetFromGross splits a VAT-inclusive amount (e.g. a store receipt) into its
// net and VAT parts: net = gross / (1 + rate/100), vat = gross - net.
func NetFromGross(gross, vatRate decimal.Decimal) (Breakdown, error) {
	if gross.IsNegative() {
		return Breakdown{}, fmt.Errorf("%w: gross amount must not be negative", domain.ErrInvalidInput)
	}
	if !ValidVATRate(vatRate) {
		return Breakdown{}, fmt.Errorf("%w: %s", domain.ErrInvalidVATRate, vatRate.String())
	}
	if vatRate.IsZero() {
		g := Round2(gross)
		return Breakdown{Net: g, VAT: decimal.Zero.Round(2), Gross: g}, nil
	}
	divisor := decimal.NewFromInt(1).Add(vatRate.Div(oneHundred))
	net := Round2(gross.DivRound(divisor, 8))
	vat := Round2(gross.Sub(net))
	return Breakdown{Net: net, VAT: vat, Gross: Round2(gross)}, nil
}

// GrossFromNet adds VAT on top of a net amount: vat = net * rate/100.
func GrossFromNet(net, vatRate decimal.Decimal) (Breakdown, error) {
	if net.IsNegative() {
		return Breakdown{}, fmt.Errorf("%w: net amount must not be negative", domain.ErrInvalidInput)
	}
	if !ValidVATRate(vatRate) {
		return Breakdown{}, fmt.Errorf("%w: %s", domain.ErrInvalidVATRate, vatRate.String())
	}
	n := Round2(net)
	vat := Round2(n.Mul(vatRate).Div(oneHundred))
	return Breakdown{Net: n, VAT: vat, Gross: Round2(n.Add(vat))}, nil
}
