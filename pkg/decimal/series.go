package decimal

import (
	"github.com/shopspring/decimal"
)

// CompoundSeries scales base by the cumulative product of (1 + rates[k]) for
// k up to and including each index: entry t equals
// base * (1+rates[0]) * ... * (1+rates[t]).
func CompoundSeries(base decimal.Decimal, rates []decimal.Decimal) []decimal.Decimal {
	one := decimal.NewFromInt(1)
	series := make([]decimal.Decimal, len(rates))
	value := base
	for t, rate := range rates {
		value = value.Mul(one.Add(rate))
		series[t] = value
	}
	return series
}

// Repeat returns a sequence of n copies of value.
func Repeat(value decimal.Decimal, n int) []decimal.Decimal {
	series := make([]decimal.Decimal, n)
	for i := range series {
		series[i] = value
	}
	return series
}
