package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoneyHalfUp(t *testing.T) {
	cases := map[string]string{
		"2.344":  "2.34",
		"2.345":  "2.35",
		"2.346":  "2.35",
		"10":     "10",
		"0.005":  "0.01",
		"99.999": "100",
	}
	for in, want := range cases {
		got := RoundMoney(decimal.RequireFromString(in))
		assert.True(t, decimal.RequireFromString(want).Equal(got), "RoundMoney(%s) = %s, want %s", in, got, want)
	}
}

func TestRoundMoneyIdempotent(t *testing.T) {
	amount := RoundMoney(decimal.RequireFromString("47.505"))
	assert.True(t, amount.Equal(RoundMoney(amount)))
}

func TestDecimalAdditionHasNoBinaryDrift(t *testing.T) {
	sum := RoundMoney(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2")))
	assert.True(t, decimal.RequireFromString("0.3").Equal(sum), "got %s", sum)
}

func TestMoneyToleranceIsOneCent(t *testing.T) {
	assert.True(t, decimal.RequireFromString("0.01").Equal(MoneyTolerance))
}
