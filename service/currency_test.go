package service

import (
	"testing"

	"budget/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencies(t *testing.T) {
	list := Currencies()
	require.Len(t, list, 5)

	// 基准币种在首位且汇率为 1
	assert.Equal(t, "USD", list[0].Code)
	assert.Equal(t, "$", list[0].Symbol)
	assert.Equal(t, 1.0, list[0].Factor)

	codes := make([]string, 0, len(list))
	for _, c := range list {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"USD", "EUR", "INR", "JPY", "GBP"}, codes)
}

func TestLookupCurrency(t *testing.T) {
	// 空代码回落到基准币种
	c, err := LookupCurrency("")
	require.NoError(t, err)
	assert.Equal(t, BaseCurrency, c.Code)

	c, err = LookupCurrency("INR")
	require.NoError(t, err)
	assert.Equal(t, "₹", c.Symbol)
	assert.Equal(t, 83.0, c.Factor)

	// 未知代码
	_, err = LookupCurrency("BTC")
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
}

func TestConversionRoundTrip(t *testing.T) {
	// 换算到任一币种再换回，误差不超过一分
	amounts := []float64{0.01, 1, 99.99, 500, 123456.78}
	for _, c := range Currencies() {
		for _, amount := range amounts {
			display := ToDisplay(amount, c)
			back := ToCanonical(display, c)
			assert.InDelta(t, amount, back, 0.01, "currency=%s amount=%v", c.Code, amount)
		}
	}
}

func TestToCanonicalRounds(t *testing.T) {
	eur, err := LookupCurrency("EUR")
	require.NoError(t, err)

	// 92 EUR / 0.92 = 100 USD，落库值已取整到 0.01
	canonical := ToCanonical(92, eur)
	assert.Equal(t, 100.0, canonical)

	// 除不尽的输入同样落在两位小数上
	canonical = ToCanonical(10, eur)
	assert.Equal(t, 10.87, canonical)
}

func TestRoundCent(t *testing.T) {
	assert.Equal(t, 1.23, RoundCent(1.234))
	assert.Equal(t, 1.24, RoundCent(1.235000001))
	assert.Equal(t, -1.23, RoundCent(-1.234))
	assert.Equal(t, 0.0, RoundCent(0))
}

func TestFormat(t *testing.T) {
	usd, _ := LookupCurrency("USD")
	inr, _ := LookupCurrency("INR")

	assert.Equal(t, "$12.00", Format(12, usd))
	assert.Equal(t, "-₹30.50", Format(-30.5, inr))
}

func TestFormatSigned(t *testing.T) {
	usd, _ := LookupCurrency("USD")

	// 结余展示：非负加 "+"，负数加 "-"
	assert.Equal(t, "+$379.50", FormatSigned(379.5, usd))
	assert.Equal(t, "+$0.00", FormatSigned(0, usd))
	assert.Equal(t, "-$20.00", FormatSigned(-20, usd))
}
