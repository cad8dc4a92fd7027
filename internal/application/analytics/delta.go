package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Delta calcula a variação percentual entre período atual e anterior com
// tratamento explícito de zeros: 0 se ambos zero; 100 se o anterior é zero e
// o atual positivo; razão padrão nos demais casos (2 casas).
func Delta(current, previous decimal.Decimal) decimal.Decimal {
	if current.IsZero() && previous.IsZero() {
		return decimal.Zero
	}
	if previous.IsZero() {
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}
