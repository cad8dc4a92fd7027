package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pedeja/delivery-api/internal/application/analytics"
)

// Delta define a variação percentual mostrada ao lado de cada KPI.
// Os casos de zero são contrato de interface: divisão por zero nunca ocorre.
func TestDelta(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     string
	}{
		{"ambos zero", 0, 0, "0"},
		{"anterior zero e atual positivo", 42, 0, "100"},
		{"dobrou", 10, 5, "100"},
		{"caiu pela metade", 5, 10, "-50"},
		{"zerou", 0, 8, "-100"},
		{"fracionário arredonda a duas casas", 110, 33, "233.33"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analytics.Delta(decimal.NewFromFloat(tc.current), decimal.NewFromFloat(tc.previous))
			assert.Equal(t, tc.want, got.String())
		})
	}
}
