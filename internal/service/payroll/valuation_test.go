package payroll

import (
	"testing"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func dp(value int64) *decimal.Decimal {
	v := decimal.NewFromInt(value)
	return &v
}

func TestValuateFixedAmount(t *testing.T) {
	def := component.Component{
		CalculationMethod: component.CalculationFixedAmount,
		Value:             d(1500),
	}

	amount := ValuateComponent(def, d(30000), d(30000))
	assert.True(t, amount.Equal(d(1500)), "got %s", amount)
}

func TestValuatePercentageOfBasic(t *testing.T) {
	def := component.Component{
		CalculationMethod: component.CalculationPercentageOfBasic,
		Value:             d(10),
	}

	amount := ValuateComponent(def, d(30000), d(45000))
	assert.True(t, amount.Equal(d(3000)), "got %s", amount)
}

func TestValuatePercentageOfGross(t *testing.T) {
	def := component.Component{
		CalculationMethod: component.CalculationPercentageOfGross,
		Value:             d(5),
	}

	// 5% of the running gross, not of basic
	amount := ValuateComponent(def, d(30000), d(34000))
	assert.True(t, amount.Equal(d(1700)), "got %s", amount)
}

func TestValuateThresholdGatesAllMethods(t *testing.T) {
	methods := []component.CalculationMethod{
		component.CalculationFixedAmount,
		component.CalculationPercentageOfBasic,
		component.CalculationPercentageOfGross,
	}

	for _, method := range methods {
		def := component.Component{
			CalculationMethod:      method,
			Value:                  d(10),
			MinimumSalaryThreshold: dp(20000),
		}
		amount := ValuateComponent(def, d(15000), d(15000))
		assert.True(t, amount.IsZero(), "%s: got %s", method, amount)
	}
}

func TestValuateThresholdBoundary(t *testing.T) {
	def := component.Component{
		CalculationMethod:      component.CalculationFixedAmount,
		Value:                  d(500),
		MinimumSalaryThreshold: dp(20000),
	}

	// Exactly at the threshold the component applies
	amount := ValuateComponent(def, d(20000), d(20000))
	assert.True(t, amount.Equal(d(500)), "got %s", amount)
}

func TestValuateCapClamps(t *testing.T) {
	def := component.Component{
		CalculationMethod: component.CalculationPercentageOfBasic,
		Value:             d(20),
		MaximumCap:        dp(4000),
	}

	amount := ValuateComponent(def, d(50000), d(50000))
	assert.True(t, amount.Equal(d(4000)), "got %s", amount)
}

func TestValuateCapNotHit(t *testing.T) {
	def := component.Component{
		CalculationMethod: component.CalculationPercentageOfBasic,
		Value:             d(10),
		MaximumCap:        dp(4000),
	}

	amount := ValuateComponent(def, d(30000), d(30000))
	assert.True(t, amount.Equal(d(3000)), "got %s", amount)
}

func TestValuateUnknownMethod(t *testing.T) {
	def := component.Component{
		CalculationMethod: component.CalculationMethod("bogus"),
		Value:             d(10),
	}

	amount := ValuateComponent(def, d(30000), d(30000))
	assert.True(t, amount.IsZero())
}

func TestValuateGrossOrderingMatters(t *testing.T) {
	hra := component.Component{
		Type:              component.ComponentTypeAllowance,
		CalculationMethod: component.CalculationPercentageOfBasic,
		Value:             d(10),
	}
	tax := component.Component{
		Type:              component.ComponentTypeDeduction,
		CalculationMethod: component.CalculationPercentageOfGross,
		Value:             d(5),
	}

	basic := d(30000)

	// Tax valued after HRA sees the allowance in its base
	hraAmount := ValuateComponent(hra, basic, basic)
	taxAfter := ValuateComponent(tax, basic, basic.Add(hraAmount))
	taxBefore := ValuateComponent(tax, basic, basic)

	assert.True(t, taxAfter.Equal(d(1650)), "got %s", taxAfter)
	assert.True(t, taxBefore.Equal(d(1500)), "got %s", taxBefore)
	assert.False(t, taxAfter.Equal(taxBefore))
}
