package invoicing

import (
	"github.com/AKM-dv/servicemate/internal/pkg/env"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
)

// Pricing is the complete monetary breakdown of one invoice.
type Pricing struct {
	PlanPrice        money.Money
	SetupFeeAmount   money.Money
	SetupFeeDiscount money.Money
	SetupFeeNet      money.Money
	Subtotal         money.Money
	Tax              money.Money
	Total            money.Money
}

// Price applies the fixed business rule: the requested discount is clamped
// to [0, setupFeeAmount], the net setup fee joins the recurring plan price,
// tax is a fixed zero and the total equals the subtotal. All arithmetic is
// exact decimal.
func Price(planPrice, setupFeeAmount, requestedDiscount money.Money) Pricing {
	discount := requestedDiscount
	if discount.IsNegative() {
		discount = money.Zero
	}
	if discount.GreaterThan(setupFeeAmount) {
		discount = setupFeeAmount
	}

	net := setupFeeAmount.Sub(discount)
	subtotal := planPrice.Add(net)

	return Pricing{
		PlanPrice:        planPrice,
		SetupFeeAmount:   setupFeeAmount,
		SetupFeeDiscount: discount,
		SetupFeeNet:      net,
		Subtotal:         subtotal,
		Tax:              money.Zero,
		Total:            subtotal,
	}
}

// SetupFeeFromEnv reads the fixed one-time setup fee, configured once at
// process start.
func SetupFeeFromEnv() money.Money {
	m, err := money.FromString(env.GetEnv("SETUP_FEE_AMOUNT", "3000"))
	if err != nil {
		return money.MustFromString("3000")
	}
	return m
}
