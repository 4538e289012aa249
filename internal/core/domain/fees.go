package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinDonationAmount is the smallest accepted donation, in minor currency units.
const MinDonationAmount int64 = 100

// Fee policy. Percentage fees are rounded half-up to the nearest minor unit
// before the fixed card surcharge is added.
var (
	platformFeeRate    = decimal.NewFromFloat(0.05)
	mobileMoneyFeeRate = decimal.NewFromFloat(0.01)
	cardFeeRate        = decimal.NewFromFloat(0.029)
)

const cardFixedFee int64 = 30

// FeeBreakdown is the result of the fee split for a single donation. All
// values are integer minor currency units.
type FeeBreakdown struct {
	PlatformFee          int64
	PaymentProcessingFee int64
	NetAmount            int64
}

// ComputeFees deterministically splits a gross donation amount into platform
// fee, payment processing fee and net amount. It is pure: the same amount and
// method always yield the same breakdown. An unsupported method is a
// programmer error and returns an error rather than a silent zero fee.
func ComputeFees(amount int64, method PaymentMethod) (FeeBreakdown, error) {
	if amount < MinDonationAmount {
		return FeeBreakdown{}, fmt.Errorf("amount %d below minimum %d", amount, MinDonationAmount)
	}

	gross := decimal.NewFromInt(amount)
	platform := gross.Mul(platformFeeRate).Round(0).IntPart()

	var processing int64
	switch method {
	case MethodMobileMoney:
		processing = gross.Mul(mobileMoneyFeeRate).Round(0).IntPart()
	case MethodCard:
		processing = gross.Mul(cardFeeRate).Round(0).IntPart() + cardFixedFee
	case MethodBankTransfer, MethodPayPal:
		processing = 0
	default:
		return FeeBreakdown{}, fmt.Errorf("unsupported payment method %q", method)
	}

	return FeeBreakdown{
		PlatformFee:          platform,
		PaymentProcessingFee: processing,
		NetAmount:            amount - platform - processing,
	}, nil
}
