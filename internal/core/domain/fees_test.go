package domain

import "testing"

// TestComputeFees verifies the fee split per payment method, including the
// half-up rounding of percentage fees.
func TestComputeFees(t *testing.T) {
	cases := []struct {
		name       string
		amount     int64
		method     PaymentMethod
		platform   int64
		processing int64
		net        int64
	}{
		{"card with fixed surcharge", 1000, MethodCard, 50, 59, 891},
		{"mobile money", 1000, MethodMobileMoney, 50, 10, 940},
		{"bank transfer has no processing fee", 1000, MethodBankTransfer, 50, 0, 950},
		{"paypal has no processing fee", 1000, MethodPayPal, 50, 0, 950},
		{"half-up rounding", 250, MethodMobileMoney, 13, 3, 234}, // 12.5 -> 13, 2.5 -> 3
		{"minimum amount", 100, MethodCard, 5, 33, 62},           // 2.9 -> 3, +30
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fees, err := ComputeFees(tc.amount, tc.method)
			if err != nil {
				t.Fatalf("ComputeFees error: %v", err)
			}
			if fees.PlatformFee != tc.platform {
				t.Fatalf("platform fee: got %d, want %d", fees.PlatformFee, tc.platform)
			}
			if fees.PaymentProcessingFee != tc.processing {
				t.Fatalf("processing fee: got %d, want %d", fees.PaymentProcessingFee, tc.processing)
			}
			if fees.NetAmount != tc.net {
				t.Fatalf("net amount: got %d, want %d", fees.NetAmount, tc.net)
			}
			if fees.PlatformFee+fees.PaymentProcessingFee+fees.NetAmount != tc.amount {
				t.Fatalf("fee split does not sum back to the gross amount")
			}
		})
	}
}

func TestComputeFeesRejectsBadInput(t *testing.T) {
	if _, err := ComputeFees(99, MethodCard); err == nil {
		t.Fatal("expected error below minimum amount")
	}
	if _, err := ComputeFees(1000, PaymentMethod("cheque")); err == nil {
		t.Fatal("expected error for unsupported method")
	}
}

// TestComputeFeesNetPositive sweeps the lower amounts to confirm the net
// amount stays positive for every supported method at or above the minimum.
func TestComputeFeesNetPositive(t *testing.T) {
	methods := []PaymentMethod{MethodMobileMoney, MethodCard, MethodBankTransfer, MethodPayPal}
	for amount := MinDonationAmount; amount <= 2000; amount++ {
		for _, m := range methods {
			fees, err := ComputeFees(amount, m)
			if err != nil {
				t.Fatalf("ComputeFees(%d, %s) error: %v", amount, m, err)
			}
			if fees.NetAmount <= 0 {
				t.Fatalf("ComputeFees(%d, %s): non-positive net %d", amount, m, fees.NetAmount)
			}
		}
	}
}

// TestComputeFeesDeterministic ensures the same input always yields the same
// breakdown: fee fields are frozen at creation and must be reproducible.
func TestComputeFeesDeterministic(t *testing.T) {
	first, err := ComputeFees(12345, MethodCard)
	if err != nil {
		t.Fatalf("ComputeFees error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, _ := ComputeFees(12345, MethodCard)
		if again != first {
			t.Fatalf("breakdown changed between calls: %+v vs %+v", again, first)
		}
	}
}
