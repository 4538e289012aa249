package configs

import "time"

// Donation holds donation policy knobs.
type Donation struct {
	// RefundWindow is how long after creation a completed donation may be
	// refunded by its donor.
	RefundWindow time.Duration `env:"REFUND_WINDOW" envDefault:"168h"`
	// ReverseDonorTotals controls whether a refund also reverses the donor's
	// lifetime totals. Off by default: aggregates track lifetime generosity
	// regardless of later refunds. Pending a product decision.
	ReverseDonorTotals bool `env:"REVERSE_DONOR_TOTALS" envDefault:"false"`
}
