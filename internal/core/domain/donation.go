package domain

import "time"

// PaymentMethod enumerates supported payment rails.
type PaymentMethod string

const (
	MethodMobileMoney  PaymentMethod = "mobile-money"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank-transfer"
	MethodPayPal       PaymentMethod = "paypal"
)

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodMobileMoney, MethodCard, MethodBankTransfer, MethodPayPal:
		return true
	}
	return false
}

// PaymentStatus enumerates the donation payment lifecycle. The full
// transition set models an asynchronous gateway even though the current
// intake marks donations completed synchronously.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// paymentTransitions is the allowed state machine:
// pending -> processing|completed|failed, processing -> completed|failed,
// completed -> refunded. Failed and refunded are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentProcessing, PaymentCompleted, PaymentFailed},
	PaymentProcessing: {PaymentCompleted, PaymentFailed},
	PaymentCompleted:  {PaymentRefunded},
}

// CanTransition reports whether a donation may move from one payment status
// to another.
func CanTransition(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Donation records a single contribution to a campaign. The fee fields are a
// frozen policy snapshot taken at creation and are never recomputed.
type Donation struct {
	ID            string
	CampaignID    string
	DonorID       string
	Amount        int64
	Currency      string
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	TransactionID string

	Message        string
	Anonymous      bool
	ReceiveUpdates bool

	PlatformFee          int64
	PaymentProcessingFee int64
	NetAmount            int64

	RefundReason string
	RefundedAt   *time.Time
	RefundedBy   *string

	IPAddress string
	UserAgent string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithinRefundWindow reports whether the donation is still refundable at the
// given instant.
func (d Donation) WithinRefundWindow(now time.Time, window time.Duration) bool {
	return now.Sub(d.CreatedAt) <= window
}
