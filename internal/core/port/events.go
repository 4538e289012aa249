package port

import "lifted/internal/core/domain"

// DonationEvents is the hook external collaborators (notification dispatch,
// real-time broadcast) subscribe to. Implementations must not block the
// donation flow; failures are the subscriber's problem.
type DonationEvents interface {
	DonationCompleted(d *domain.Donation, campaignCompleted bool)
	DonationRefunded(d *domain.Donation)
}
