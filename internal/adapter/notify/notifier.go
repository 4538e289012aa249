package notify

import (
	"github.com/rs/zerolog"

	"lifted/internal/core/domain"
)

// LogNotifier implements port.DonationEvents by emitting structured log
// events. It stands in for the real-time broadcast and email dispatch the
// platform fronted with Socket.IO; downstream delivery is out of scope here,
// the hook is the contract.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier returns a notifier writing to the given logger.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// DonationCompleted announces a settled donation. Anonymous donations omit
// the donor.
func (n *LogNotifier) DonationCompleted(d *domain.Donation, campaignCompleted bool) {
	evt := n.logger.Info().
		Str("event", "donation.completed").
		Str("campaign_id", d.CampaignID).
		Int64("net_amount", d.NetAmount).
		Bool("campaign_completed", campaignCompleted)
	if !d.Anonymous {
		evt = evt.Str("donor_id", d.DonorID)
	}
	evt.Msg("donation completed")
}

// DonationRefunded announces a reversed donation.
func (n *LogNotifier) DonationRefunded(d *domain.Donation) {
	n.logger.Info().
		Str("event", "donation.refunded").
		Str("campaign_id", d.CampaignID).
		Str("donation_id", d.ID).
		Int64("net_amount", d.NetAmount).
		Msg("donation refunded")
}
