package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lifted/internal/config/configs"
	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

// DonationUseCase implements port.DonationUseCase. It owns the donation
// intake flow: validation, fee split, ledger application and the best-effort
// donor aggregate update.
type DonationUseCase struct {
	donations port.DonationRepository
	campaigns port.CampaignRepository
	users     port.UserRepository
	events    port.DonationEvents
	policy    configs.Donation
	logger    zerolog.Logger

	now func() time.Time
}

// NewDonationUseCase creates a new usecase with the provided collaborators.
func NewDonationUseCase(
	donations port.DonationRepository,
	campaigns port.CampaignRepository,
	users port.UserRepository,
	events port.DonationEvents,
	policy configs.Donation,
	logger zerolog.Logger,
) *DonationUseCase {
	return &DonationUseCase{
		donations: donations,
		campaigns: campaigns,
		users:     users,
		events:    events,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates and records a donation. Fees are computed once and frozen
// into the record; the net amount is applied to the campaign ledger in the
// same repository transaction as the insert. There is no payment gateway in
// the current scope, so the donation is persisted already completed; the
// status enum still models the asynchronous pending->processing->completed
// transitions for a future gateway callback.
func (u *DonationUseCase) Create(ctx context.Context, in port.DonationInput) (*port.DonationReceipt, error) {
	if in.CampaignID == "" || in.DonorID == "" {
		return nil, fmt.Errorf("%w: campaign and donor are required", port.ErrInvalidInput)
	}
	if in.Amount < domain.MinDonationAmount {
		return nil, fmt.Errorf("%w: minimum donation is %d", port.ErrInvalidInput, domain.MinDonationAmount)
	}
	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: unsupported payment method %q", port.ErrInvalidInput, in.PaymentMethod)
	}
	if utf8.RuneCountInString(in.Message) > 500 {
		return nil, fmt.Errorf("%w: message exceeds 500 characters", port.ErrInvalidInput)
	}

	campaign, err := u.campaigns.GetByID(ctx, in.CampaignID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, port.ErrCampaignNotEligible
		}
		return nil, err
	}
	if !campaign.AcceptsDonations() {
		return nil, port.ErrCampaignNotEligible
	}

	fees, err := domain.ComputeFees(in.Amount, in.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidInput, err)
	}

	donation := &domain.Donation{
		ID:                   uuid.NewString(),
		CampaignID:           in.CampaignID,
		DonorID:              in.DonorID,
		Amount:               in.Amount,
		Currency:             "KES",
		PaymentMethod:        in.PaymentMethod,
		PaymentStatus:        domain.PaymentCompleted,
		TransactionID:        newTransactionID(),
		Message:              strings.TrimSpace(in.Message),
		Anonymous:            in.Anonymous,
		ReceiveUpdates:       in.ReceiveUpdates,
		PlatformFee:          fees.PlatformFee,
		PaymentProcessingFee: fees.PaymentProcessingFee,
		NetAmount:            fees.NetAmount,
		IPAddress:            in.IPAddress,
		UserAgent:            in.UserAgent,
	}

	campaignCompleted, err := u.donations.CreateCompleted(ctx, donation)
	if err != nil {
		return nil, err
	}

	// Donor aggregates are a secondary update: a failure here must not roll
	// back the donation, but it must be visible in the logs.
	if err := u.users.IncrementDonationTotals(ctx, in.DonorID, in.Amount); err != nil {
		u.logger.Error().Err(err).
			Str("donor_id", in.DonorID).
			Str("donation_id", donation.ID).
			Msg("failed to update donor aggregates")
	}

	if u.events != nil {
		u.events.DonationCompleted(donation, campaignCompleted)
	}

	return &port.DonationReceipt{
		DonationID:    donation.ID,
		TransactionID: donation.TransactionID,
		NetAmount:     donation.NetAmount,
		PaymentStatus: donation.PaymentStatus,
	}, nil
}

// Get returns a donation to its donor or an admin.
func (u *DonationUseCase) Get(ctx context.Context, actor *domain.User, id string) (*domain.Donation, error) {
	donation, err := u.donations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation.DonorID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, port.ErrForbidden
	}
	return donation, nil
}

// ListFor returns the actor's donations; admins see all donations.
func (u *DonationUseCase) ListFor(ctx context.Context, actor *domain.User) ([]domain.Donation, error) {
	if actor.Role == domain.RoleAdmin {
		return u.donations.ListAll(ctx)
	}
	return u.donations.ListByDonor(ctx, actor.ID)
}

// ListByCampaign returns the latest completed donations for public display.
// Donor identity of anonymous donations is blanked before it leaves the
// usecase.
func (u *DonationUseCase) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	items, err := u.donations.ListCompletedByCampaign(ctx, campaignID, 20)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Anonymous {
			items[i].DonorID = ""
		}
	}
	return items, nil
}

// History returns a user's donation history with their completed gross total.
func (u *DonationUseCase) History(ctx context.Context, actor *domain.User, userID string) (*port.DonorHistory, error) {
	if userID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, port.ErrForbidden
	}
	items, err := u.donations.ListByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, d := range items {
		if d.PaymentStatus == domain.PaymentCompleted {
			total += d.Amount
		}
	}
	return &port.DonorHistory{Donations: items, TotalDonated: total}, nil
}

// Refund reverses a completed donation within the refund window. Only the
// original donor may request it. Reversal of the donor's lifetime aggregates
// is policy-gated and off by default.
func (u *DonationUseCase) Refund(ctx context.Context, actorID, donationID, reason string) (*domain.Donation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: refund reason is required", port.ErrInvalidInput)
	}

	donation, err := u.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation.DonorID != actorID {
		return nil, port.ErrRefundUnauthorized
	}
	if donation.PaymentStatus == domain.PaymentRefunded {
		return nil, port.ErrAlreadyRefunded
	}
	if donation.PaymentStatus != domain.PaymentCompleted {
		return nil, fmt.Errorf("%w: only completed donations can be refunded", port.ErrInvalidInput)
	}
	now := u.now()
	if !donation.WithinRefundWindow(now, u.policy.RefundWindow) {
		return nil, port.ErrRefundWindowExpired
	}

	if err := u.donations.Refund(ctx, donationID, actorID, reason, now); err != nil {
		return nil, err
	}

	if u.policy.ReverseDonorTotals {
		if err := u.users.DecrementDonationTotals(ctx, donation.DonorID, donation.Amount); err != nil {
			u.logger.Error().Err(err).
				Str("donor_id", donation.DonorID).
				Str("donation_id", donation.ID).
				Msg("failed to reverse donor aggregates")
		}
	}

	// The refund is committed at this point. The event and the response are
	// built from data already in hand, so a failed re-read cannot swallow the
	// hook.
	refunded := *donation
	refunded.PaymentStatus = domain.PaymentRefunded
	refunded.RefundReason = reason
	refunded.RefundedAt = &now
	refunded.RefundedBy = &actorID
	refunded.UpdatedAt = now
	if u.events != nil {
		u.events.DonationRefunded(&refunded)
	}
	return &refunded, nil
}

// Stats aggregates completed donations for admins.
func (u *DonationUseCase) Stats(ctx context.Context, period port.StatsPeriod) (*port.DonationStats, error) {
	return u.donations.Stats(ctx, period)
}

// newTransactionID builds a collision-resistant transaction reference. A
// UUID replaces the old timestamp+random scheme, which could collide under
// coarse clocks.
func newTransactionID() string {
	return "DON-" + strings.ToUpper(uuid.NewString())
}
