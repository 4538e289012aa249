package port

import (
	"context"
	"time"

	"lifted/internal/core/domain"
)

// UserRepository is the outbound port for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// IncrementDonationTotals atomically adds the gross amount to the donor's
	// lifetime totals and bumps the donation count.
	IncrementDonationTotals(ctx context.Context, id string, grossAmount int64) error
	// DecrementDonationTotals reverses IncrementDonationTotals. Only called
	// when refund reversal of donor aggregates is enabled.
	DecrementDonationTotals(ctx context.Context, id string, grossAmount int64) error
}

// CampaignFilter narrows campaign listings. Zero values mean "no filter".
type CampaignFilter struct {
	Urgent      *bool
	FundingType *domain.FundingType
	Page        int
	Limit       int
}

// CampaignRepository is the outbound port for campaign persistence.
// Implementations must apply ledger mutations atomically; the naive
// read-then-save pattern loses concurrent updates.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, int64, error)
	Search(ctx context.Context, query string) ([]domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	SoftDelete(ctx context.Context, id string) error
	SetModeration(ctx context.Context, id string, status domain.CampaignStatus, verifierID, notes string) error
	AddUpdate(ctx context.Context, u *domain.CampaignUpdate) error
	ListUpdates(ctx context.Context, campaignID string) ([]domain.CampaignUpdate, error)
	IncrementViews(ctx context.Context, id string) error
	// IncrementShares bumps the share counter and returns the new count.
	IncrementShares(ctx context.Context, id string) (int64, error)
}

// StatsPeriod bounds a stats query. A nil CampaignID aggregates across all
// campaigns.
type StatsPeriod struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}

// DonorStat is one row of the top-donor leaderboard.
type DonorStat struct {
	DonorID string
	Total   int64
	Count   int64
}

// DonationStats aggregates completed donations.
type DonationStats struct {
	TotalDonations  int64
	TotalAmount     int64
	AverageDonation int64
	TopDonors       []DonorStat
}

// DonationRepository is the outbound port for donation persistence and the
// campaign ledger.
type DonationRepository interface {
	// CreateCompleted persists the donation and applies its net amount to the
	// campaign ledger (amount_raised, donor_count, completion flip) in a
	// single transaction using atomic increments. It returns whether this
	// donation completed the campaign. If the campaign stopped accepting
	// donations between the eligibility check and the write, nothing is
	// persisted and ErrCampaignNotEligible is returned.
	CreateCompleted(ctx context.Context, d *domain.Donation) (campaignCompleted bool, err error)

	// Refund marks a completed donation refunded and reverses its ledger
	// contribution in a single transaction. ErrAlreadyRefunded is returned
	// when the donation is not in completed state at write time.
	Refund(ctx context.Context, donationID, refundedBy, reason string, at time.Time) error

	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error)
	ListAll(ctx context.Context) ([]domain.Donation, error)
	// ListCompletedByCampaign returns the latest completed donations for a
	// campaign, newest first, capped at limit.
	ListCompletedByCampaign(ctx context.Context, campaignID string, limit int) ([]domain.Donation, error)
	Stats(ctx context.Context, period StatsPeriod) (*DonationStats, error)
}
