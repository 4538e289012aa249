package domain

import (
	"math"
	"time"
)

// CampaignStatus enumerates moderation and funding states of a campaign.
type CampaignStatus string

const (
	CampaignPending   CampaignStatus = "pending"
	CampaignApproved  CampaignStatus = "approved"
	CampaignRejected  CampaignStatus = "rejected"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// FundingType enumerates what a campaign raises money for.
type FundingType string

const (
	FundingTuition       FundingType = "tuition"
	FundingExam          FundingType = "exam"
	FundingBooks         FundingType = "books"
	FundingAccommodation FundingType = "accommodation"
	FundingMedical       FundingType = "medical"
	FundingResearch      FundingType = "research"
	FundingOther         FundingType = "other"
)

// ValidFundingType reports whether t is a known funding type.
func ValidFundingType(t FundingType) bool {
	switch t {
	case FundingTuition, FundingExam, FundingBooks, FundingAccommodation,
		FundingMedical, FundingResearch, FundingOther:
		return true
	}
	return false
}

// MinAmountNeeded is the smallest fundable goal, in minor currency units.
const MinAmountNeeded int64 = 1000

// Campaign is a student's funding request. AmountRaised accumulates the net
// amount of completed donations and is only ever mutated through the
// repository's atomic ledger operations.
type Campaign struct {
	ID          string
	OwnerID     string
	Institution string
	Course      string
	YearOfStudy int
	StudentID   string
	Story       string
	FundingType FundingType

	AmountNeeded int64
	AmountRaised int64
	DonorCount   int64

	Status      CampaignStatus
	Urgent      bool
	Deadline    *time.Time
	AdminNotes  string
	VerifiedBy  *string
	VerifiedAt  *time.Time
	CompletedAt *time.Time

	Views  int64
	Shares int64

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsDonations reports whether the campaign may receive donations.
func (c Campaign) AcceptsDonations() bool {
	return c.IsActive && c.Status == CampaignApproved
}

// Progress returns the funding percentage, capped at 100.
func (c Campaign) Progress() int {
	if c.AmountNeeded <= 0 {
		return 0
	}
	pct := int(math.Round(float64(c.AmountRaised) / float64(c.AmountNeeded) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Remaining returns the amount still needed, never negative.
func (c Campaign) Remaining() int64 {
	if rem := c.AmountNeeded - c.AmountRaised; rem > 0 {
		return rem
	}
	return 0
}

// DaysLeft returns the whole days until the deadline, or nil when no deadline
// is set. Past deadlines report zero.
func (c Campaign) DaysLeft(now time.Time) *int {
	if c.Deadline == nil {
		return nil
	}
	days := int(math.Ceil(c.Deadline.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return &days
}

// CampaignUpdate is a progress note the campaign owner shares with donors.
type CampaignUpdate struct {
	ID         string
	CampaignID string
	Title      string
	Message    string
	CreatedAt  time.Time
}
