package port

import (
	"context"
	"time"

	"lifted/internal/core/domain"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      domain.UserRole
}

// ProfileInput carries the self-service editable profile fields. Email and
// role changes are deliberately excluded.
type ProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	AvatarURL *string
}

// AuthUseCase covers account registration and credential verification. Token
// issuance is a transport concern and lives with the HTTP adapter.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// CampaignInput carries campaign creation and update fields.
type CampaignInput struct {
	Institution  string
	Course       string
	YearOfStudy  int
	StudentID    string
	Story        string
	FundingType  domain.FundingType
	AmountNeeded int64
	Urgent       bool
	Deadline     *time.Time
}

// CampaignPage is a paginated listing result.
type CampaignPage struct {
	Campaigns   []domain.Campaign
	Total       int64
	TotalPages  int64
	CurrentPage int
}

// CampaignUseCase covers the campaign catalogue and moderation workflow.
type CampaignUseCase interface {
	Create(ctx context.Context, ownerID string, in CampaignInput) (*domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) (*CampaignPage, error)
	Search(ctx context.Context, query string) ([]domain.Campaign, error)
	Update(ctx context.Context, actor *domain.User, id string, in CampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	AddUpdate(ctx context.Context, actorID, id, title, message string) (*domain.CampaignUpdate, error)
	ListUpdates(ctx context.Context, id string) ([]domain.CampaignUpdate, error)
	Approve(ctx context.Context, adminID, id string) (*domain.Campaign, error)
	Reject(ctx context.Context, adminID, id, reason string) (*domain.Campaign, error)
	Share(ctx context.Context, id string) (int64, error)
}

// DonationInput carries a donation intake request, already authenticated.
type DonationInput struct {
	CampaignID     string
	DonorID        string
	Amount         int64
	PaymentMethod  domain.PaymentMethod
	Message        string
	Anonymous      bool
	ReceiveUpdates bool
	IPAddress      string
	UserAgent      string
}

// DonationReceipt is returned to the caller after a successful intake.
type DonationReceipt struct {
	DonationID    string
	TransactionID string
	NetAmount     int64
	PaymentStatus domain.PaymentStatus
}

// DonorHistory is a donor's donation listing with their completed gross total.
type DonorHistory struct {
	Donations    []domain.Donation
	TotalDonated int64
}

// DonationUseCase covers donation intake, history, refunds and stats.
type DonationUseCase interface {
	Create(ctx context.Context, in DonationInput) (*DonationReceipt, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Donation, error)
	ListFor(ctx context.Context, actor *domain.User) ([]domain.Donation, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error)
	History(ctx context.Context, actor *domain.User, userID string) (*DonorHistory, error)
	Refund(ctx context.Context, actorID, donationID, reason string) (*domain.Donation, error)
	Stats(ctx context.Context, period StatsPeriod) (*DonationStats, error)
}
