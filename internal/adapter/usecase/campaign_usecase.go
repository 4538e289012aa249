package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase: the public catalogue,
// owner edits and the admin moderation workflow.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(campaigns port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns}
}

func validateCampaignInput(in port.CampaignInput) error {
	switch {
	case strings.TrimSpace(in.Institution) == "":
		return fmt.Errorf("%w: institution is required", port.ErrInvalidInput)
	case strings.TrimSpace(in.Course) == "":
		return fmt.Errorf("%w: course is required", port.ErrInvalidInput)
	case in.YearOfStudy < 1 || in.YearOfStudy > 10:
		return fmt.Errorf("%w: year of study must be between 1 and 10", port.ErrInvalidInput)
	case in.AmountNeeded < domain.MinAmountNeeded:
		return fmt.Errorf("%w: amount needed must be at least %d", port.ErrInvalidInput, domain.MinAmountNeeded)
	case !domain.ValidFundingType(in.FundingType):
		return fmt.Errorf("%w: invalid funding type %q", port.ErrInvalidInput, in.FundingType)
	case len(in.Story) < 100 || len(in.Story) > 2000:
		return fmt.Errorf("%w: story must be between 100 and 2000 characters", port.ErrInvalidInput)
	}
	return nil
}

// Create opens a new campaign in pending status, one active campaign per
// owner.
func (u *CampaignUseCase) Create(ctx context.Context, ownerID string, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateCampaignInput(in); err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Institution:  strings.TrimSpace(in.Institution),
		Course:       strings.TrimSpace(in.Course),
		YearOfStudy:  in.YearOfStudy,
		StudentID:    strings.TrimSpace(in.StudentID),
		Story:        in.Story,
		FundingType:  in.FundingType,
		AmountNeeded: in.AmountNeeded,
		Status:       domain.CampaignPending,
		Urgent:       in.Urgent,
		Deadline:     in.Deadline,
		IsActive:     true,
	}
	if err := u.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Get returns a campaign and bumps its view counter. The counter update is
// best-effort.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = u.campaigns.IncrementViews(ctx, id)
	return campaign, nil
}

// GetByOwner returns the owner's active campaign.
func (u *CampaignUseCase) GetByOwner(ctx context.Context, ownerID string) (*domain.Campaign, error) {
	return u.campaigns.GetByOwner(ctx, ownerID)
}

// Share records a social share and returns the new counter. The repository
// update itself reports unknown campaigns, no separate existence read.
func (u *CampaignUseCase) Share(ctx context.Context, id string) (int64, error) {
	return u.campaigns.IncrementShares(ctx, id)
}

// List returns the public campaign catalogue page.
func (u *CampaignUseCase) List(ctx context.Context, filter port.CampaignFilter) (*port.CampaignPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}
	items, total, err := u.campaigns.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}
	return &port.CampaignPage{
		Campaigns:   items,
		Total:       total,
		TotalPages:  pages,
		CurrentPage: filter.Page,
	}, nil
}

// Search runs a basic text match over the approved catalogue.
func (u *CampaignUseCase) Search(ctx context.Context, query string) ([]domain.Campaign, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", port.ErrInvalidInput)
	}
	return u.campaigns.Search(ctx, query)
}

// Update edits a campaign. Owners and admins only. Once a campaign is
// approved, the fields donors relied on when giving (goal, funding type,
// institution, course) are frozen.
func (u *CampaignUseCase) Update(ctx context.Context, actor *domain.User, id string, in port.CampaignInput) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, port.ErrForbidden
	}

	if campaign.Status == domain.CampaignApproved || campaign.Status == domain.CampaignCompleted {
		in.AmountNeeded = campaign.AmountNeeded
		in.FundingType = campaign.FundingType
		in.Institution = campaign.Institution
		in.Course = campaign.Course
	}
	if err := validateCampaignInput(in); err != nil {
		return nil, err
	}

	campaign.Institution = strings.TrimSpace(in.Institution)
	campaign.Course = strings.TrimSpace(in.Course)
	campaign.YearOfStudy = in.YearOfStudy
	campaign.StudentID = strings.TrimSpace(in.StudentID)
	campaign.Story = in.Story
	campaign.FundingType = in.FundingType
	campaign.AmountNeeded = in.AmountNeeded
	campaign.Urgent = in.Urgent
	campaign.Deadline = in.Deadline

	if err := u.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete soft-deletes a campaign. Owners and admins only.
func (u *CampaignUseCase) Delete(ctx context.Context, actor *domain.User, id string) error {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return port.ErrForbidden
	}
	return u.campaigns.SoftDelete(ctx, id)
}

// AddUpdate appends a progress update. Owner only.
func (u *CampaignUseCase) AddUpdate(ctx context.Context, actorID, id, title, message string) (*domain.CampaignUpdate, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, fmt.Errorf("%w: title and message are required", port.ErrInvalidInput)
	}

	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.OwnerID != actorID {
		return nil, port.ErrForbidden
	}

	update := &domain.CampaignUpdate{
		ID:         uuid.NewString(),
		CampaignID: id,
		Title:      title,
		Message:    message,
	}
	if err := u.campaigns.AddUpdate(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

// ListUpdates returns a campaign's progress updates, newest first.
func (u *CampaignUseCase) ListUpdates(ctx context.Context, id string) ([]domain.CampaignUpdate, error) {
	if _, err := u.campaigns.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return u.campaigns.ListUpdates(ctx, id)
}

// Approve moves a pending campaign to approved and stamps the verifier.
func (u *CampaignUseCase) Approve(ctx context.Context, adminID, id string) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignPending {
		return nil, fmt.Errorf("%w: only pending campaigns can be approved", port.ErrInvalidInput)
	}
	if err := u.campaigns.SetModeration(ctx, id, domain.CampaignApproved, adminID, ""); err != nil {
		return nil, err
	}
	return u.campaigns.GetByID(ctx, id)
}

// Reject moves a pending campaign to rejected with a mandatory reason.
func (u *CampaignUseCase) Reject(ctx context.Context, adminID, id, reason string) (*domain.Campaign, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", port.ErrInvalidInput)
	}
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignPending {
		return nil, fmt.Errorf("%w: only pending campaigns can be rejected", port.ErrInvalidInput)
	}
	if err := u.campaigns.SetModeration(ctx, id, domain.CampaignRejected, adminID, reason); err != nil {
		return nil, err
	}
	return u.campaigns.GetByID(ctx, id)
}

