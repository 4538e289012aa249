package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Ledger mutations live in DonationRepository; this type only
// covers catalogue and moderation concerns.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, owner_id, institution, course, year_of_study, student_id, story,
  funding_type, amount_needed, amount_raised, donor_count, status, urgent, deadline,
  admin_notes, verified_by, verified_at, completed_at, views, shares, is_active,
  created_at, updated_at`

// Create inserts a new campaign in pending status. The partial unique index
// on (owner_id) WHERE is_active turns a second active campaign into
// port.ErrProfileExists.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
  (id, owner_id, institution, course, year_of_study, student_id, story, funding_type,
   amount_needed, status, urgent, deadline, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.OwnerID, c.Institution, c.Course, c.YearOfStudy, c.StudentID, c.Story,
		c.FundingType, c.AmountNeeded, c.Status, c.Urgent, c.Deadline, c.IsActive)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return port.ErrProfileExists
	}
	return err
}

// GetByID fetches a campaign by id.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// GetByOwner fetches the owner's active campaign.
func (r *CampaignRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE owner_id = $1 AND is_active`, ownerID)
	return scanCampaign(row)
}

// List returns approved, active campaigns page by page, urgent first then
// newest, along with the unpaged total.
func (r *CampaignRepository) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, int64, error) {
	where := `status = 'approved' AND is_active`
	args := []any{}
	n := 1
	if filter.Urgent != nil {
		where += ` AND urgent = $1`
		args = append(args, *filter.Urgent)
		n++
	}
	if filter.FundingType != nil {
		where += ` AND funding_type = $` + strconv.Itoa(n)
		args = append(args, *filter.FundingType)
		n++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE ` + where +
		` ORDER BY urgent DESC, created_at DESC LIMIT $` + strconv.Itoa(n) + ` OFFSET $` + strconv.Itoa(n+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, collectCampaign)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Search runs a basic ILIKE match over course, institution and story of
// approved, active campaigns.
func (r *CampaignRepository) Search(ctx context.Context, query string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE status = 'approved' AND is_active
  AND (course ILIKE $1 OR institution ILIKE $1 OR story ILIKE $1)
ORDER BY created_at DESC`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectCampaign)
}

// Update persists the editable campaign fields.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET institution = $1, course = $2, year_of_study = $3, student_id = $4, story = $5,
    funding_type = $6, amount_needed = $7, urgent = $8, deadline = $9, updated_at = now()
WHERE id = $10`,
		c.Institution, c.Course, c.YearOfStudy, c.StudentID, c.Story,
		c.FundingType, c.AmountNeeded, c.Urgent, c.Deadline, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SoftDelete marks the campaign inactive.
func (r *CampaignRepository) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET is_active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SetModeration applies an approve or reject decision with its audit stamp.
func (r *CampaignRepository) SetModeration(ctx context.Context, id string, status domain.CampaignStatus, verifierID, notes string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = $1, verified_by = $2, verified_at = now(), admin_notes = $3, updated_at = now()
WHERE id = $4`, status, verifierID, notes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// AddUpdate appends a progress update.
func (r *CampaignRepository) AddUpdate(ctx context.Context, u *domain.CampaignUpdate) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaign_updates (id, campaign_id, title, message) VALUES ($1,$2,$3,$4)`,
		u.ID, u.CampaignID, u.Title, u.Message)
	return err
}

// ListUpdates returns a campaign's progress updates, newest first.
func (r *CampaignRepository) ListUpdates(ctx context.Context, campaignID string) ([]domain.CampaignUpdate, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, title, message, created_at
FROM campaign_updates WHERE campaign_id = $1 ORDER BY created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignUpdate, error) {
		var u domain.CampaignUpdate
		err := row.Scan(&u.ID, &u.CampaignID, &u.Title, &u.Message, &u.CreatedAt)
		return u, err
	})
}

// IncrementViews bumps the view counter. Best-effort; callers may ignore the
// error.
func (r *CampaignRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET views = views + 1 WHERE id = $1`, id)
	return err
}

// IncrementShares bumps the share counter and returns the new count.
func (r *CampaignRepository) IncrementShares(ctx context.Context, id string) (int64, error) {
	var shares int64
	err := r.pool.QueryRow(ctx,
		`UPDATE campaigns SET shares = shares + 1 WHERE id = $1 RETURNING shares`, id).Scan(&shares)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrNotFound
	}
	return shares, err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.OwnerID, &c.Institution, &c.Course, &c.YearOfStudy, &c.StudentID,
		&c.Story, &c.FundingType, &c.AmountNeeded, &c.AmountRaised, &c.DonorCount, &c.Status,
		&c.Urgent, &c.Deadline, &c.AdminNotes, &c.VerifiedBy, &c.VerifiedAt, &c.CompletedAt,
		&c.Views, &c.Shares, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	c, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, err
	}
	return *c, nil
}

