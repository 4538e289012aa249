package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

// DonationRepository implements port.DonationRepository using pgxpool for
// PostgreSQL. The ledger mutations are single UPDATE statements with
// self-contained increments, so concurrent donations to the same campaign
// serialize at the row level instead of racing through read-then-save.
type DonationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository returns a new repository instance.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

const donationColumns = `id, campaign_id, donor_id, amount, currency, payment_method,
  payment_status, transaction_id, message, anonymous, receive_updates, platform_fee,
  payment_processing_fee, net_amount, refund_reason, refunded_at, refunded_by,
  ip_address, user_agent, created_at, updated_at`

// CreateCompleted inserts the donation and applies its net amount to the
// campaign ledger in one transaction. The campaign UPDATE increments
// amount_raised and donor_count and flips the campaign to completed the
// first time the goal is crossed, all in a single statement. The WHERE
// clause re-checks eligibility, so a campaign deactivated or un-approved
// after the usecase's read aborts the whole transaction with
// port.ErrCampaignNotEligible.
func (r *DonationRepository) CreateCompleted(ctx context.Context, d *domain.Donation) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO donations
  (id, campaign_id, donor_id, amount, currency, payment_method, payment_status,
   transaction_id, message, anonymous, receive_updates, platform_fee,
   payment_processing_fee, net_amount, ip_address, user_agent)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		d.ID, d.CampaignID, d.DonorID, d.Amount, d.Currency, d.PaymentMethod,
		d.PaymentStatus, d.TransactionID, d.Message, d.Anonymous, d.ReceiveUpdates,
		d.PlatformFee, d.PaymentProcessingFee, d.NetAmount, d.IPAddress, d.UserAgent)
	if err != nil {
		return false, err
	}

	var status domain.CampaignStatus
	err = tx.QueryRow(ctx, `UPDATE campaigns
SET amount_raised = amount_raised + $1,
    donor_count   = donor_count + 1,
    status = CASE WHEN amount_raised + $1 >= amount_needed THEN 'completed' ELSE status END,
    completed_at = CASE WHEN amount_raised + $1 >= amount_needed AND completed_at IS NULL
                        THEN now() ELSE completed_at END,
    updated_at = now()
WHERE id = $2 AND status = 'approved' AND is_active
RETURNING status`, d.NetAmount, d.CampaignID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotEligible
		return false, err
	}
	if err != nil {
		err = mapTxError(err)
		return false, err
	}
	return status == domain.CampaignCompleted, nil
}

// mapTxError surfaces serialization failures and deadlocks as a retryable
// conflict.
func mapTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return port.ErrConcurrencyConflict
	}
	return err
}

// Refund marks a completed donation refunded and reverses its ledger
// contribution in one transaction. The donation UPDATE is guarded by the
// current status, so a concurrent refund of the same donation loses the race
// and gets port.ErrAlreadyRefunded.
func (r *DonationRepository) Refund(ctx context.Context, donationID, refundedBy, reason string, at time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var campaignID string
	var netAmount int64
	err = tx.QueryRow(ctx, `UPDATE donations
SET payment_status = 'refunded', refund_reason = $1, refunded_at = $2, refunded_by = $3,
    updated_at = now()
WHERE id = $4 AND payment_status = 'completed'
RETURNING campaign_id, net_amount`, reason, at, refundedBy, donationID).Scan(&campaignID, &netAmount)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrAlreadyRefunded
		return err
	}
	if err != nil {
		return err
	}

	// Reverse the ledger. A campaign that had just completed reopens when the
	// refund drops it back below its goal.
	_, err = tx.Exec(ctx, `UPDATE campaigns
SET amount_raised = amount_raised - $1,
    donor_count   = GREATEST(donor_count - 1, 0),
    status = CASE WHEN status = 'completed' AND amount_raised - $1 < amount_needed
                  THEN 'approved' ELSE status END,
    completed_at = CASE WHEN status = 'completed' AND amount_raised - $1 < amount_needed
                        THEN NULL ELSE completed_at END,
    updated_at = now()
WHERE id = $2`, netAmount, campaignID)
	if err != nil {
		err = mapTxError(err)
	}
	return err
}

// GetByID fetches a donation by id.
func (r *DonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1`, id)
	return scanDonation(row)
}

// ListByDonor returns a donor's donations, newest first.
func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+donationColumns+` FROM donations WHERE donor_id = $1 ORDER BY created_at DESC`, donorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectDonation)
}

// ListAll returns every donation, newest first. Admin listings only.
func (r *DonationRepository) ListAll(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+donationColumns+` FROM donations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectDonation)
}

// ListCompletedByCampaign returns the latest completed donations for a
// campaign, capped at limit.
func (r *DonationRepository) ListCompletedByCampaign(ctx context.Context, campaignID string, limit int) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+donationColumns+` FROM donations
WHERE campaign_id = $1 AND payment_status = 'completed'
ORDER BY created_at DESC LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectDonation)
}

// Stats aggregates completed donations over a period, with a top-ten donor
// leaderboard by gross amount.
func (r *DonationRepository) Stats(ctx context.Context, period port.StatsPeriod) (*port.DonationStats, error) {
	args := []any{period.From, period.To}
	whereCampaign := ""
	if period.CampaignID != nil {
		whereCampaign = " AND campaign_id = $3"
		args = append(args, *period.CampaignID)
	}

	var stats port.DonationStats
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0), COALESCE(sum(amount),0)
FROM donations
WHERE payment_status = 'completed' AND created_at >= $1 AND created_at <= $2`+whereCampaign,
		args...).Scan(&stats.TotalDonations, &stats.TotalAmount)
	if err != nil {
		return nil, err
	}
	if stats.TotalDonations > 0 {
		stats.AverageDonation = stats.TotalAmount / stats.TotalDonations
	}

	rows, err := r.pool.Query(ctx, `SELECT donor_id, sum(amount), count(*)
FROM donations
WHERE payment_status = 'completed' AND created_at >= $1 AND created_at <= $2`+whereCampaign+`
GROUP BY donor_id ORDER BY sum(amount) DESC LIMIT 10`, args...)
	if err != nil {
		return nil, err
	}
	stats.TopDonors, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DonorStat, error) {
		var s port.DonorStat
		err := row.Scan(&s.DonorID, &s.Total, &s.Count)
		return s, err
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.CampaignID, &d.DonorID, &d.Amount, &d.Currency, &d.PaymentMethod,
		&d.PaymentStatus, &d.TransactionID, &d.Message, &d.Anonymous, &d.ReceiveUpdates,
		&d.PlatformFee, &d.PaymentProcessingFee, &d.NetAmount, &d.RefundReason, &d.RefundedAt,
		&d.RefundedBy, &d.IPAddress, &d.UserAgent, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDonation(row pgx.CollectableRow) (domain.Donation, error) {
	d, err := scanDonation(row)
	if err != nil {
		return domain.Donation{}, err
	}
	return *d, nil
}
