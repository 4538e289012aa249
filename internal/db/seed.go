package db

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"lifted/internal/core/domain"
)

// Seed inserts demo data: an admin, a handful of students with approved
// campaigns, donors, and a spread of completed donations with their fee
// snapshots and ledger contributions applied.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminID := uuid.NewString()
	_, err = db.Exec(ctx, `INSERT INTO users
    (id, first_name, last_name, email, password_hash, phone, role, verified, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE,now(),now()) ON CONFLICT (email) DO NOTHING`,
		adminID, "Amina", "Odhiambo", "admin@lifted.example", string(hash), "+254700000001", domain.RoleAdmin)
	if err != nil {
		return err
	}

	// students with one approved campaign each
	institutions := []string{"University of Nairobi", "Kenyatta University", "Moi University", "JKUAT", "Strathmore University"}
	fundingTypes := []domain.FundingType{domain.FundingTuition, domain.FundingExam, domain.FundingBooks, domain.FundingAccommodation, domain.FundingMedical}
	campaignIDs := make([]string, 0, len(institutions))
	for i, inst := range institutions {
		studentID := uuid.NewString()
		email := fmt.Sprintf("student%d@lifted.example", i+1)
		phone := fmt.Sprintf("+2547000001%02d", i)
		_, err = db.Exec(ctx, `INSERT INTO users
    (id, first_name, last_name, email, password_hash, phone, role, verified, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE,now(),now()) ON CONFLICT (email) DO NOTHING`,
			studentID, fmt.Sprintf("Student%d", i+1), "Demo", email, string(hash), phone, domain.RoleStudent)
		if err != nil {
			return err
		}

		campaignID := uuid.NewString()
		story := strings.Repeat(fmt.Sprintf("Raising funds to continue my studies at %s. ", inst), 3)
		deadline := time.Now().AddDate(0, 2, 0)
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, institution, course, year_of_study, story, funding_type,
     amount_needed, status, urgent, deadline, verified_by, verified_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'approved',$9,$10,$11,now(),now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, studentID, inst, "BSc Computer Science", 1+r.Intn(4), story,
			fundingTypes[i%len(fundingTypes)], int64(50000+r.Intn(200000)), i%2 == 0, deadline, adminID)
		if err != nil {
			return err
		}
		campaignIDs = append(campaignIDs, campaignID)
	}

	// donors
	donorIDs := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		donorID := uuid.NewString()
		email := fmt.Sprintf("donor%d@lifted.example", i+1)
		phone := fmt.Sprintf("+2547111002%02d", i)
		_, err = db.Exec(ctx, `INSERT INTO users
    (id, first_name, last_name, email, password_hash, phone, role, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT (email) DO NOTHING`,
			donorID, fmt.Sprintf("Donor%d", i+1), "Demo", email, string(hash), phone, domain.RoleDonor)
		if err != nil {
			return err
		}
		donorIDs = append(donorIDs, donorID)
	}

	// completed donations with their ledger effects applied
	methods := []domain.PaymentMethod{domain.MethodMobileMoney, domain.MethodCard, domain.MethodBankTransfer, domain.MethodPayPal}
	for i := 0; i < 50; i++ {
		campaignID := campaignIDs[r.Intn(len(campaignIDs))]
		donorID := donorIDs[r.Intn(len(donorIDs))]
		amount := int64(100 * (1 + r.Intn(100)))
		method := methods[r.Intn(len(methods))]

		fees, err := domain.ComputeFees(amount, method)
		if err != nil {
			return err
		}
		txID := "DON-" + strings.ToUpper(uuid.NewString())
		_, err = db.Exec(ctx, `INSERT INTO donations
    (id, campaign_id, donor_id, amount, payment_method, payment_status, transaction_id,
     anonymous, platform_fee, payment_processing_fee, net_amount, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'completed',$6,$7,$8,$9,$10,now(),now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(), campaignID, donorID, amount, method, txID,
			r.Intn(5) == 0, fees.PlatformFee, fees.PaymentProcessingFee, fees.NetAmount)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `UPDATE campaigns
SET amount_raised = amount_raised + $1, donor_count = donor_count + 1, updated_at = now()
WHERE id = $2`, fees.NetAmount, campaignID)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `UPDATE users
SET total_donations = total_donations + $1, donation_count = donation_count + 1, updated_at = now()
WHERE id = $2`, amount, donorID)
		if err != nil {
			return err
		}
	}
	return nil
}
