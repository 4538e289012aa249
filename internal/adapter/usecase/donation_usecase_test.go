package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"lifted/internal/config/configs"
	"lifted/internal/core/domain"
	"lifted/internal/core/port"
	"lifted/internal/core/port/mocks"
)

func newDonationTestCase(t *testing.T, policy configs.Donation) (*DonationUseCase, *mocks.MockDonationRepository, *mocks.MockCampaignRepository, *mocks.MockUserRepository, *mocks.MockDonationEvents) {
	donations := mocks.NewMockDonationRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	users := mocks.NewMockUserRepository(t)
	events := mocks.NewMockDonationEvents(t)
	svc := NewDonationUseCase(donations, campaigns, users, events, policy, zerolog.Nop())
	return svc, donations, campaigns, users, events
}

func approvedCampaign(id string) *domain.Campaign {
	return &domain.Campaign{
		ID:           id,
		OwnerID:      "owner",
		Status:       domain.CampaignApproved,
		IsActive:     true,
		AmountNeeded: 100000,
	}
}

// TestDonationCreate checks the happy path: fees are frozen into the record,
// the ledger write and donor aggregates happen, and the completion event
// fires.
func TestDonationCreate(t *testing.T) {
	svc, donations, campaigns, users, events := newDonationTestCase(t, configs.Donation{})

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(approvedCampaign("c1"), nil)

	var stored *domain.Donation
	donations.EXPECT().
		CreateCompleted(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Run(func(ctx context.Context, d *domain.Donation) { stored = d }).
		Return(false, nil)

	users.EXPECT().IncrementDonationTotals(mock.Anything, "d1", int64(1000)).Return(nil)
	events.EXPECT().DonationCompleted(mock.AnythingOfType("*domain.Donation"), false).Return()

	receipt, err := svc.Create(context.Background(), port.DonationInput{
		CampaignID:    "c1",
		DonorID:       "d1",
		Amount:        1000,
		PaymentMethod: domain.MethodCard,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if receipt.NetAmount != 891 {
		t.Fatalf("net amount: got %d, want 891", receipt.NetAmount)
	}
	if receipt.PaymentStatus != domain.PaymentCompleted {
		t.Fatalf("payment status: got %s, want completed", receipt.PaymentStatus)
	}
	if stored == nil {
		t.Fatal("donation never reached the repository")
	}
	if stored.PlatformFee != 50 || stored.PaymentProcessingFee != 59 {
		t.Fatalf("unexpected fee snapshot: platform %d, processing %d", stored.PlatformFee, stored.PaymentProcessingFee)
	}
	if stored.Currency != "KES" {
		t.Fatalf("currency: got %s, want KES", stored.Currency)
	}
	if stored.TransactionID == "" || receipt.TransactionID != stored.TransactionID {
		t.Fatal("transaction id missing from receipt")
	}
}

// TestDonationCreateValidation ensures invalid input is rejected before any
// repository call. The mocks have no expectations, so a stray call fails the
// test.
func TestDonationCreateValidation(t *testing.T) {
	svc, _, _, _, _ := newDonationTestCase(t, configs.Donation{})

	cases := []port.DonationInput{
		{DonorID: "d1", Amount: 1000, PaymentMethod: domain.MethodCard},                      // no campaign
		{CampaignID: "c1", Amount: 1000, PaymentMethod: domain.MethodCard},                   // no donor
		{CampaignID: "c1", DonorID: "d1", Amount: 99, PaymentMethod: domain.MethodCard},      // below minimum
		{CampaignID: "c1", DonorID: "d1", Amount: 1000, PaymentMethod: "cheque"},             // unknown method
		{CampaignID: "c1", DonorID: "d1", Amount: 1000, PaymentMethod: domain.MethodCard,
			Message: string(make([]byte, 501))}, // oversized message
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

// TestDonationMessageLimitCountsRunes: the 500 cap is on characters, so a
// multibyte message under the cap is accepted even past 500 bytes.
func TestDonationMessageLimitCountsRunes(t *testing.T) {
	svc, donations, campaigns, users, events := newDonationTestCase(t, configs.Donation{})

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(approvedCampaign("c1"), nil).Once()
	donations.EXPECT().
		CreateCompleted(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Return(false, nil).Once()
	users.EXPECT().IncrementDonationTotals(mock.Anything, "d1", int64(1000)).Return(nil).Once()
	events.EXPECT().DonationCompleted(mock.AnythingOfType("*domain.Donation"), false).Return().Once()

	in := port.DonationInput{
		CampaignID:    "c1",
		DonorID:       "d1",
		Amount:        1000,
		PaymentMethod: domain.MethodCard,
		Message:       strings.Repeat("ありがとう", 100), // 500 runes, 1500 bytes
	}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("500-rune message rejected: %v", err)
	}

	in.Message += "!"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, port.ErrInvalidInput) {
		t.Fatalf("501-rune message: expected ErrInvalidInput, got %v", err)
	}
}

func TestDonationCreateIneligibleCampaign(t *testing.T) {
	svc, _, campaigns, _, _ := newDonationTestCase(t, configs.Donation{})

	pending := approvedCampaign("c1")
	pending.Status = domain.CampaignPending
	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(pending, nil).Once()

	in := port.DonationInput{CampaignID: "c1", DonorID: "d1", Amount: 1000, PaymentMethod: domain.MethodCard}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, port.ErrCampaignNotEligible) {
		t.Fatalf("expected ErrCampaignNotEligible, got %v", err)
	}

	// unknown campaigns surface the same error, not a bare not-found
	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(nil, port.ErrNotFound).Once()
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, port.ErrCampaignNotEligible) {
		t.Fatalf("expected ErrCampaignNotEligible for missing campaign, got %v", err)
	}
}

// TestDonationCompletesCampaign checks the goal-crossing signal is passed
// through to the event hook.
func TestDonationCompletesCampaign(t *testing.T) {
	svc, donations, campaigns, users, events := newDonationTestCase(t, configs.Donation{})

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(approvedCampaign("c1"), nil)
	donations.EXPECT().
		CreateCompleted(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Return(true, nil)
	users.EXPECT().IncrementDonationTotals(mock.Anything, "d1", int64(5000)).Return(nil)

	completed := false
	events.EXPECT().
		DonationCompleted(mock.AnythingOfType("*domain.Donation"), true).
		Run(func(d *domain.Donation, campaignCompleted bool) { completed = campaignCompleted }).
		Return()

	_, err := svc.Create(context.Background(), port.DonationInput{
		CampaignID:    "c1",
		DonorID:       "d1",
		Amount:        5000,
		PaymentMethod: domain.MethodBankTransfer,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !completed {
		t.Fatal("completion flag was not delivered to the event hook")
	}
}

// TestDonorAggregateFailureTolerated: a failed donor aggregate update is
// logged, not propagated. The donation has already been committed.
func TestDonorAggregateFailureTolerated(t *testing.T) {
	svc, donations, campaigns, users, events := newDonationTestCase(t, configs.Donation{})

	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(approvedCampaign("c1"), nil)
	donations.EXPECT().
		CreateCompleted(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Return(false, nil)
	users.EXPECT().
		IncrementDonationTotals(mock.Anything, "d1", int64(1000)).
		Return(errors.New("aggregate table unavailable"))
	events.EXPECT().DonationCompleted(mock.AnythingOfType("*domain.Donation"), false).Return()

	_, err := svc.Create(context.Background(), port.DonationInput{
		CampaignID:    "c1",
		DonorID:       "d1",
		Amount:        1000,
		PaymentMethod: domain.MethodMobileMoney,
	})
	if err != nil {
		t.Fatalf("Create should tolerate aggregate failure, got %v", err)
	}
}

func completedDonation(id, donorID string, createdAt time.Time) *domain.Donation {
	return &domain.Donation{
		ID:            id,
		CampaignID:    "c1",
		DonorID:       donorID,
		Amount:        1000,
		PaymentStatus: domain.PaymentCompleted,
		NetAmount:     940,
		CreatedAt:     createdAt,
	}
}

// TestRefund checks the happy path. The single .Once() read also pins down
// that the event and the response are built from the committed write, not
// from a second lookup that could fail after the money moved.
func TestRefund(t *testing.T) {
	policy := configs.Donation{RefundWindow: 7 * 24 * time.Hour}
	svc, donations, _, _, events := newDonationTestCase(t, policy)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	original := completedDonation("don1", "d1", now.Add(-48*time.Hour))
	donations.EXPECT().GetByID(mock.Anything, "don1").Return(original, nil).Once()
	donations.EXPECT().Refund(mock.Anything, "don1", "d1", "changed my mind", now).Return(nil)

	var fired *domain.Donation
	events.EXPECT().
		DonationRefunded(mock.AnythingOfType("*domain.Donation")).
		Run(func(d *domain.Donation) { fired = d }).
		Return()

	got, err := svc.Refund(context.Background(), "d1", "don1", "changed my mind")
	if err != nil {
		t.Fatalf("Refund error: %v", err)
	}
	if got.PaymentStatus != domain.PaymentRefunded {
		t.Fatalf("payment status: got %s, want refunded", got.PaymentStatus)
	}
	if got.RefundedAt == nil || !got.RefundedAt.Equal(now) {
		t.Fatalf("refunded at: got %v, want %v", got.RefundedAt, now)
	}
	if got.RefundedBy == nil || *got.RefundedBy != "d1" {
		t.Fatal("refunding donor was not stamped")
	}
	if fired == nil || fired.PaymentStatus != domain.PaymentRefunded {
		t.Fatal("refund event must carry the refunded donation")
	}
}

func TestRefundGates(t *testing.T) {
	policy := configs.Donation{RefundWindow: 7 * 24 * time.Hour}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty reason", func(t *testing.T) {
		svc, _, _, _, _ := newDonationTestCase(t, policy)
		if _, err := svc.Refund(context.Background(), "d1", "don1", "  "); !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("not the donor", func(t *testing.T) {
		svc, donations, _, _, _ := newDonationTestCase(t, policy)
		svc.now = func() time.Time { return now }
		donations.EXPECT().GetByID(mock.Anything, "don1").
			Return(completedDonation("don1", "someone-else", now.Add(-time.Hour)), nil)
		if _, err := svc.Refund(context.Background(), "d1", "don1", "reason"); !errors.Is(err, port.ErrRefundUnauthorized) {
			t.Fatalf("expected ErrRefundUnauthorized, got %v", err)
		}
	})

	t.Run("already refunded", func(t *testing.T) {
		svc, donations, _, _, _ := newDonationTestCase(t, policy)
		svc.now = func() time.Time { return now }
		d := completedDonation("don1", "d1", now.Add(-time.Hour))
		d.PaymentStatus = domain.PaymentRefunded
		donations.EXPECT().GetByID(mock.Anything, "don1").Return(d, nil)
		if _, err := svc.Refund(context.Background(), "d1", "don1", "reason"); !errors.Is(err, port.ErrAlreadyRefunded) {
			t.Fatalf("expected ErrAlreadyRefunded, got %v", err)
		}
	})

	t.Run("not completed", func(t *testing.T) {
		svc, donationsRepo, _, _, _ := newDonationTestCase(t, policy)
		svc.now = func() time.Time { return now }
		d := completedDonation("don1", "d1", now.Add(-time.Hour))
		d.PaymentStatus = domain.PaymentPending
		donationsRepo.EXPECT().GetByID(mock.Anything, "don1").Return(d, nil)
		if _, err := svc.Refund(context.Background(), "d1", "don1", "reason"); !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("window expired", func(t *testing.T) {
		svc, donations, _, _, _ := newDonationTestCase(t, policy)
		svc.now = func() time.Time { return now }
		donations.EXPECT().GetByID(mock.Anything, "don1").
			Return(completedDonation("don1", "d1", now.Add(-8*24*time.Hour)), nil)
		if _, err := svc.Refund(context.Background(), "d1", "don1", "reason"); !errors.Is(err, port.ErrRefundWindowExpired) {
			t.Fatalf("expected ErrRefundWindowExpired, got %v", err)
		}
	})
}

// TestRefundReversesDonorTotals checks the policy-gated aggregate reversal.
func TestRefundReversesDonorTotals(t *testing.T) {
	policy := configs.Donation{RefundWindow: 7 * 24 * time.Hour, ReverseDonorTotals: true}
	svc, donations, _, users, events := newDonationTestCase(t, policy)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	original := completedDonation("don1", "d1", now.Add(-time.Hour))
	donations.EXPECT().GetByID(mock.Anything, "don1").Return(original, nil).Once()
	donations.EXPECT().Refund(mock.Anything, "don1", "d1", "reason", now).Return(nil)
	users.EXPECT().DecrementDonationTotals(mock.Anything, "d1", int64(1000)).Return(nil)
	events.EXPECT().DonationRefunded(mock.AnythingOfType("*domain.Donation")).Return()

	if _, err := svc.Refund(context.Background(), "d1", "don1", "reason"); err != nil {
		t.Fatalf("Refund error: %v", err)
	}
}

// TestConcurrentDonations drives the intake from many goroutines against a
// simulated atomic ledger and verifies nothing is lost and the completion
// flip fires exactly once.
func TestConcurrentDonations(t *testing.T) {
	svc, donations, campaigns, users, events := newDonationTestCase(t, configs.Donation{})

	campaign := approvedCampaign("c1")
	campaign.AmountNeeded = 5000
	campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(campaign, nil)

	var (
		mu         sync.Mutex
		raised     int64
		donors     int64
		completed  bool
		flipEvents int
	)

	donations.EXPECT().
		CreateCompleted(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		RunAndReturn(func(ctx context.Context, d *domain.Donation) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			flip := !completed && raised+d.NetAmount >= campaign.AmountNeeded
			raised += d.NetAmount
			donors++
			if flip {
				completed = true
			}
			return flip, nil
		})

	users.EXPECT().IncrementDonationTotals(mock.Anything, "d1", int64(1000)).Return(nil)
	events.EXPECT().
		DonationCompleted(mock.AnythingOfType("*domain.Donation"), mock.AnythingOfType("bool")).
		Run(func(d *domain.Donation, campaignCompleted bool) {
			if campaignCompleted {
				mu.Lock()
				flipEvents++
				mu.Unlock()
			}
		}).
		Return()

	count := 10
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), port.DonationInput{
				CampaignID:    "c1",
				DonorID:       "d1",
				Amount:        1000,
				PaymentMethod: domain.MethodMobileMoney,
			})
			if err != nil {
				t.Errorf("Create error: %v", err)
			}
		}()
	}
	wg.Wait()

	// each mobile-money 1000 nets 940; 10 donations -> 9400 raised, 10 donors
	if raised != 9400 {
		t.Fatalf("ledger lost updates: raised %d, want 9400", raised)
	}
	if donors != 10 {
		t.Fatalf("donor count: got %d, want 10", donors)
	}
	if flipEvents != 1 {
		t.Fatalf("completion must fire exactly once, fired %d times", flipEvents)
	}
}

// TestListByCampaignHidesAnonymousDonors verifies donor identity never leaves
// the usecase for anonymous donations.
func TestListByCampaignHidesAnonymousDonors(t *testing.T) {
	svc, donations, _, _, _ := newDonationTestCase(t, configs.Donation{})

	donations.EXPECT().ListCompletedByCampaign(mock.Anything, "c1", 20).Return([]domain.Donation{
		{ID: "a", DonorID: "d1", Anonymous: true},
		{ID: "b", DonorID: "d2"},
	}, nil)

	items, err := svc.ListByCampaign(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListByCampaign error: %v", err)
	}
	if items[0].DonorID != "" {
		t.Fatal("anonymous donor id leaked")
	}
	if items[1].DonorID != "d2" {
		t.Fatal("public donor id should be kept")
	}
}
