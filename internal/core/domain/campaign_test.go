package domain

import (
	"testing"
	"time"
)

func TestAcceptsDonations(t *testing.T) {
	c := Campaign{Status: CampaignApproved, IsActive: true}
	if !c.AcceptsDonations() {
		t.Fatal("active approved campaign should accept donations")
	}

	for _, status := range []CampaignStatus{CampaignPending, CampaignRejected, CampaignCompleted, CampaignCancelled} {
		c := Campaign{Status: status, IsActive: true}
		if c.AcceptsDonations() {
			t.Fatalf("%s campaign should not accept donations", status)
		}
	}

	inactive := Campaign{Status: CampaignApproved, IsActive: false}
	if inactive.AcceptsDonations() {
		t.Fatal("soft-deleted campaign should not accept donations")
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		raised, needed int64
		want           int
	}{
		{0, 1000, 0},
		{500, 1000, 50},
		{333, 1000, 33},
		{1000, 1000, 100},
		{1500, 1000, 100}, // over-funded is capped
		{0, 0, 0},
	}
	for _, tc := range cases {
		c := Campaign{AmountRaised: tc.raised, AmountNeeded: tc.needed}
		if got := c.Progress(); got != tc.want {
			t.Fatalf("Progress(%d/%d): got %d, want %d", tc.raised, tc.needed, got, tc.want)
		}
	}
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	c := Campaign{}
	if c.DaysLeft(now) != nil {
		t.Fatal("no deadline should yield nil")
	}

	deadline := now.AddDate(0, 0, 10)
	c = Campaign{Deadline: &deadline}
	if got := c.DaysLeft(now); got == nil || *got != 10 {
		t.Fatalf("expected 10 days left, got %v", got)
	}

	past := now.AddDate(0, 0, -3)
	c = Campaign{Deadline: &past}
	if got := c.DaysLeft(now); got == nil || *got != 0 {
		t.Fatalf("past deadline should report zero, got %v", got)
	}
}
