package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"lifted/internal/adapter/http/middleware"
	"lifted/internal/adapter/usecase"
	"lifted/internal/config/configs"
	"lifted/internal/core/domain"
	"lifted/internal/core/port"
	"lifted/internal/core/port/mocks"
)

const testSecret = "test-secret"

type testServer struct {
	handler   http.Handler
	users     *mocks.MockUserRepository
	campaigns *mocks.MockCampaignRepository
	donations *mocks.MockDonationRepository
}

func newTestServer(t *testing.T) *testServer {
	users := mocks.NewMockUserRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	donations := mocks.NewMockDonationRepository(t)
	events := mocks.NewMockDonationEvents(t)
	events.EXPECT().DonationCompleted(mock.Anything, mock.Anything).Return().Maybe()
	events.EXPECT().DonationRefunded(mock.Anything).Return().Maybe()

	authSvc := usecase.NewAuthUseCase(users)
	campaignSvc := usecase.NewCampaignUseCase(campaigns)
	donationSvc := usecase.NewDonationUseCase(donations, campaigns, users, events,
		configs.Donation{RefundWindow: 7 * 24 * time.Hour}, zerolog.Nop())

	h := NewHandler(authSvc, campaignSvc, donationSvc,
		configs.Auth{JWTSecret: testSecret, TokenTTL: time.Hour, Issuer: "lifted"},
		configs.HTTP{AllowedOrigins: []string{"http://localhost:3000"}},
		zerolog.Nop())

	return &testServer{handler: h.Router(), users: users, campaigns: campaigns, donations: donations}
}

func bearerToken(t *testing.T, userID string, role domain.UserRole) string {
	t.Helper()
	token, err := middleware.SignJWT(testSecret, middleware.TokenClaims{
		Sub:    userID,
		Role:   string(role),
		Exp:    time.Now().Add(time.Hour).Unix(),
		Issuer: "lifted",
	})
	if err != nil {
		t.Fatalf("SignJWT error: %v", err)
	}
	return "Bearer " + token
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status: got %d, want 200", rec.Code)
	}
}

func TestDonationRequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/v1/donations/", "",
		`{"campaignId":"c1","amount":1000,"paymentMethod":"card"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated donation: got %d, want 401", rec.Code)
	}
}

func TestDonationCreateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Campaign{
		ID:           "c1",
		Status:       domain.CampaignApproved,
		IsActive:     true,
		AmountNeeded: 100000,
	}, nil)
	ts.donations.EXPECT().
		CreateCompleted(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Return(false, nil)
	ts.users.EXPECT().IncrementDonationTotals(mock.Anything, "donor1", int64(1000)).Return(nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/donations/", bearerToken(t, "donor1", domain.RoleDonor),
		`{"campaignId":"c1","amount":1000,"paymentMethod":"card"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("donation create: got %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		NetAmount     int64  `json:"netAmount"`
		TransactionID string `json:"transactionId"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.NetAmount != 891 {
		t.Fatalf("net amount: got %d, want 891", resp.NetAmount)
	}
	if !strings.HasPrefix(resp.TransactionID, "DON-") {
		t.Fatalf("transaction id format: %s", resp.TransactionID)
	}
	if resp.PaymentStatus != "completed" {
		t.Fatalf("payment status: got %s, want completed", resp.PaymentStatus)
	}
}

func TestDonationToIneligibleCampaign(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Campaign{
		ID:       "c1",
		Status:   domain.CampaignPending,
		IsActive: true,
	}, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/donations/", bearerToken(t, "donor1", domain.RoleDonor),
		`{"campaignId":"c1","amount":1000,"paymentMethod":"card"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("ineligible campaign: got %d, want 400", rec.Code)
	}
}

func TestCampaignCreateRoleGate(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/v1/campaigns/", bearerToken(t, "donor1", domain.RoleDonor),
		`{"institution":"UoN"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("donor creating a campaign: got %d, want 403", rec.Code)
	}
}

func TestStatsAdminOnly(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/v1/donations/stats/summary", bearerToken(t, "donor1", domain.RoleDonor), "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin stats: got %d, want 403", rec.Code)
	}
}

func TestCampaignShareEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().IncrementShares(mock.Anything, "c1").Return(int64(4), nil)

	rec := ts.do(t, http.MethodPut, "/api/v1/campaigns/c1/share", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("share: got %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Shares int64 `json:"shares"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Shares != 4 {
		t.Fatalf("shares: got %d, want 4", resp.Shares)
	}

	ts.campaigns.EXPECT().IncrementShares(mock.Anything, "missing").Return(int64(0), port.ErrNotFound)
	if rec := ts.do(t, http.MethodPut, "/api/v1/campaigns/missing/share", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("share of missing campaign: got %d, want 404", rec.Code)
	}
}

// TestUserCampaignEndpoint covers the by-owner lookup: owners see their
// campaign in any status, strangers only once it is public.
func TestUserCampaignEndpoint(t *testing.T) {
	pending := func() *domain.Campaign {
		return &domain.Campaign{ID: "c1", OwnerID: "stu1", Status: domain.CampaignPending, IsActive: true}
	}

	t.Run("owner sees pending", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().GetByID(mock.Anything, "stu1").
			Return(&domain.User{ID: "stu1", Role: domain.RoleStudent, IsActive: true}, nil)
		ts.campaigns.EXPECT().GetByOwner(mock.Anything, "stu1").Return(pending(), nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/users/stu1/campaign", bearerToken(t, "stu1", domain.RoleStudent), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("owner lookup: got %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.ID != "c1" {
			t.Fatalf("campaign id: got %s, want c1", resp.ID)
		}
	})

	t.Run("stranger cannot see pending", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().GetByID(mock.Anything, "donor1").
			Return(&domain.User{ID: "donor1", Role: domain.RoleDonor, IsActive: true}, nil)
		ts.campaigns.EXPECT().GetByOwner(mock.Anything, "stu1").Return(pending(), nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/users/stu1/campaign", bearerToken(t, "donor1", domain.RoleDonor), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("stranger lookup of pending campaign: got %d, want 404", rec.Code)
		}
	})

	t.Run("stranger sees approved", func(t *testing.T) {
		ts := newTestServer(t)
		approved := pending()
		approved.Status = domain.CampaignApproved
		ts.users.EXPECT().GetByID(mock.Anything, "donor1").
			Return(&domain.User{ID: "donor1", Role: domain.RoleDonor, IsActive: true}, nil)
		ts.campaigns.EXPECT().GetByOwner(mock.Anything, "stu1").Return(approved, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/users/stu1/campaign", bearerToken(t, "donor1", domain.RoleDonor), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("stranger lookup of approved campaign: got %d, want 200", rec.Code)
		}
	})
}

func TestUpdateProfileEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.users.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Email: "user@example.com", Role: domain.RoleDonor, IsActive: true}, nil)
	ts.users.EXPECT().UpdateProfile(mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	rec := ts.do(t, http.MethodPut, "/api/v1/auth/profile", bearerToken(t, "u1", domain.RoleDonor),
		`{"firstName":"Achieng","lastName":"Odhiambo","phone":"0712345678"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update: got %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.FirstName != "Achieng" {
		t.Fatalf("first name: got %s, want Achieng", resp.FirstName)
	}
	if resp.Email != "user@example.com" {
		t.Fatal("email must survive a profile update unchanged")
	}
}

func TestCampaignNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.campaigns.EXPECT().GetByID(mock.Anything, "missing").Return(nil, port.ErrNotFound)

	rec := ts.do(t, http.MethodGet, "/api/v1/campaigns/missing", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing campaign: got %d, want 404", rec.Code)
	}
}
