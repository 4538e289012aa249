package httpadapter

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lifted/internal/adapter/http/middleware"
	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

type donationRequest struct {
	CampaignID     string `json:"campaignId"`
	Amount         int64  `json:"amount"`
	PaymentMethod  string `json:"paymentMethod"`
	Message        string `json:"message"`
	Anonymous      bool   `json:"anonymous"`
	ReceiveUpdates bool   `json:"receiveUpdates"`
}

type refundRequest struct {
	Reason string `json:"reason"`
}

type donationResponse struct {
	ID                   string     `json:"id"`
	CampaignID           string     `json:"campaignId"`
	DonorID              string     `json:"donorId,omitempty"`
	Amount               int64      `json:"amount"`
	Currency             string     `json:"currency"`
	PaymentMethod        string     `json:"paymentMethod"`
	PaymentStatus        string     `json:"paymentStatus"`
	TransactionID        string     `json:"transactionId"`
	Message              string     `json:"message,omitempty"`
	Anonymous            bool       `json:"anonymous"`
	PlatformFee          int64      `json:"platformFee"`
	PaymentProcessingFee int64      `json:"paymentProcessingFee"`
	NetAmount            int64      `json:"netAmount"`
	RefundReason         string     `json:"refundReason,omitempty"`
	RefundedAt           *time.Time `json:"refundedAt,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

func toDonationResponse(d *domain.Donation) donationResponse {
	return donationResponse{
		ID:                   d.ID,
		CampaignID:           d.CampaignID,
		DonorID:              d.DonorID,
		Amount:               d.Amount,
		Currency:             d.Currency,
		PaymentMethod:        string(d.PaymentMethod),
		PaymentStatus:        string(d.PaymentStatus),
		TransactionID:        d.TransactionID,
		Message:              d.Message,
		Anonymous:            d.Anonymous,
		PlatformFee:          d.PlatformFee,
		PaymentProcessingFee: d.PaymentProcessingFee,
		NetAmount:            d.NetAmount,
		RefundReason:         d.RefundReason,
		RefundedAt:           d.RefundedAt,
		CreatedAt:            d.CreatedAt,
	}
}

func toDonationResponses(items []domain.Donation) []donationResponse {
	out := make([]donationResponse, 0, len(items))
	for i := range items {
		out = append(out, toDonationResponse(&items[i]))
	}
	return out
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) handleDonationCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	receipt, err := h.donations.Create(r.Context(), port.DonationInput{
		CampaignID:     req.CampaignID,
		DonorID:        middleware.UserIDFromContext(r.Context()),
		Amount:         req.Amount,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		Message:        req.Message,
		Anonymous:      req.Anonymous,
		ReceiveUpdates: req.ReceiveUpdates,
		IPAddress:      clientIP(r),
		UserAgent:      r.UserAgent(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"donationId":    receipt.DonationID,
		"transactionId": receipt.TransactionID,
		"netAmount":     receipt.NetAmount,
		"paymentStatus": string(receipt.PaymentStatus),
	})
}

func (h *Handler) handleDonationList(w http.ResponseWriter, r *http.Request) {
	actor := h.currentUser(w, r)
	if actor == nil {
		return
	}
	items, err := h.donations.ListFor(r.Context(), actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"donations": toDonationResponses(items),
		"count":     len(items),
	})
}

func (h *Handler) handleDonationGet(w http.ResponseWriter, r *http.Request) {
	actor := h.currentUser(w, r)
	if actor == nil {
		return
	}
	donation, err := h.donations.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDonationResponse(donation))
}

func (h *Handler) handleDonationRefund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	actorID := middleware.UserIDFromContext(r.Context())
	donation, err := h.donations.Refund(r.Context(), actorID, chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDonationResponse(donation))
}

// handleDonationStats aggregates completed donations over a period. Defaults
// to the last 30 days when no bounds are given.
func (h *Handler) handleDonationStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := time.Now()
	period := port.StatsPeriod{From: now.AddDate(0, 0, -30), To: now}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid from timestamp"})
			return
		}
		period.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid to timestamp"})
			return
		}
		period.To = t
	}
	if v := q.Get("campaign_id"); v != "" {
		period.CampaignID = &v
	}

	stats, err := h.donations.Stats(r.Context(), period)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	topDonors := make([]map[string]any, 0, len(stats.TopDonors))
	for _, d := range stats.TopDonors {
		topDonors = append(topDonors, map[string]any{
			"donorId": d.DonorID,
			"total":   d.Total,
			"count":   d.Count,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"totalDonations":  stats.TotalDonations,
		"totalAmount":     stats.TotalAmount,
		"averageDonation": stats.AverageDonation,
		"topDonors":       topDonors,
	})
}

func (h *Handler) handleCampaignDonations(w http.ResponseWriter, r *http.Request) {
	items, err := h.donations.ListByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"donations": toDonationResponses(items),
		"count":     len(items),
	})
}

func (h *Handler) handleDonorHistory(w http.ResponseWriter, r *http.Request) {
	actor := h.currentUser(w, r)
	if actor == nil {
		return
	}
	history, err := h.donations.History(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"donations":    toDonationResponses(history.Donations),
		"totalDonated": history.TotalDonated,
	})
}
