package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"lifted/internal/adapter/http/middleware"
	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

type campaignRequest struct {
	Institution  string     `json:"institution"`
	Course       string     `json:"course"`
	YearOfStudy  int        `json:"yearOfStudy"`
	StudentID    string     `json:"studentId"`
	Story        string     `json:"story"`
	FundingType  string     `json:"fundingType"`
	AmountNeeded int64      `json:"amountNeeded"`
	Urgent       bool       `json:"urgent"`
	Deadline     *time.Time `json:"deadline"`
}

func (req campaignRequest) toInput() port.CampaignInput {
	return port.CampaignInput{
		Institution:  req.Institution,
		Course:       req.Course,
		YearOfStudy:  req.YearOfStudy,
		StudentID:    req.StudentID,
		Story:        req.Story,
		FundingType:  domain.FundingType(req.FundingType),
		AmountNeeded: req.AmountNeeded,
		Urgent:       req.Urgent,
		Deadline:     req.Deadline,
	}
}

type campaignResponse struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"ownerId"`
	Institution  string     `json:"institution"`
	Course       string     `json:"course"`
	YearOfStudy  int        `json:"yearOfStudy"`
	StudentID    string     `json:"studentId,omitempty"`
	Story        string     `json:"story"`
	FundingType  string     `json:"fundingType"`
	AmountNeeded int64      `json:"amountNeeded"`
	AmountRaised int64      `json:"amountRaised"`
	DonorCount   int64      `json:"donorCount"`
	Progress     int        `json:"progress"`
	Remaining    int64      `json:"remaining"`
	DaysLeft     *int       `json:"daysLeft,omitempty"`
	Status       string     `json:"status"`
	Urgent       bool       `json:"urgent"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Views        int64      `json:"views"`
	Shares       int64      `json:"shares"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Institution:  c.Institution,
		Course:       c.Course,
		YearOfStudy:  c.YearOfStudy,
		StudentID:    c.StudentID,
		Story:        c.Story,
		FundingType:  string(c.FundingType),
		AmountNeeded: c.AmountNeeded,
		AmountRaised: c.AmountRaised,
		DonorCount:   c.DonorCount,
		Progress:     c.Progress(),
		Remaining:    c.Remaining(),
		DaysLeft:     c.DaysLeft(time.Now()),
		Status:       string(c.Status),
		Urgent:       c.Urgent,
		Deadline:     c.Deadline,
		CompletedAt:  c.CompletedAt,
		Views:        c.Views,
		Shares:       c.Shares,
		CreatedAt:    c.CreatedAt,
	}
}

func toCampaignResponses(items []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(items))
	for i := range items {
		out = append(out, toCampaignResponse(&items[i]))
	}
	return out
}

type campaignUpdateResponse struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCampaignUpdateResponse(u *domain.CampaignUpdate) campaignUpdateResponse {
	return campaignUpdateResponse{
		ID:         u.ID,
		CampaignID: u.CampaignID,
		Title:      u.Title,
		Message:    u.Message,
		CreatedAt:  u.CreatedAt,
	}
}

func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.CampaignFilter{}
	if v := q.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("urgent"); v == "true" {
		urgent := true
		filter.Urgent = &urgent
	}
	if v := q.Get("funding_type"); v != "" {
		ft := domain.FundingType(v)
		if !domain.ValidFundingType(ft) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid funding_type"})
			return
		}
		filter.FundingType = &ft
	}

	page, err := h.campaigns.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"campaigns":   toCampaignResponses(page.Campaigns),
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

func (h *Handler) handleCampaignSearch(w http.ResponseWriter, r *http.Request) {
	items, err := h.campaigns.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": toCampaignResponses(items),
		"count":     len(items),
	})
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// handleCampaignShare counts a social share. Unauthenticated, since sharing
// happens from public campaign pages.
func (h *Handler) handleCampaignShare(w http.ResponseWriter, r *http.Request) {
	shares, err := h.campaigns.Share(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"shares": shares})
}

// handleUserCampaign returns a user's active campaign. Owners and admins see
// it in any status; anyone else only once it is publicly visible.
func (h *Handler) handleUserCampaign(w http.ResponseWriter, r *http.Request) {
	actor := h.currentUser(w, r)
	if actor == nil {
		return
	}
	userID := chi.URLParam(r, "id")
	campaign, err := h.campaigns.GetByOwner(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	public := campaign.Status == domain.CampaignApproved || campaign.Status == domain.CampaignCompleted
	if !public && userID != actor.ID && actor.Role != domain.RoleAdmin {
		h.writeError(w, r, port.ErrNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ownerID := middleware.UserIDFromContext(r.Context())
	campaign, err := h.campaigns.Create(r.Context(), ownerID, req.toInput())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	actor := h.currentUser(w, r)
	if actor == nil {
		return
	}
	campaign, err := h.campaigns.Update(r.Context(), actor, chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	actor := h.currentUser(w, r)
	if actor == nil {
		return
	}
	if err := h.campaigns.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "campaign deleted"})
}

func (h *Handler) handleCampaignUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := h.campaigns.ListUpdates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignUpdateResponse, 0, len(updates))
	for i := range updates {
		out = append(out, toCampaignUpdateResponse(&updates[i]))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"updates": out})
}

func (h *Handler) handleCampaignAddUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	actorID := middleware.UserIDFromContext(r.Context())
	update, err := h.campaigns.AddUpdate(r.Context(), actorID, chi.URLParam(r, "id"), req.Title, req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignUpdateResponse(update))
}

func (h *Handler) handleCampaignApprove(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.UserIDFromContext(r.Context())
	campaign, err := h.campaigns.Approve(r.Context(), adminID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *Handler) handleCampaignReject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	adminID := middleware.UserIDFromContext(r.Context())
	campaign, err := h.campaigns.Reject(r.Context(), adminID, chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}
