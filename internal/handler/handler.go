package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/mywealth360/finance-service/internal/service"
)

// Handler exposes the HTTP surface
type Handler struct {
	svc       *service.Service
	renewals  *service.RenewalService
	insights  *service.InsightService
	digests   *service.DigestService
	summaries *service.SummaryService
}

// NewHandler initializes the handler
func NewHandler(svc *service.Service, renewals *service.RenewalService,
	insights *service.InsightService, digests *service.DigestService,
	summaries *service.SummaryService) *Handler {
	return &Handler{
		svc:       svc,
		renewals:  renewals,
		insights:  insights,
		digests:   digests,
		summaries: summaries,
	}
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GenerateInsights evaluates the insight rules for the caller. The
// requested user id must match the authenticated identity.
func (h *Handler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID != callerID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	persist := r.URL.Query().Get("persist") == "true"
	report, err := h.insights.GenerateForUser(req.UserID, time.Now(), persist)
	if err != nil {
		http.Error(w, "Failed to generate insights", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// ProcessEmailQueue runs the three digest routines. Guarded by the
// admin secret middleware.
func (h *Handler) ProcessEmailQueue(w http.ResponseWriter, r *http.Request) {
	result := h.digests.ProcessAll(time.Now())
	respondJSON(w, http.StatusOK, result)
}

// RunRenewal triggers the monthly renewal for the caller
func (h *Handler) RunRenewal(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	result, err := h.renewals.RunForUser(callerID, time.Now())
	if err != nil {
		http.Error(w, "Failed to run renewal", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// PayBill marks one bill as paid
func (h *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	billID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid bill id", http.StatusBadRequest)
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.PayBill(callerID, billID, req.Amount, req.Method, time.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "paid"})
}

// PayBillsBulk marks many bills as paid; each fails independently
func (h *Handler) PayBillsBulk(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req struct {
		BillIDs []int64 `json:"bill_ids"`
		Method  string  `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.BillIDs) == 0 {
		http.Error(w, "bill_ids is required", http.StatusBadRequest)
		return
	}

	result := h.svc.PayBills(callerID, req.BillIDs, req.Method, time.Now())
	respondJSON(w, http.StatusOK, result)
}

// Summary returns the caller's aggregated financial position
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	summary, err := h.summaries.ForUser(callerID, time.Now())
	if err != nil {
		http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func userIDFromContext(r *http.Request) (int64, bool) {
	value, ok := r.Context().Value("userID").(string)
	if !ok || value == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
