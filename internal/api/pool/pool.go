package pool

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wagerpool_backend/internal/api"
	dto "wagerpool_backend/internal/api/dto/pool"
	"wagerpool_backend/internal/converter"
	"wagerpool_backend/internal/middleware"
	"wagerpool_backend/internal/service"
	"wagerpool_backend/pkg/req"
	"wagerpool_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.PoolService
}

type Handler struct {
	serv service.PoolService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create registers a new pool with the authenticated caller as authority.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	authority, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "owner not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.CreatePoolRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pool, err := h.serv.CreatePool(r.Context(), converter.ToCreatePool(payload, authority))
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPoolResponse(*pool))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "owner not found in context", http.StatusUnauthorized)
		return
	}

	poolID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid pool id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	change, err := h.serv.Deposit(r.Context(), poolID, owner, payload.Amount)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPoolChangeResponse(*change))
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "owner not found in context", http.StatusUnauthorized)
		return
	}

	poolID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid pool id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	change, err := h.serv.Withdraw(r.Context(), poolID, owner, payload.LPAmount)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPoolChangeResponse(*change))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	poolID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid pool id", http.StatusBadRequest)
		return
	}

	pool, err := h.serv.Pool(r.Context(), poolID)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPoolResponse(*pool))
}
