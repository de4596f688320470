package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wagerpool_backend/internal/api"
	dto "wagerpool_backend/internal/api/dto/game"
	"wagerpool_backend/internal/converter"
	"wagerpool_backend/internal/middleware"
	"wagerpool_backend/internal/service"
	"wagerpool_backend/pkg/req"
	"wagerpool_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Open places a wager and opens a round for the authenticated player.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "owner not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.OpenRoundRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	poolID, err := uuid.Parse(payload.PoolID)
	if err != nil {
		http.Error(w, "invalid pool id", http.StatusBadRequest)
		return
	}

	game, err := h.serv.OpenRound(r.Context(), converter.ToOpenRound(payload, owner, poolID))
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameResponse(*game))
}

// Settle reveals the committed seed for a round. Called by the randomness
// authority.
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[dto.SettleRoundRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.SettleRound(r.Context(), gameID, payload.RevealedSeed, payload.NextSeedHash)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettleRoundResponse(*result))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return
	}

	game, err := h.serv.Game(r.Context(), gameID)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*game))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	player, err := h.serv.Player(r.Context(), owner)
	if err != nil {
		api.WriteServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*player))
}

// ProvideSeedHash installs the initial commitment for a player.
func (h *Handler) ProvideSeedHash(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	payload, err := req.Decode[dto.ProvideSeedHashRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.ProvideSeedHash(r.Context(), owner, payload.SeedHash); err != nil {
		api.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
