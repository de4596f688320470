package protocol

import (
	"net/http"

	"wagerpool_backend/internal/converter"
	"wagerpool_backend/internal/model"
	"wagerpool_backend/internal/repository"
	"wagerpool_backend/pkg/resp"
)

type HandlerDeps struct {
	Cfg       model.ProtocolConfig
	StatsRepo repository.StatsRepository
}

type Handler struct {
	cfg       model.ProtocolConfig
	statsRepo repository.StatsRepository
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		cfg:       deps.Cfg,
		statsRepo: deps.StatsRepo,
	}
}

// Config exposes the protocol settings clients need to build valid bets.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.cfg))
}

// Stats exposes the process-wide settlement counters.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.statsRepo.Snapshot()))
}
