package httpapi

import (
	"net/http"

	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/pkg/httpx"
	"github.com/spendwise/spendwise/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// HandleSummary godoc
//
//	@Summary		Expense statistics
//	@Description	Grand total, count, per-category breakdown and five most recent expenses of the authenticated user.
//	@Tags			Statistics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Response
//	@Router			/api/stats [get].
func (h *StatsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := httpx.IdentityFromContext(ctx)

	stats, err := h.StatsService.Summary(ctx, identity.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to compute stats", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	httpx.WriteData(w, http.StatusOK, stats)
}
