package http

import (
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

type ReportsHandler struct {
	list listHandler[apisdk.ReportSummary]
}

func NewReportsHandler(screen *resource.ListScreen[apisdk.ReportSummary]) *ReportsHandler {
	return &ReportsHandler{list: listHandler[apisdk.ReportSummary]{Screen: screen, Badge: reportBadge}}
}

// HandleList godoc
//
//	@Summary		List reported announces
//	@Description	Announces with at least one abuse report, with a severity badge from the report count.
//	@Tags			Reports
//	@Produce		json
//	@Param			page	query		int	false	"1-based page"	default(1)
//	@Success		200		{object}	ListResponse[apisdk.ReportSummary]
//	@Router			/v1/reports [get]
func (h *ReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.list.handleList(w, r)
}
