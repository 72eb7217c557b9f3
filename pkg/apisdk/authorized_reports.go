package apisdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListReports returns every reported listing with its report count. The
// backend does not paginate this route.
func (a *Authorized) ListReports(ctx context.Context) ([]ReportSummary, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    []ReportSummary `json:"data"`
	}
	if err := a.doAuthJSON(ctx, http.MethodGet, "/annonces/all-reports", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: reports request was not successful", ErrUnexpectedResponse)
	}
	return env.Data, nil
}
