package apisdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListAnnounces returns one page of listings for moderation.
func (a *Authorized) ListAnnounces(ctx context.Context, page, limit int) (Page[Announce], error) {
	var env dataEnvelope[Announce]
	path := fmt.Sprintf("/annonces/admin?page=%d&limit=%d", page, limit)
	if err := a.doAuthJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return Page[Announce]{}, err
	}
	return Page[Announce]{Items: env.Data, Total: env.Total}, nil
}

// GetAnnounce fetches one listing.
func (a *Authorized) GetAnnounce(ctx context.Context, id string) (*Announce, error) {
	var out Announce
	if err := a.doAuthJSON(ctx, http.MethodGet, "/annonces/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAnnounce sends changes for listing id.
func (a *Authorized) UpdateAnnounce(ctx context.Context, id string, changes any) error {
	return a.doAuthJSON(ctx, http.MethodPut, "/annonces/"+escape(id), changes, nil)
}

// DeleteAnnounce removes a listing.
func (a *Authorized) DeleteAnnounce(ctx context.Context, id string) error {
	return a.doAuthJSON(ctx, http.MethodDelete, "/annonces/"+escape(id), nil, nil)
}

// ReportAnnounce files an abuse report against a listing.
func (a *Authorized) ReportAnnounce(ctx context.Context, id string, report ReportRequest) error {
	return a.doAuthJSON(ctx, http.MethodPost, "/annonces/"+escape(id)+"/reports", report, nil)
}
