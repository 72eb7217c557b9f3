package apisdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListVerifications returns one page of identity verifications.
func (a *Authorized) ListVerifications(ctx context.Context, page, limit int) (Page[Verification], error) {
	var env dataEnvelope[Verification]
	path := fmt.Sprintf("/users/admin/verifications?page=%d&limit=%d", page, limit)
	if err := a.doAuthJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return Page[Verification]{}, err
	}
	return Page[Verification]{Items: env.Data, Total: env.Total}, nil
}

// GetVerification fetches one verification.
func (a *Authorized) GetVerification(ctx context.Context, id string) (*Verification, error) {
	var out Verification
	if err := a.doAuthJSON(ctx, http.MethodGet, "/users/admin/verifications/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveVerification marks the documents as valid. comment may be empty.
func (a *Authorized) ApproveVerification(ctx context.Context, id, comment string) error {
	return a.review(ctx, ReviewRequest{VerificationID: id, Status: VerificationApproved, AdminComment: comment})
}

// RejectVerification refuses the documents with an explanation.
func (a *Authorized) RejectVerification(ctx context.Context, id, comment string) error {
	return a.review(ctx, ReviewRequest{VerificationID: id, Status: VerificationRejected, AdminComment: comment})
}

func (a *Authorized) review(ctx context.Context, req ReviewRequest) error {
	return a.doAuthJSON(ctx, http.MethodPost, "/users/admin/verify-identity-documents", req, nil)
}
