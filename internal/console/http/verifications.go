package http

import (
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
)

type VerificationsHandler struct {
	list     listHandler[apisdk.Verification]
	Source   resource.Source[apisdk.Verification]
	Reviewer resource.Reviewer
}

func NewVerificationsHandler(
	screen *resource.ListScreen[apisdk.Verification],
	src resource.Source[apisdk.Verification],
	reviewer resource.Reviewer,
) *VerificationsHandler {
	return &VerificationsHandler{
		list:     listHandler[apisdk.Verification]{Screen: screen, Badge: verificationBadge},
		Source:   src,
		Reviewer: reviewer,
	}
}

// review loads the verification into a fresh review screen whose navigation
// is captured into *redirect.
func (h *VerificationsHandler) review(r *http.Request, redirect *session.Route) (*resource.ReviewScreen, error) {
	nav := session.NavigatorFunc(func(to session.Route) { *redirect = to })
	s := resource.NewReviewScreen(h.Source, h.Reviewer, nav, logger(r))
	return s, s.Load(r.Context(), r.PathValue("id"))
}

// HandleList godoc
//
//	@Summary		List identity verifications
//	@Tags			Verifications
//	@Produce		json
//	@Param			page	query		int	false	"1-based page"	default(1)
//	@Success		200		{object}	ListResponse[apisdk.Verification]
//	@Router			/v1/verifications [get]
func (h *VerificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.list.handleList(w, r)
}

// HandleGet godoc
//
//	@Summary		Get a verification
//	@Description	Returns the verification with document links, whether it can be reviewed, and the comment already on record.
//	@Tags			Verifications
//	@Produce		json
//	@Param			id	path		string	true	"Verification ID"
//	@Success		200	{object}	VerificationResponse
//	@Router			/v1/verifications/{id} [get]
func (h *VerificationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var redirect session.Route
	s, err := h.review(r, &redirect)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rec, _ := s.Record()
	httpx.WriteJSON(w, http.StatusOK, VerificationResponse{
		Row:       renderRow(rec, verificationBadge),
		CanReview: s.CanReview(),
		Comment:   s.Comment(),
	})
}

// HandleApprove godoc
//
//	@Summary		Approve a verification
//	@Description	Only verifications in the inVerification status can be approved. The comment is optional.
//	@Tags			Verifications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Verification ID"
//	@Param			request	body		CommentRequest	false	"Comment"
//	@Success		200		{object}	ReviewResponse
//	@Failure		409		{object}	httpx.ErrorBody	"Not awaiting review"
//	@Router			/v1/verifications/{id}/approve [post]
func (h *VerificationsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.handleReview(w, r, apisdk.VerificationApproved)
}

// HandleReject godoc
//
//	@Summary		Reject a verification
//	@Description	Only verifications in the inVerification status can be rejected, and a comment is required.
//	@Tags			Verifications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Verification ID"
//	@Param			request	body		CommentRequest	true	"Reason"
//	@Success		200		{object}	ReviewResponse
//	@Failure		400		{object}	httpx.ErrorBody	"Comment missing"
//	@Failure		409		{object}	httpx.ErrorBody	"Not awaiting review"
//	@Router			/v1/verifications/{id}/reject [post]
func (h *VerificationsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.handleReview(w, r, apisdk.VerificationRejected)
}

func (h *VerificationsHandler) handleReview(w http.ResponseWriter, r *http.Request, status string) {
	var req CommentRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	var redirect session.Route
	s, err := h.review(r, &redirect)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.SetComment(req.Comment)

	if status == apisdk.VerificationApproved {
		err = s.Approve(r.Context())
	} else {
		err = s.Reject(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ReviewResponse{Status: status, Redirect: string(redirect)})
}
