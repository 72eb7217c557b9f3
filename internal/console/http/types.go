package http

import (
	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Store   string `json:"store"`
	Session string `json:"session"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Session
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes the console session. Redirect is the screen the
// UI should show next.
type SessionResponse struct {
	State    string       `json:"state"`
	Identity *apisdk.User `json:"identity,omitempty"`
	Loading  bool         `json:"loading"`
	Redirect string       `json:"redirect"`
}

func sessionResponse(snap session.Snapshot) SessionResponse {
	resp := SessionResponse{
		State:    snap.StateName(),
		Identity: snap.Identity,
		Loading:  snap.Loading,
		Redirect: string(session.RouteLogin),
	}
	if snap.Authenticated() {
		resp.Redirect = string(session.RouteHome)
	}
	return resp
}

type ReportAnnounceRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

// ============================================================================
// Resources
// ============================================================================

// Row is one record together with the badge it is drawn with.
type Row[T any] struct {
	Item  T             `json:"item"`
	Tone  resource.Tone `json:"tone"`
	Label string        `json:"label,omitempty"`
}

// ListResponse is a rendered list screen. While a newer request for the same
// screen is in flight Pending is set, Rows is empty and SkeletonRows tells
// the UI how many placeholder rows to draw.
type ListResponse[T any] struct {
	Page         int      `json:"page"`
	TotalPages   int      `json:"totalPages"`
	PageSize     int      `json:"pageSize"`
	Rows         []Row[T] `json:"rows"`
	Pending      bool     `json:"pending"`
	SkeletonRows int      `json:"skeletonRows"`
	CanPrev      bool     `json:"canPrev"`
	CanNext      bool     `json:"canNext"`
}

// badge picks the tone and label for a record.
type badge[T any] func(T) (resource.Tone, string)

func renderList[T any](v resource.ListView[T], b badge[T]) ListResponse[T] {
	resp := ListResponse[T]{
		Page:         v.Page,
		TotalPages:   v.TotalPages,
		PageSize:     resource.PageSize,
		Rows:         make([]Row[T], 0, len(v.Items)),
		Pending:      v.Pending,
		SkeletonRows: v.Skeleton,
		CanPrev:      v.CanPrev,
		CanNext:      v.CanNext,
	}
	for _, item := range v.Items {
		resp.Rows = append(resp.Rows, renderRow(item, b))
	}
	return resp
}

func renderRow[T any](item T, b badge[T]) Row[T] {
	row := Row[T]{Item: item}
	if b != nil {
		row.Tone, row.Label = b(item)
	}
	return row
}

func userBadge(u apisdk.User) (resource.Tone, string) {
	return resource.RoleTone(u.Role), u.Role
}

func announceBadge(a apisdk.Announce) (resource.Tone, string) {
	return resource.AnnounceTone(a.Status), resource.AnnounceLabel(a.Status)
}

func verificationBadge(v apisdk.Verification) (resource.Tone, string) {
	return resource.VerificationTone(v.Status), resource.VerificationLabel(v.Status)
}

func reportBadge(r apisdk.ReportSummary) (resource.Tone, string) {
	sev := resource.ReportSeverity(r.Count)
	return sev.Tone(), string(sev)
}

// VerificationResponse is the review page for one verification.
type VerificationResponse struct {
	Row[apisdk.Verification]
	CanReview bool   `json:"canReview"`
	Comment   string `json:"comment"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

// ReviewResponse tells the UI where to go after a review.
type ReviewResponse struct {
	Status   string `json:"status"`
	Redirect string `json:"redirect"`
}

// ============================================================================
// Location & contact
// ============================================================================

type AddressRequest struct {
	Address string `json:"address"`
}

type PredictionsResponse struct {
	Predictions []apisdk.Prediction `json:"predictions"`
}

type PlaceResponse struct {
	Result apisdk.PlaceDetails `json:"result"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}
