package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"

	_ "github.com/NazifToure01/AlloColis-admin/api/console" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	client  *apisdk.Client
	Session *session.Manager

	users         *resource.ListScreen[apisdk.User]
	announces     *resource.ListScreen[apisdk.Announce]
	verifications *resource.ListScreen[apisdk.Verification]
	reports       *resource.ListScreen[apisdk.ReportSummary]
}

func NewRouter(
	buildVersion string,
	st store.Store,
	client *apisdk.Client,
	mgr *session.Manager,
	logger *slog.Logger,
) *Router {
	api := mgr.API()

	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		client:       client,
		Session:      mgr,

		// The browser confirms before it sends DELETE.
		users:         resource.NewListScreen(resource.Users(api), resource.Confirmed, logger),
		announces:     resource.NewListScreen(resource.Announces(api), resource.Confirmed, logger),
		verifications: resource.NewListScreen(resource.Verifications(api), resource.Confirmed, logger),
		reports:       resource.NewListScreen(resource.Reports(api), resource.Confirmed, logger),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerUsers()
	r.registerAnnounces()
	r.registerVerifications()
	r.registerReports()
	r.registerLocation()
	r.registerPublic()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AlloColis Admin Console API
//	@version		0.1.0
//	@description	Back-office API for the AlloColis parcel-sharing platform.
//	@description
//	@description				The console holds one operator session and forwards calls to the AlloColis backend with that session's access token.
//	@description				Routes outside /v1/session, /v1/newsletter, /v1/contact and the health probes answer 401 until an operator signs in.
//
//	@contact.name				AlloColis
//	@contact.url				https://github.com/NazifToure01/AlloColis-admin
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// principal reports the signed-in operator.
func (r *Router) principal(context.Context) (httpx.Principal, bool) {
	snap := r.Session.Snapshot()
	if !snap.Authenticated() {
		return httpx.Principal{}, false
	}
	return httpx.Principal{UserID: snap.Identity.Key(), Role: snap.Identity.Role}, true
}

// signedIn guards routes any signed-in identity may use.
func (r *Router) signedIn(h http.Handler, limit httpx.Limit) http.Handler {
	return httpx.Chain(h,
		httpx.RequireSession(r.principal),
		httpx.PerOperator(limit),
	)
}

// admin guards back-office routes.
func (r *Router) admin(h http.HandlerFunc, limit httpx.Limit) http.Handler {
	return httpx.Chain(h,
		httpx.RequireSession(r.principal),
		httpx.RequireRole(apisdk.RoleAdmin),
		httpx.PerOperator(limit),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{Session: r.Session}

	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.PerClient(httpx.ReadLimit),
		),
	)

	// Password attempts are limited per client and account
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.PerLogin(httpx.LoginLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/session/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.PerClient(httpx.FormLimit),
		),
	)
	r.Mux.Handle("POST /v1/session/renew",
		httpx.Chain(http.HandlerFunc(h.HandleRenew),
			httpx.PerClient(httpx.WriteLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.PerClient(httpx.WriteLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/session/identity", r.signedIn(http.HandlerFunc(h.HandleUpdateIdentity), httpx.WriteLimit))
	r.Mux.Handle("PUT /v1/session/identity/photo", r.signedIn(http.HandlerFunc(h.HandleUploadPhoto), httpx.WriteLimit))
	r.Mux.Handle("DELETE /v1/session/identity/photo", r.signedIn(http.HandlerFunc(h.HandleDeletePhoto), httpx.WriteLimit))
	r.Mux.Handle("DELETE /v1/session/account", r.signedIn(http.HandlerFunc(h.HandleDeleteAccount), httpx.FormLimit))
	r.Mux.Handle("POST /v1/announces/{id}/reports", r.signedIn(http.HandlerFunc(h.HandleReportAnnounce), httpx.WriteLimit))
}

func (r *Router) registerUsers() {
	h := NewUsersHandler(r.users, resource.Users(r.Session.API()))

	r.Mux.Handle("GET /v1/users", r.admin(h.HandleList, httpx.ReadLimit))
	r.Mux.Handle("GET /v1/users/{id}", r.admin(h.HandleGet, httpx.ReadLimit))
	r.Mux.Handle("PATCH /v1/users/{id}", r.admin(h.HandleUpdate, httpx.WriteLimit))
	r.Mux.Handle("DELETE /v1/users/{id}", r.admin(h.HandleDelete, httpx.WriteLimit))
}

func (r *Router) registerAnnounces() {
	h := NewAnnouncesHandler(r.announces, resource.Announces(r.Session.API()))

	r.Mux.Handle("GET /v1/announces", r.admin(h.HandleList, httpx.ReadLimit))
	r.Mux.Handle("GET /v1/announces/{id}", r.admin(h.HandleGet, httpx.ReadLimit))
	r.Mux.Handle("PATCH /v1/announces/{id}", r.admin(h.HandleUpdate, httpx.WriteLimit))
	r.Mux.Handle("DELETE /v1/announces/{id}", r.admin(h.HandleDelete, httpx.WriteLimit))
}

func (r *Router) registerVerifications() {
	api := r.Session.API()
	h := NewVerificationsHandler(r.verifications, resource.Verifications(api), api)

	r.Mux.Handle("GET /v1/verifications", r.admin(h.HandleList, httpx.ReadLimit))
	r.Mux.Handle("GET /v1/verifications/{id}", r.admin(h.HandleGet, httpx.ReadLimit))
	r.Mux.Handle("POST /v1/verifications/{id}/approve", r.admin(h.HandleApprove, httpx.WriteLimit))
	r.Mux.Handle("POST /v1/verifications/{id}/reject", r.admin(h.HandleReject, httpx.WriteLimit))
}

func (r *Router) registerReports() {
	h := NewReportsHandler(r.reports)

	r.Mux.Handle("GET /v1/reports", r.admin(h.HandleList, httpx.ReadLimit))
}

func (r *Router) registerLocation() {
	h := &LocationHandler{API: r.Session.API()}

	r.Mux.Handle("POST /v1/location/search", r.signedIn(http.HandlerFunc(h.HandleSearch), httpx.ReadLimit))
	r.Mux.Handle("POST /v1/location/place", r.signedIn(http.HandlerFunc(h.HandlePlace), httpx.WriteLimit))
}

func (r *Router) registerPublic() {
	h := &ContactHandler{Client: r.client}

	// Public forms reach the backend unauthenticated
	r.Mux.Handle("POST /v1/newsletter",
		httpx.Chain(http.HandlerFunc(h.HandleNewsletter),
			httpx.PerClient(httpx.FormLimit),
		),
	)
	r.Mux.Handle("POST /v1/contact",
		httpx.Chain(http.HandlerFunc(h.HandleContact),
			httpx.PerClient(httpx.FormLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Monitoring may poll these often
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.PerClient(httpx.ReadLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Session),
			httpx.PerClient(httpx.ReadLimit),
		),
	)
}
