package apisdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/stretchr/testify/require"
)

// newBackend spins up a fake backend and a client pointed at it.
func newBackend(t *testing.T, mux *http.ServeMux) *apisdk.Client {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return apisdk.NewClient(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClientTrimsSlash(t *testing.T) {
	t.Parallel()

	c := apisdk.NewClient("http://localhost:4000/api/")
	require.Equal(t, "http://localhost:4000/api", c.BaseURL)
	require.Equal(t, apisdk.DefaultTimeout, c.HTTPClient.Timeout)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var creds apisdk.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Identifiants invalides"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token":        "at-1",
			"refreshToken": "rt-1",
			"user":         map[string]any{"id": "u1", "fullName": "Ada", "role": "admin"},
		})
	})
	c := newBackend(t, mux)

	t.Run("success", func(t *testing.T) {
		auth, err := c.AdminLogin(context.Background(), "ada@example.com", "secret")
		require.NoError(t, err)
		require.Equal(t, "at-1", auth.Token)
		require.Equal(t, "rt-1", auth.RefreshToken)
		require.Equal(t, "u1", auth.User.Key())
		require.True(t, auth.User.IsAdmin())
	})

	t.Run("message surfaced verbatim", func(t *testing.T) {
		_, err := c.AdminLogin(context.Background(), "ada@example.com", "wrong")

		var apiErr *apisdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Identifiants invalides", apiErr.Message)
		require.Equal(t, "Identifiants invalides", apisdk.Message(err))
	})
}

func TestRefreshTokenMissingUser(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": "at"})
	})
	c := newBackend(t, mux)

	_, err := c.RefreshToken(context.Background(), "rt")
	require.ErrorIs(t, err, apisdk.ErrUnexpectedResponse)
}

func TestErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := newBackend(t, mux)

	_, err := c.RefreshToken(context.Background(), "rt")
	require.Equal(t, http.StatusNotFound, apisdk.StatusCode(err))
	require.Contains(t, err.Error(), "Not Found")
}

func TestNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens here anymore

	_, err := apisdk.NewClient(srv.URL).Login(context.Background(), "a", "b")
	require.ErrorIs(t, err, apisdk.ErrNetwork)
	require.Zero(t, apisdk.StatusCode(err))
}

func TestSubscribeNewsletter(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /contact/newsletters", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["email"] == "dup@example.com" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email déjà inscrit"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("POST /contact/messages", func(w http.ResponseWriter, r *http.Request) {
		var msg apisdk.ContactMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		require.Equal(t, "Hello", msg.Message)
		writeJSON(w, http.StatusCreated, map[string]string{"message": "sent"})
	})
	c := newBackend(t, mux)

	require.NoError(t, c.SubscribeNewsletter(context.Background(), "new@example.com"))

	err := c.SubscribeNewsletter(context.Background(), "dup@example.com")
	require.ErrorIs(t, err, apisdk.ErrAlreadySubscribed)
	require.Contains(t, err.Error(), "Email déjà inscrit")

	require.NoError(t, c.SendContactMessage(context.Background(), apisdk.ContactMessage{
		Name: "Ada", Email: "ada@example.com", Message: "Hello",
	}))
}

func TestPageTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total, want int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, apisdk.Page[int]{Total: tc.total}.TotalPages(10), "total=%d", tc.total)
	}
}

func TestAuthorizedAsksForTokenOnEveryCall(t *testing.T) {
	t.Parallel()

	var seen []string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /annonces/{id}", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"_id": r.PathValue("id"), "status": "en_cours"})
	})
	c := newBackend(t, mux)

	var calls atomic.Int32
	api := c.Authorized(apisdk.TokenFunc(func(context.Context) (string, error) {
		n := calls.Add(1)
		if n == 1 {
			return "first", nil
		}
		return "second", nil
	}))

	_, err := api.GetAnnounce(context.Background(), "a1")
	require.NoError(t, err)
	_, err = api.GetAnnounce(context.Background(), "a1")
	require.NoError(t, err)

	// A renewed token is picked up without anyone touching a shared header
	require.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestAuthorizedTokenErrorSkipsRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	c := newBackend(t, mux)

	errNoSession := errors.New("no session")
	api := c.Authorized(apisdk.TokenFunc(func(context.Context) (string, error) {
		return "", errNoSession
	}))

	_, err := api.ListReports(context.Background())
	require.ErrorIs(t, err, errNoSession)
	require.Zero(t, hits.Load())
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "10", r.URL.Query().Get("_start"))
		require.Equal(t, "20", r.URL.Query().Get("_end"))
		w.Header().Set("X-Total-Count", "23")
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "u11", "fullName": "Bob", "role": "user", "verification": map[string]bool{"email": true}},
		})
	})
	c := newBackend(t, mux)

	page, err := c.Authorized(apisdk.StaticToken("t")).ListUsers(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Equal(t, 23, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "u11", page.Items[0].Key())
	require.True(t, page.Items[0].Verification.Email)
	require.Equal(t, 3, page.TotalPages(10))
}

func TestListUsersMissingTotal(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	c := newBackend(t, mux)

	page, err := c.Authorized(apisdk.StaticToken("t")).ListUsers(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Zero(t, page.Total)
	require.Equal(t, 1, page.TotalPages(10))
}

func TestDataEnvelopes(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /annonces/admin", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "3", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  []map[string]any{{"_id": "a1", "price": 12.5, "status": "en_cours"}},
			"total": 21,
		})
	})
	mux.HandleFunc("GET /users/admin/verifications", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  []map[string]any{{"_id": "v1", "status": "inVerification", "user": map[string]string{"fullName": "Ada"}}},
			"total": 1,
		})
	})
	c := newBackend(t, mux)
	api := c.Authorized(apisdk.StaticToken("t"))

	announces, err := api.ListAnnounces(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Equal(t, 21, announces.Total)
	require.Equal(t, 12.5, announces.Items[0].Price)

	verifications, err := api.ListVerifications(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, "Ada", verifications.Items[0].User.FullName)
	require.True(t, verifications.Items[0].Reviewable())
}

func TestReviewVerification(t *testing.T) {
	t.Parallel()

	var got []apisdk.ReviewRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/admin/verify-identity-documents", func(w http.ResponseWriter, r *http.Request) {
		var req apisdk.ReviewRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		got = append(got, req)
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	c := newBackend(t, mux)
	api := c.Authorized(apisdk.StaticToken("t"))

	require.NoError(t, api.ApproveVerification(context.Background(), "v1", ""))
	require.NoError(t, api.RejectVerification(context.Background(), "v2", "blurry"))

	require.Equal(t, []apisdk.ReviewRequest{
		{VerificationID: "v1", Status: "approved"},
		{VerificationID: "v2", Status: "rejected", AdminComment: "blurry"},
	}, got)
}

func TestListReports(t *testing.T) {
	t.Parallel()

	success := true
	mux := http.NewServeMux()
	mux.HandleFunc("GET /annonces/all-reports", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": success,
			"data": []map[string]any{{
				"_id":        "r1",
				"count":      4,
				"announce":   map[string]string{"_id": "a1", "title": "Paris → Dakar"},
				"lastReport": map[string]string{"reason": "spam"},
			}},
		})
	})
	c := newBackend(t, mux)
	api := c.Authorized(apisdk.StaticToken("t"))

	reports, err := api.ListReports(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, reports[0].Count)
	require.Equal(t, "spam", reports[0].LastReport.Reason)

	success = false
	_, err = api.ListReports(context.Background())
	require.ErrorIs(t, err, apisdk.ErrUnexpectedResponse)
}

func TestUpdateUserEchoShapes(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /users/wrapped", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": "wrapped", "fullName": "Server"}})
	})
	mux.HandleFunc("PUT /users/bare", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"_id": "bare", "fullName": "Server"})
	})
	mux.HandleFunc("PUT /users/none", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "updated"})
	})
	c := newBackend(t, mux)
	api := c.Authorized(apisdk.StaticToken("t"))

	u, err := api.UpdateUser(context.Background(), "wrapped", map[string]string{"fullName": "Client"})
	require.NoError(t, err)
	require.Equal(t, "Server", u.FullName)

	u, err = api.UpdateUser(context.Background(), "bare", map[string]string{"fullName": "Client"})
	require.NoError(t, err)
	require.Equal(t, "bare", u.Key())

	u, err = api.UpdateUser(context.Background(), "none", map[string]string{"fullName": "Client"})
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUploadPhoto(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/u1/photo", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		f, hdr, err := r.FormFile("photo")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "me.png", hdr.Filename)
		require.Equal(t, "png-bytes", string(data))

		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": "u1", "photo": "https://cdn/me.png"}})
	})
	mux.HandleFunc("DELETE /users/u1/photo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := newBackend(t, mux)
	api := c.Authorized(apisdk.StaticToken("t"))

	u, err := api.UploadPhoto(context.Background(), "u1", "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn/me.png", u.Photo)

	require.NoError(t, api.DeletePhoto(context.Background(), "u1"))
}

func TestSearchPlaces(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /location/search", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{
			"predictions": []map[string]string{{"description": "Dakar, Sénégal", "place_id": "p1"}},
		})
	})
	mux.HandleFunc("POST /location/getLocation", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "p1", body["address"])
		writeJSON(w, http.StatusOK, map[string]any{"result": map[string]any{"lat": 14.7, "lng": -17.4}})
	})
	c := newBackend(t, mux)
	api := c.Authorized(apisdk.StaticToken("t"))

	t.Run("short query stays local", func(t *testing.T) {
		preds, err := api.SearchPlaces(context.Background(), "Da")
		require.NoError(t, err)
		require.Empty(t, preds)
		require.Zero(t, hits.Load())
	})

	t.Run("predictions", func(t *testing.T) {
		preds, err := api.SearchPlaces(context.Background(), "Dak")
		require.NoError(t, err)
		require.Equal(t, "p1", preds[0].PlaceID)
	})

	t.Run("details", func(t *testing.T) {
		details, err := api.GetPlace(context.Background(), "p1")
		require.NoError(t, err)
		require.JSONEq(t, `{"lat":14.7,"lng":-17.4}`, string(details))
	})
}
