/*
Package apisdk provides a client SDK for the AlloColis REST backend.

# Overview

The backend owns users, shipment listings ("annonces"), identity
verifications and abuse reports. This package wraps its REST contract in
typed Go calls and normalises its response envelopes.

# Client vs Authorized

The package is organized around two main types:

  - Client: unauthenticated operations (login, registration, token renewal,
    newsletter and contact forms)
  - Authorized: operations that need a bearer token

Create a Client for public endpoints and the authentication flows:

	client := apisdk.NewClient("http://localhost:4000/api")

	auth, err := client.AdminLogin(ctx, email, password)

Derive an Authorized from it by handing over a TokenSource. The token is
requested from the source for every single call, at dispatch time, so there
is no ambient header to forget to clear after a logout:

	api := client.Authorized(manager) // manager implements TokenSource

	page, err := api.ListUsers(ctx, 1, 10)

# Pagination

The backend paginates in two different ways. Users are addressed with
`_start`/`_end` offsets and report their total in the X-Total-Count header;
announces and verifications take `page`/`limit` and wrap results in
`{data, total}`. Both are returned here as Page[T].

# Errors

Non-2xx responses carry a `{"message": ...}` body and surface as *APIError
with the message verbatim. Transport failures wrap ErrNetwork:

	if errors.Is(err, apisdk.ErrNetwork) {
		// offer a retry
	}

	var apiErr *apisdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// refresh token unknown to the backend
	}
*/
package apisdk
