package apisdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// ListUsers returns one page of users. The backend addresses users by
// offset and reports the total in X-Total-Count.
func (a *Authorized) ListUsers(ctx context.Context, page, limit int) (Page[User], error) {
	start := (page - 1) * limit
	path := fmt.Sprintf("/users?_start=%d&_end=%d", start, start+limit)

	resp, err := a.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return Page[User]{}, err
	}

	// Missing or garbled header counts as zero, matching the web console
	total, _ := strconv.Atoi(resp.Header.Get("X-Total-Count"))

	var users []User
	if err := decodeJSON(resp, &users); err != nil {
		return Page[User]{}, err
	}

	return Page[User]{Items: users, Total: total}, nil
}

// GetUser fetches one user.
func (a *Authorized) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := a.doAuthJSON(ctx, http.MethodGet, "/users/"+escape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser sends changes for user id. The returned user is the server's
// representation, or nil when the backend did not echo one.
func (a *Authorized) UpdateUser(ctx context.Context, id string, changes any) (*User, error) {
	var raw json.RawMessage
	if err := a.doAuthJSON(ctx, http.MethodPut, "/users/"+escape(id), changes, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw), nil
}

// DeleteUser removes an account.
func (a *Authorized) DeleteUser(ctx context.Context, id string) error {
	return a.doAuthJSON(ctx, http.MethodDelete, "/users/"+escape(id), nil, nil)
}

// UploadPhoto replaces a user's profile photo. The returned user is nil when
// the backend did not echo one.
func (a *Authorized) UploadPhoto(ctx context.Context, id, filename string, photo io.Reader) (*User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	resp, err := a.doAuthRequest(ctx, http.MethodPost, "/users/"+escape(id)+"/photo", &buf,
		map[string]string{"Content-Type": mw.FormDataContentType()})
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := decodeJSON(resp, &raw); err != nil {
		return nil, err
	}
	return decodeUser(raw), nil
}

// DeletePhoto removes a user's profile photo.
func (a *Authorized) DeletePhoto(ctx context.Context, id string) error {
	return a.doAuthJSON(ctx, http.MethodDelete, "/users/"+escape(id)+"/photo", nil, nil)
}
