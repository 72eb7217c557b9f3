package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

// DeleteAccount deletes user id at the backend and then signs out. On
// failure nothing changes locally.
func (m *Manager) DeleteAccount(ctx context.Context, id string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrDeletion, err)
	}

	m.Logger.Info("account deleted", "user_id", id)
	m.forceLogout(ctx)
	return nil
}

// UpdateIdentity sends changes for the signed-in user. The identity is
// replaced by the server's representation when one comes back, otherwise
// the changes are merged into the current identity. On failure the
// identity is left alone.
func (m *Manager) UpdateIdentity(ctx context.Context, changes map[string]any) error {
	current, err := m.currentIdentity()
	if err != nil {
		return err
	}
	id := current.Key()

	server, err := m.api.UpdateUser(ctx, id, changes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}

	next := current
	if server != nil {
		next = *server
	} else if next, err = mergeUser(current, changes); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}

	m.replaceIdentity(id, next)
	return nil
}

// UpdatePhoto uploads a new profile photo for the signed-in user.
func (m *Manager) UpdatePhoto(ctx context.Context, filename string, photo io.Reader) error {
	current, err := m.currentIdentity()
	if err != nil {
		return err
	}
	id := current.Key()

	server, err := m.api.UploadPhoto(ctx, id, filename, photo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}
	if server != nil {
		m.replaceIdentity(id, *server)
	}
	return nil
}

// DeletePhoto removes the signed-in user's profile photo.
func (m *Manager) DeletePhoto(ctx context.Context) error {
	current, err := m.currentIdentity()
	if err != nil {
		return err
	}
	id := current.Key()

	if err := m.api.DeletePhoto(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}

	current.Photo = ""
	m.replaceIdentity(id, current)
	return nil
}

// ReportAnnounce files an abuse report against a listing on behalf of the
// signed-in user.
func (m *Manager) ReportAnnounce(ctx context.Context, announceID, reason, details string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return m.api.ReportAnnounce(ctx, announceID, apisdk.ReportRequest{
		Reason:  strings.TrimSpace(reason),
		Details: strings.TrimSpace(details),
	})
}

// mergeUser overlays changes onto u using the user's JSON field names.
func mergeUser(u apisdk.User, changes map[string]any) (apisdk.User, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return u, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return u, err
	}
	for k, v := range changes {
		fields[k] = v
	}

	raw, err = json.Marshal(fields)
	if err != nil {
		return u, err
	}

	var out apisdk.User
	if err := json.Unmarshal(raw, &out); err != nil {
		return u, err
	}
	return out, nil
}
