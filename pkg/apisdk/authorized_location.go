package apisdk

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"
)

// SearchPlaces autocompletes an address. Queries shorter than MinPlaceQuery
// characters return no predictions without calling the backend.
func (a *Authorized) SearchPlaces(ctx context.Context, query string) ([]Prediction, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinPlaceQuery {
		return nil, nil
	}

	var out struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := a.doAuthJSON(ctx, http.MethodPost, "/location/search", map[string]string{"address": query}, &out); err != nil {
		return nil, err
	}
	return out.Predictions, nil
}

// GetPlace resolves a place id from a prediction into its details.
func (a *Authorized) GetPlace(ctx context.Context, placeID string) (PlaceDetails, error) {
	var out struct {
		Result PlaceDetails `json:"result"`
	}
	if err := a.doAuthJSON(ctx, http.MethodPost, "/location/getLocation", map[string]string{"address": placeID}, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}
