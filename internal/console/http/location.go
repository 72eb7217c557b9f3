package http

import (
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
)

type LocationHandler struct {
	API *apisdk.Authorized
}

// HandleSearch godoc
//
//	@Summary		Address autocomplete
//	@Description	Returns place predictions. Fragments shorter than three characters return an empty list without a backend call.
//	@Tags			Location
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddressRequest	true	"Address fragment"
//	@Success		200		{object}	PredictionsResponse
//	@Router			/v1/location/search [post]
func (h *LocationHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	predictions, err := h.API.SearchPlaces(r.Context(), req.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if predictions == nil {
		predictions = []apisdk.Prediction{}
	}
	httpx.WriteJSON(w, http.StatusOK, PredictionsResponse{Predictions: predictions})
}

// HandlePlace godoc
//
//	@Summary		Place details
//	@Description	Geocoder details for a selected prediction, passed through untouched.
//	@Tags			Location
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddressRequest	true	"Place"
//	@Success		200		{object}	PlaceResponse
//	@Router			/v1/location/place [post]
func (h *LocationHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Address == "" {
		httpx.WriteError(w, http.StatusBadRequest, "address is required")
		return
	}

	place, err := h.API.GetPlace(r.Context(), req.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, PlaceResponse{Result: place})
}
