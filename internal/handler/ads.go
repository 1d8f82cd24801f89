package handler

import (
	"net/http"

	"github.com/osse101/DecisionSpinner_Go/internal/ads"
	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// AdUnitsResponse lists registered ad units
type AdUnitsResponse struct {
	ScriptURL  string               `json:"script_url,omitempty"`
	Units      []domain.AdUnit      `json:"units"`
	Placements []domain.AdPlacement `json:"placements"`
}

// CreateAdUnitRequest registers the unit for a placement
type CreateAdUnitRequest struct {
	Placement string `json:"placement" validate:"required,max=64"`
}

// HandleListAdUnits returns active units and the placement catalogue
// @Summary List ad units
// @Tags ads
// @Produce json
// @Success 200 {object} AdUnitsResponse
// @Router /ads/units [get]
func HandleListAdUnits(svc ads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		units := svc.Units()
		if units == nil {
			units = []domain.AdUnit{}
		}
		respondJSON(w, http.StatusOK, AdUnitsResponse{
			ScriptURL:  svc.ScriptURL(),
			Units:      units,
			Placements: svc.Placements(),
		})
	}
}

// HandleCreateAdUnit registers an ad unit for a placement
// @Summary Create ad unit
// @Tags ads
// @Accept json
// @Produce json
// @Param request body CreateAdUnitRequest true "Placement"
// @Success 201 {object} domain.AdUnit
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /ads/units [post]
func HandleCreateAdUnit(svc ads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAdUnitRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create ad unit"); err != nil {
			return
		}

		unit, err := svc.CreateAdUnit(r.Context(), req.Placement)
		if err != nil {
			respondServiceError(w, r, "create ad unit", err)
			return
		}
		respondJSON(w, http.StatusCreated, unit)
	}
}

// HandleRemoveAdUnit unregisters an ad unit
// @Summary Remove ad unit
// @Tags ads
// @Produce json
// @Param containerID path string true "Container ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /ads/units/{containerID} [delete]
func HandleRemoveAdUnit(svc ads.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		containerID, ok := GetPathParam(r, w, "containerID")
		if !ok {
			return
		}

		if err := svc.RemoveAdUnit(r.Context(), containerID); err != nil {
			respondServiceError(w, r, "remove ad unit", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAdUnitRemoved})
	}
}
