package handler

import (
	"net/http"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/options"
)

// OptionsResponse lists the wheel's options in display order
type OptionsResponse struct {
	Options []domain.Option `json:"options"`
	Count   int             `json:"count"`
}

// AddOptionRequest adds one option. Color defaults to the palette.
type AddOptionRequest struct {
	Text  string `json:"text" validate:"optiontext"`
	Color string `json:"color,omitempty" validate:"optioncolor"`
}

// EditOptionRequest renames an option
type EditOptionRequest struct {
	Text string `json:"text" validate:"optiontext"`
}

// SetWeightRequest changes how likely an option is to win
type SetWeightRequest struct {
	Weight float64 `json:"weight" validate:"gt=0,lte=100"`
}

// ReplaceOptionsRequest swaps in a whole list
type ReplaceOptionsRequest struct {
	Options []domain.Option `json:"options"`
}

// SamplesResponse names the built-in option sets
type SamplesResponse struct {
	Samples []string `json:"samples"`
}

func optionsResponse(opts []domain.Option) OptionsResponse {
	return OptionsResponse{Options: opts, Count: len(opts)}
}

// HandleListOptions returns the current option list
// @Summary List options
// @Description Returns every option on the wheel in display order
// @Tags options
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /options [get]
func HandleListOptions(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, optionsResponse(svc.List(r.Context())))
	}
}

// HandleAddOption adds an option to the end of the list
// @Summary Add option
// @Description Adds an option; text is trimmed and must be unique ignoring case
// @Tags options
// @Accept json
// @Produce json
// @Param request body AddOptionRequest true "Option"
// @Success 201 {object} domain.Option
// @Failure 400 {object} ErrorResponse
// @Router /options [post]
func HandleAddOption(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddOptionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add option"); err != nil {
			return
		}

		opt, err := svc.AddWithColor(r.Context(), req.Text, req.Color)
		if err != nil {
			respondServiceError(w, r, "add option", err)
			return
		}
		respondJSON(w, http.StatusCreated, opt)
	}
}

// HandleReplaceOptions replaces the whole option list
// @Summary Replace options
// @Description Replaces the list; missing ids, colors and weights are filled in
// @Tags options
// @Accept json
// @Produce json
// @Param request body ReplaceOptionsRequest true "Options"
// @Success 200 {object} OptionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /options [put]
func HandleReplaceOptions(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReplaceOptionsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Replace options"); err != nil {
			return
		}

		if err := svc.ReplaceAll(r.Context(), req.Options); err != nil {
			respondServiceError(w, r, "replace options", err)
			return
		}
		respondJSON(w, http.StatusOK, optionsResponse(svc.List(r.Context())))
	}
}

// HandleClearOptions removes every option
// @Summary Clear options
// @Tags options
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /options [delete]
func HandleClearOptions(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			respondServiceError(w, r, "clear options", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOptionsCleared})
	}
}

// HandleEditOption renames an option
// @Summary Edit option
// @Tags options
// @Accept json
// @Produce json
// @Param id path string true "Option ID"
// @Param request body EditOptionRequest true "New text"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /options/{id} [patch]
func HandleEditOption(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		var req EditOptionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Edit option"); err != nil {
			return
		}

		if err := svc.Edit(r.Context(), id, req.Text); err != nil {
			respondServiceError(w, r, "edit option", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOptionUpdated})
	}
}

// HandleSetWeight changes an option's weight
// @Summary Set option weight
// @Tags options
// @Accept json
// @Produce json
// @Param id path string true "Option ID"
// @Param request body SetWeightRequest true "Weight"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /options/{id}/weight [put]
func HandleSetWeight(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		var req SetWeightRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set weight"); err != nil {
			return
		}

		if err := svc.SetWeight(r.Context(), id, req.Weight); err != nil {
			respondServiceError(w, r, "set weight", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOptionUpdated})
	}
}

// HandleRemoveOption deletes an option
// @Summary Remove option
// @Description Fails when the wheel would drop below 2 options
// @Tags options
// @Produce json
// @Param id path string true "Option ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /options/{id} [delete]
func HandleRemoveOption(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			respondServiceError(w, r, "remove option", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgOptionRemoved})
	}
}

// HandleListSamples names the built-in sample sets
// @Summary List sample sets
// @Tags options
// @Produce json
// @Success 200 {object} SamplesResponse
// @Router /options/samples [get]
func HandleListSamples(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SamplesResponse{Samples: svc.Samples()})
	}
}

// HandleLoadSample replaces the list with a sample set
// @Summary Load sample set
// @Tags options
// @Produce json
// @Param name path string true "Sample name"
// @Success 200 {object} OptionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /options/samples/{name} [post]
func HandleLoadSample(svc options.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}

		if err := svc.LoadSample(r.Context(), name); err != nil {
			respondServiceError(w, r, "load sample", err)
			return
		}
		respondJSON(w, http.StatusOK, optionsResponse(svc.List(r.Context())))
	}
}
