package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/mocks"
)

var testOptions = []domain.Option{
	{ID: "1", Text: "Pizza", Color: "#FF6B6B", Weight: 1},
	{ID: "2", Text: "Burger", Color: "#4ECDC4", Weight: 1},
}

func TestHandleListOptions(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	svc.On("List", mock.Anything).Return(testOptions)

	w := serve(t, http.MethodGet, "/options", "/options", HandleListOptions(svc), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[OptionsResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, testOptions, resp.Options)
}

func TestHandleAddOption(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockOptionsService(t)
		added := &domain.Option{ID: "3", Text: "Sushi", Color: "#45B7D1", Weight: 1}
		svc.On("AddWithColor", mock.Anything, "Sushi", "").Return(added, nil)

		w := serve(t, http.MethodPost, "/options", "/options", HandleAddOption(svc), AddOptionRequest{Text: "Sushi"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, *added, decode[domain.Option](t, w))
	})

	t.Run("blank text fails validation", func(t *testing.T) {
		svc := mocks.NewMockOptionsService(t)

		w := serve(t, http.MethodPost, "/options", "/options", HandleAddOption(svc), AddOptionRequest{Text: "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ValidationErrorResponse](t, w)
		assert.Contains(t, resp.Fields, "text")
	})

	t.Run("bad color fails validation", func(t *testing.T) {
		svc := mocks.NewMockOptionsService(t)

		w := serve(t, http.MethodPost, "/options", "/options", HandleAddOption(svc), AddOptionRequest{Text: "Tacos", Color: "red"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrMsgInvalidColor, decode[ValidationErrorResponse](t, w).Fields["color"])
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := mocks.NewMockOptionsService(t)

		w := serve(t, http.MethodPost, "/options", "/options", HandleAddOption(svc), "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidRequest, decode[ErrorResponse](t, w).Error)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := mocks.NewMockOptionsService(t)
		svc.On("AddWithColor", mock.Anything, " Pizza ", "").
			Return(nil, fmt.Errorf("%w: %q", domain.ErrDuplicateOption, "Pizza"))

		w := serve(t, http.MethodPost, "/options", "/options", HandleAddOption(svc), AddOptionRequest{Text: " Pizza "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgDuplicateOptionError, decode[ErrorResponse](t, w).Error)
	})

	t.Run("list full", func(t *testing.T) {
		svc := mocks.NewMockOptionsService(t)
		svc.On("AddWithColor", mock.Anything, "One more", "").Return(nil, domain.ErrMaxOptionsReached)

		w := serve(t, http.MethodPost, "/options", "/options", HandleAddOption(svc), AddOptionRequest{Text: "One more"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgMaxOptionsError, decode[ErrorResponse](t, w).Error)
	})
}

func TestHandleEditOption(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	svc.On("Edit", mock.Anything, "1", "Pasta").Return(nil)
	svc.On("Edit", mock.Anything, "missing", "Pasta").Return(domain.ErrOptionNotFound)

	w := serve(t, http.MethodPatch, "/options/{id}", "/options/1", HandleEditOption(svc), EditOptionRequest{Text: "Pasta"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, http.MethodPatch, "/options/{id}", "/options/missing", HandleEditOption(svc), EditOptionRequest{Text: "Pasta"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrMsgOptionNotFoundError, decode[ErrorResponse](t, w).Error)
}

func TestHandleSetWeight(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	svc.On("SetWeight", mock.Anything, "1", 3.0).Return(nil)

	w := serve(t, http.MethodPut, "/options/{id}/weight", "/options/1/weight", HandleSetWeight(svc), SetWeightRequest{Weight: 3})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, weight := range []float64{0, -1, 101} {
		w = serve(t, http.MethodPut, "/options/{id}/weight", "/options/1/weight", HandleSetWeight(svc), SetWeightRequest{Weight: weight})
		assert.Equal(t, http.StatusBadRequest, w.Code, "weight %v", weight)
	}
}

func TestHandleRemoveOption(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	svc.On("Remove", mock.Anything, "1").Return(domain.ErrMinOptionsReached)

	w := serve(t, http.MethodDelete, "/options/{id}", "/options/1", HandleRemoveOption(svc), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrMsgMinOptionsError, decode[ErrorResponse](t, w).Error)
}

func TestHandleReplaceOptions(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	replacement := []domain.Option{{Text: "Yes"}, {Text: "No"}}
	svc.On("ReplaceAll", mock.Anything, replacement).Return(nil)
	svc.On("List", mock.Anything).Return(testOptions)

	w := serve(t, http.MethodPut, "/options", "/options", HandleReplaceOptions(svc), ReplaceOptionsRequest{Options: replacement})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[OptionsResponse](t, w).Count)
}

func TestHandleClearOptions(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	svc.On("Clear", mock.Anything).Return(nil)

	w := serve(t, http.MethodDelete, "/options", "/options", HandleClearOptions(svc), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgOptionsCleared, decode[SuccessResponse](t, w).Message)
}

func TestHandleSamples(t *testing.T) {
	svc := mocks.NewMockOptionsService(t)
	svc.On("Samples").Return([]string{"food", "yes-no"})
	svc.On("LoadSample", mock.Anything, "yes-no").Return(nil)
	svc.On("LoadSample", mock.Anything, "nope").Return(fmt.Errorf("%w: %q", domain.ErrSampleNotFound, "nope"))
	svc.On("List", mock.Anything).Return(testOptions)

	w := serve(t, http.MethodGet, "/options/samples", "/options/samples", HandleListSamples(svc), nil)
	assert.Equal(t, []string{"food", "yes-no"}, decode[SamplesResponse](t, w).Samples)

	w = serve(t, http.MethodPost, "/options/samples/{name}", "/options/samples/yes-no", HandleLoadSample(svc), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, http.MethodPost, "/options/samples/{name}", "/options/samples/nope", HandleLoadSample(svc), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
