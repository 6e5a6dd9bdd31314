package character

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/JayByRP/shield/core"
	mock_core "github.com/JayByRP/shield/core/mock"
)

func performRequest(handler echo.HandlerFunc, method, target, body, paramName, paramValue string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	handler(c)
	return rec
}

func TestHandlerGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Show(gomock.Any(), "Annabeth").
		Return(newTestCharacter(), nil)

	handler := NewHandler(mockService)

	rec := performRequest(handler.Get, http.MethodGet, "/api/characters/Annabeth", "", "name", "Annabeth")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Annabeth")
	// the secret never leaves the service boundary
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Show(gomock.Any(), "Nobody").
		Return(core.Character{}, core.NewErrorNotFound())

	handler := NewHandler(mockService)

	rec := performRequest(handler.Get, http.MethodGet, "/api/characters/Nobody", "", "name", "Nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerGetAmbiguous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Show(gomock.Any(), "ann").
		Return(core.Character{}, core.NewErrorAmbiguous([]string{"Annabeth", "Annika"}))

	handler := NewHandler(mockService)

	rec := performRequest(handler.Get, http.MethodGet, "/api/characters/ann", "", "name", "ann")
	assert.Equal(t, http.StatusMultipleChoices, rec.Code)

	var response struct {
		Candidates []string `json:"candidates"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"Annabeth", "Annika"}, response.Candidates)
	}
}

func TestHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		List(gomock.Any()).
		Return([]core.Character{newTestCharacter()}, nil)

	handler := NewHandler(mockService)

	rec := performRequest(handler.List, http.MethodGet, "/api/characters", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Annabeth")
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(newTestCharacter(), nil)

	handler := NewHandler(mockService)

	body := `{"name":"Annabeth","faceclaim":"Alexandra Daddario","image":"https://cdn.example.com/annabeth.png","bio":"Strategist and architect.","secret":"hunter2"}`
	rec := performRequest(handler.Create, http.MethodPost, "/api/characters", body, "", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandlerCreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(core.Character{}, core.NewErrorAlreadyExists())

	handler := NewHandler(mockService)

	body := `{"name":"Annabeth","faceclaim":"Alexandra Daddario","image":"https://cdn.example.com/annabeth.png","bio":"Strategist and architect.","secret":"hunter2"}`
	rec := performRequest(handler.Create, http.MethodPost, "/api/characters", body, "", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandlerCreateInvalidImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(core.Character{}, core.NewErrorInvalidImage())

	handler := NewHandler(mockService)

	body := `{"name":"Annabeth","faceclaim":"Alexandra Daddario","image":"http://cdn.example.com/annabeth.png","bio":"Strategist and architect.","secret":"hunter2"}`
	rec := performRequest(handler.Create, http.MethodPost, "/api/characters", body, "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerUpdateDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Edit(gomock.Any(), "Annabeth", "wrong", gomock.Any()).
		Return(core.Character{}, core.NewErrorPermissionDenied())

	handler := NewHandler(mockService)

	body := `{"secret":"wrong","bio":"vandalism"}`
	rec := performRequest(handler.Update, http.MethodPut, "/api/characters/Annabeth", body, "name", "Annabeth")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandlerDeleteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockCharacterService(ctrl)
	mockService.EXPECT().
		Delete(gomock.Any(), "Nobody", "hunter2").
		Return(core.Character{}, core.NewErrorNotFound())

	handler := NewHandler(mockService)

	body := `{"secret":"hunter2"}`
	rec := performRequest(handler.Delete, http.MethodDelete, "/api/characters/Nobody", body, "name", "Nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
