// file: controllers/registration_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"ycfl-league/models"
	"ycfl-league/services"
)

func setupRegistrationRouter(t *testing.T) (*gin.Engine, *services.MockLeagueService) {
	t.Helper()
	league := new(services.MockLeagueService)
	rc := NewRegistrationController(league, 1<<20)

	router := setupTestRouter(t)
	router.GET("/register", rc.RegisterPage)
	router.POST("/register", rc.SubmitRegistration)
	router.POST("/api/players", rc.APIRegister)
	return router, league
}

func formRequest(values url.Values) *http.Request {
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegisterPage(t *testing.T) {
	router, _ := setupRegistrationRouter(t)
	w := serve(router, getRequest("/register"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitRegistration_FormDefaultsMissingStatsTo70(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	expected := models.Registration{
		Name: "Ahmed", Phone: "13800000000", WechatID: "ahmed_cd",
		Stats: models.PlayerStats{Speed: 90, Shooting: 70, Passing: 70, Dribbling: 70, Defending: 70, Physical: 70},
	}
	league.On("SubmitRegistration", expected).Return(models.Player{
		ID: "p1", Name: "Ahmed", Stats: expected.Stats, Status: models.StatusPending,
	}, nil).Once()

	w := serve(router, formRequest(url.Values{
		"name": {"Ahmed"}, "phone": {"13800000000"}, "wechatId": {"ahmed_cd"}, "speed": {"90"},
	}), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "success Ahmed overall=73") // 440/6 = 73.3
	assert.Contains(t, body, "سرعة=90;")
	league.AssertExpectations(t)
}

func TestSubmitRegistration_MissingFields(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	w := serve(router, formRequest(url.Values{"name": {"Ahmed"}}), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "err:phone;")
	assert.Contains(t, w.Body.String(), "err:wechatId;")
	league.AssertNotCalled(t, "SubmitRegistration", mock.Anything)
}

func TestSubmitRegistration_WithPhoto(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	league.On("SubmitRegistration", mock.MatchedBy(func(r models.Registration) bool {
		return r.Name == "Salem" && strings.HasPrefix(r.Photo, "data:image/png;base64,")
	})).Return(models.Player{ID: "p2", Name: "Salem", Stats: models.DefaultStats()}, nil).Once()

	body, ctype := multipartBody(t, map[string]string{
		"name": "Salem", "phone": "139", "wechatId": "salem",
	}, "photo", "salem.png", pngBytes(t))
	req, _ := http.NewRequest("POST", "/register", body)
	req.Header.Set("Content-Type", ctype)

	w := serve(router, req, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	league.AssertExpectations(t)
}

func TestSubmitRegistration_RejectsNonImagePhoto(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	body, ctype := multipartBody(t, map[string]string{
		"name": "Salem", "phone": "139", "wechatId": "salem",
	}, "photo", "notes.txt", []byte("definitely not a picture"))
	req, _ := http.NewRequest("POST", "/register", body)
	req.Header.Set("Content-Type", ctype)

	w := serve(router, req, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "err:photo;")
	league.AssertNotCalled(t, "SubmitRegistration", mock.Anything)
}

func TestAPIRegister(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	league.On("SubmitRegistration", mock.MatchedBy(func(r models.Registration) bool {
		return r.WechatID == "omar_wx" && r.Stats.Physical == 70 && r.Stats.Speed == 99
	})).Return(models.Player{
		ID: "p3", Name: "Omar", WechatID: "omar_wx", Status: models.StatusPending,
		Stats: models.PlayerStats{Speed: 99, Shooting: 99, Passing: 99, Dribbling: 99, Defending: 99, Physical: 30},
	}, nil).Once()

	req, _ := http.NewRequest("POST", "/api/players",
		strings.NewReader(`{"name":"Omar","phone":"137","wechatId":"omar_wx","stats":{"speed":99}}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(router, req, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "p3", got["id"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, 86.0, got["overall"])
	league.AssertExpectations(t)
}

func TestAPIRegister_ValidationErrors(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	cases := map[string]struct {
		body  string
		field string
	}{
		"missing wechat": {`{"name":"Omar","phone":"137"}`, "wechatId"},
		"bad photo":      {`{"name":"Omar","phone":"137","wechatId":"x","photo":"not a url"}`, "photo"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest("POST", "/api/players", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(router, req, nil)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var got struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, "validation_failed", got.Error)
			assert.Contains(t, got.Fields, tc.field)
		})
	}
	league.AssertNotCalled(t, "SubmitRegistration", mock.Anything)
}

func TestAPIRegister_MalformedJSON(t *testing.T) {
	router, _ := setupRegistrationRouter(t)
	req, _ := http.NewRequest("POST", "/api/players", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(router, req, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"body"`)
}

func TestSubmitRegistration_OversizedUpload(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	photo := append(pngBytes(t), make([]byte, 2<<20)...)
	body, ctype := multipartBody(t, map[string]string{
		"name": "Big", "phone": "1", "wechatId": "big",
	}, "photo", "big.png", photo)
	req, _ := http.NewRequest("POST", "/register", body)
	req.Header.Set("Content-Type", ctype)

	w := serve(router, req, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "err:photo;")
	league.AssertNotCalled(t, "SubmitRegistration", mock.Anything)
}

func TestAPIRegister_OversizedBody(t *testing.T) {
	router, league := setupRegistrationRouter(t)

	photo := "data:image/png;base64," + strings.Repeat("A", 2<<20)
	payload := `{"name":"Big","phone":"1","wechatId":"big","photo":"` + photo + `"}`
	req, _ := http.NewRequest("POST", "/api/players", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := serve(router, req, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "payload_too_large")
	league.AssertNotCalled(t, "SubmitRegistration", mock.Anything)
}
