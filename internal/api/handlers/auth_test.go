package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/aiguilog/aiguilog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(b))
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func registerBody(pseudo string) map[string]string {
	return map[string]string{
		"prenom":        "Alice",
		"nom":           "Verne",
		"pseudo":        pseudo,
		"password":      "password123",
		"dateNaissance": "1992-03-02",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "successful registration",
			request:        registerBody("newuser"),
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.AuthResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "newuser", result.User.Pseudo)
				assert.NotEmpty(t, result.Token)
			},
		},
		{
			name: "missing pseudo",
			request: func() map[string]string {
				b := registerBody("")
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing prenom",
			request: func() map[string]string {
				b := registerBody("someone")
				b["prenom"] = ""
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed birth date",
			request: func() map[string]string {
				b := registerBody("someone")
				b["dateNaissance"] = "not-a-date"
				return b
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "duplicate pseudo",
			request: registerBody("taken"),
			setup: func() {
				resp := postJSON(t, ts.APIURL("/register"), registerBody("taken"))
				resp.Body.Close()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.APIURL("/register"), tt.request)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/register"), registerBody("loginuser"))
	resp.Body.Close()

	t.Run("successful login", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{
			"pseudo":   "loginuser",
			"password": "password123",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result testutil.AuthResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "loginuser", result.User.Pseudo)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{"pseudo": "loginuser"})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	// Unknown pseudo and wrong password must look identical to the caller.
	t.Run("credential uniformity", func(t *testing.T) {
		ghost := postJSON(t, ts.APIURL("/login"), map[string]string{
			"pseudo":   "ghost",
			"password": "anything",
		})
		defer ghost.Body.Close()
		ghostBody := readBody(t, ghost)

		wrongPwd := postJSON(t, ts.APIURL("/login"), map[string]string{
			"pseudo":   "loginuser",
			"password": "wrongpassword",
		})
		defer wrongPwd.Body.Close()
		wrongPwdBody := readBody(t, wrongPwd)

		assert.Equal(t, http.StatusUnauthorized, ghost.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, wrongPwd.StatusCode)
		assert.Equal(t, ghostBody, wrongPwdBody)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithPseudo("me_user").
		BuildAndAuthenticate(t, ts)

	t.Run("with token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/me"), nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var result struct {
			User struct {
				ID     string `json:"id"`
				Pseudo string `json:"pseudo"`
			} `json:"user"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, user.ID.String(), result.User.ID)
		assert.Equal(t, "me_user", result.User.Pseudo)
	})

	t.Run("without token", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/me"))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("with garbage token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/me"), nil)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})
}
