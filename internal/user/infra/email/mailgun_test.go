package email_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userinfraemail "github.com/parkplatztransform/parkapi/internal/user/infra/email"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

func TestMailgunSender_SendVerificationLink(t *testing.T) {
	var requested *http.Request
	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		requested = r
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"<some-id>","message":"Queued. Thank you."}`))
	}))
	defer server.Close()

	factory := pkghttp.NewClientFactory()
	sender := userinfraemail.NewMailgunSender(userinfraemail.Config{
		APIBaseURL: server.URL,
		APIKey:     "some-api-key",
		Domain:     "mail.example.org",
		Sender:     "noreply@example.org",
		VerifyURL:  "https://api.example.org/users/verify/",
	}, factory)

	err := sender.SendVerificationLink(context.Background(), "someone@example.com", "some-token")
	require.NoError(t, err)

	require.NotNil(t, requested)
	assert.Equal(t, http.MethodPost, requested.Method)
	assert.Equal(t, "/v3/mail.example.org/messages", requested.URL.Path)

	username, password, ok := requested.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "api", username)
	assert.Equal(t, "some-api-key", password)

	assert.Equal(t, []string{"noreply@example.org"}, form["from"])
	assert.Equal(t, []string{"someone@example.com"}, form["to"])
	assert.Equal(t, []string{"Please verify your email address"}, form["subject"])
	require.Len(t, form["text"], 1)
	assert.Equal(t,
		"https://api.example.org/users/verify/?code=some-token&email=someone%40example.com",
		form["text"][0],
	)
}

func TestMailgunSender_SendVerificationLink_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	factory := pkghttp.NewClientFactory()
	sender := userinfraemail.NewMailgunSender(userinfraemail.Config{
		APIBaseURL: server.URL,
		APIKey:     "wrong-api-key",
		Domain:     "mail.example.org",
		Sender:     "noreply@example.org",
		VerifyURL:  "https://api.example.org/users/verify/",
	}, factory)

	err := sender.SendVerificationLink(context.Background(), "someone@example.com", "some-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
