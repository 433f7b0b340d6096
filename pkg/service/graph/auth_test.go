package graph_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ocelot/pkg/service/graph"
)

func TestTokenProvider_AcquireToken(t *testing.T) {
	var gotPath, gotGrant, gotClientID, gotScope string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotGrant = r.FormValue("grant_type")
		gotClientID = r.FormValue("client_id")
		gotScope = r.FormValue("scope")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	provider := graph.NewTokenProvider("client-1", "secret-1", "tenant-1", srv.URL, srv.Client())

	token, err := provider.AcquireToken(context.Background())
	gt.NoError(t, err).Required()

	gt.Equal(t, token, "tok123")
	gt.Equal(t, gotPath, "/tenant-1/oauth2/v2.0/token")
	gt.Equal(t, gotGrant, "client_credentials")
	gt.Equal(t, gotClientID, "client-1")
	gt.Equal(t, gotScope, "https://graph.microsoft.com/.default")
}

func TestTokenProvider_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	provider := graph.NewTokenProvider("client-1", "bad-secret", "tenant-1", srv.URL, srv.Client())

	_, err := provider.AcquireToken(context.Background())
	gt.Error(t, err)
}

func TestTokenProvider_MissingCredentials(t *testing.T) {
	provider := graph.NewTokenProvider("", "", "tenant-1", "", nil)

	_, err := provider.AcquireToken(context.Background())
	gt.Error(t, err)
}
