package classifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/service/classifier"
)

func TestClassify_Success(t *testing.T) {
	var gotAPIKey, gotContentType string
	var gotPayload map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"respuesta": "Es un comercial de bebidas",
			"confianza": 0.92,
		})
	}))
	defer srv.Close()

	client, err := classifier.New(srv.URL, "key-1")
	gt.NoError(t, err).Required()

	resp, err := client.Classify(context.Background(), "revisa esto", model.EncodedImage("aW1n"))
	gt.NoError(t, err).Required()

	gt.Equal(t, gotAPIKey, "key-1")
	gt.Equal(t, gotContentType, "application/json")
	gt.Equal(t, gotPayload["comentario"], "revisa esto")
	gt.Equal(t, gotPayload["imagen"], "aW1n")

	answer, ok := resp.Answer()
	gt.B(t, ok).True()
	gt.Equal(t, answer, "Es un comercial de bebidas")
	// Extra fields pass through untouched
	gt.Equal(t, resp["confianza"], 0.92)
}

func TestClassify_MissingAnswerIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"estado":"sin coincidencia"}`))
	}))
	defer srv.Close()

	client, err := classifier.New(srv.URL, "key-1")
	gt.NoError(t, err).Required()

	resp, err := client.Classify(context.Background(), "hola", model.EncodedImage("aW1n"))
	gt.NoError(t, err).Required()

	_, ok := resp.Answer()
	gt.B(t, ok).False()
}

func TestClassify_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := classifier.New(srv.URL, "key-1")
	gt.NoError(t, err).Required()

	_, err = client.Classify(context.Background(), "hola", model.EncodedImage("aW1n"))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("classification gateway")
}

func TestNew_RequiresConfiguration(t *testing.T) {
	_, err := classifier.New("", "key-1")
	gt.Error(t, err)

	_, err = classifier.New("https://gateway.example.com", "")
	gt.Error(t, err)
}
