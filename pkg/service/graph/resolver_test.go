package graph_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/service/graph"
)

// backendStub simulates the Graph message endpoints for one message
type backendStub struct {
	hostedIDs    []string
	markup       string
	messageCalls atomic.Int64
}

func (s *backendStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /teams/T1/channels/C1/messages/M1/hostedContents", func(w http.ResponseWriter, r *http.Request) {
		values := make([]map[string]string, 0, len(s.hostedIDs))
		for _, id := range s.hostedIDs {
			values = append(values, map[string]string{"id": id})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"value": values})
	})
	mux.HandleFunc("GET /teams/T1/channels/C1/messages/M1", func(w http.ResponseWriter, r *http.Request) {
		s.messageCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"body": map[string]string{"content": s.markup},
		})
	})
	return mux
}

func TestResolveImage_StructuredAttachmentWins(t *testing.T) {
	stub := &backendStub{hostedIDs: []string{"A1", "A2"}, markup: `<img src="./blob/ignored">`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client, err := graph.New(srv.URL)
	gt.NoError(t, err).Required()

	att, err := client.ResolveImage(context.Background(), "tok", testRef(), 0)
	gt.NoError(t, err).Required()

	gt.Equal(t, att.Kind, model.AttachmentHosted)
	gt.Equal(t, att.ContentID, "A1")
	// Markup parsing never happens when the structured list is non-empty
	gt.Equal(t, stub.messageCalls.Load(), int64(0))
}

func TestResolveImage_IndexSelectsAmongHosted(t *testing.T) {
	stub := &backendStub{hostedIDs: []string{"A1", "A2"}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client, err := graph.New(srv.URL)
	gt.NoError(t, err).Required()

	att, err := client.ResolveImage(context.Background(), "tok", testRef(), 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, att.ContentID, "A2")
}

func TestResolveImage_MarkupFallback(t *testing.T) {
	stub := &backendStub{markup: `<img src="./blob/abc">`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client, err := graph.New(srv.URL)
	gt.NoError(t, err).Required()

	att, err := client.ResolveImage(context.Background(), "tok", testRef(), 0)
	gt.NoError(t, err).Required()

	gt.Equal(t, att.Kind, model.AttachmentInline)
	gt.Equal(t, att.URL, srv.URL+"/teams/T1/channels/C1/messages/M1/blob/abc")
	gt.Equal(t, stub.messageCalls.Load(), int64(1))
}

func TestResolveImage_NoImageFound(t *testing.T) {
	stub := &backendStub{markup: `<p>no images here</p>`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client, err := graph.New(srv.URL)
	gt.NoError(t, err).Required()

	_, err = client.ResolveImage(context.Background(), "tok", testRef(), 0)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrNoImageFound))
	// The message is the user-visible detail and must stay exact
	gt.Equal(t, err.Error(), "No se encontró ninguna imagen (hostedContents ni <img src>).")
}

func TestResolveImage_IndexOutOfRange(t *testing.T) {
	stub := &backendStub{hostedIDs: []string{"A1"}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client, err := graph.New(srv.URL)
	gt.NoError(t, err).Required()

	_, err = client.ResolveImage(context.Background(), "tok", testRef(), 5)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagResolve)).True()
}

func TestResolveImage_BackendFailureIsTaggedResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := graph.New(srv.URL)
	gt.NoError(t, err).Required()

	_, err = client.ResolveImage(context.Background(), "tok", testRef(), 0)
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagResolve)).True()
}
