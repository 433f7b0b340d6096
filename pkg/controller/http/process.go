package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/domain/types"
	"github.com/secmon-lab/ocelot/pkg/usecase"
	"github.com/secmon-lab/ocelot/pkg/utils/apperr"
)

// ProcessHandler handles the webhook endpoint
type ProcessHandler struct {
	processUC usecase.ProcessUseCase
}

// NewProcessHandler creates a new process handler
func NewProcessHandler(processUC usecase.ProcessUseCase) *ProcessHandler {
	return &ProcessHandler{
		processUC: processUC,
	}
}

// processRequest is the webhook payload
type processRequest struct {
	TeamID    string `json:"team_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	Comment   string `json:"comentario"`
}

// processResponse is the webhook response. Both business outcomes are
// HTTP 200; the ok flag is the contract the triggering workflow reads.
type processResponse struct {
	OK       bool                         `json:"ok"`
	Detail   string                       `json:"detalle,omitempty"`
	Response model.ClassificationResponse `json:"respuesta_api,omitempty"`
}

// HandleProcess handles POST /procesar
func (h *ProcessHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body processRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, ctx, goerr.Wrap(err, "invalid JSON body"), http.StatusBadRequest)
		return
	}

	req := &model.ProcessRequest{
		Ref: model.MessageRef{
			TeamID:    types.TeamID(body.TeamID),
			ChannelID: types.ChannelID(body.ChannelID),
			MessageID: types.MessageID(body.MessageID),
		},
		Comment: body.Comment,
	}
	if err := req.Ref.Validate(); err != nil {
		writeError(w, ctx, err, http.StatusBadRequest)
		return
	}

	result, err := h.processUC.Process(ctx, req)
	if err != nil {
		// Fatal phase failures (auth, classification) surface as server
		// errors; the caller may retry on these but not on ok:false.
		apperr.Handle(ctx, err)
		writeError(w, ctx, err, http.StatusInternalServerError)
		return
	}

	resp := processResponse{
		OK:       result.OK,
		Detail:   result.Detail,
		Response: result.Response,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		ctxlog.From(ctx).Error("Failed to encode process response", "error", err)
	}
}
