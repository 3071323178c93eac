package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/notifyhub/pushover/internal/domain"
	"github.com/notifyhub/pushover/internal/logging"
	"github.com/notifyhub/pushover/internal/service"
)

// MessageHandler relays messages to the Pushover API.
type MessageHandler struct {
	svc    *service.MessageService
	logger *zap.Logger
}

func NewMessageHandler(svc *service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, logger: logger}
}

// Send handles POST /api/v1/messages
//
// @Summary  Submit a message to Pushover
// @Tags     messages
// @Accept   json
// @Produce  json
// @Param    body  body      domain.SendMessageRequest  true  "Message payload"
// @Success  201   {object}  domain.SendMessageResponse
// @Failure  422   {object}  map[string]string
// @Failure  502   {object}  map[string]string
// @Router   /api/v1/messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.svc.Send(r.Context(), req)
	if err != nil {
		logging.FromContext(r.Context(), h.logger).Warn("send message failed", zap.Error(err))
		mapError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}
