package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"bank-booking/internal/upstream"
	"bank-booking/pkg/utils"

	"go.uber.org/zap"
)

// ProxyHandler meneruskan body JSON apa adanya ke layanan eksternal (chatbot,
// sentimen, rekomendasi produk) dan mengembalikan jawaban beserta status
// upstream. Kegagalan atau timeout upstream dibalas 500 dengan pesan generik.
type ProxyHandler struct {
	relay *upstream.Client
	urls  utils.UpstreamConfig
	log   *zap.Logger
}

func NewProxyHandler(relay *upstream.Client, urls utils.UpstreamConfig, log *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		relay: relay,
		urls:  urls,
		log:   log.With(zap.String("handler", "proxy")),
	}
}

// Chatbot handles POST /api/chatbot
func (h *ProxyHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, h.urls.ChatbotURL, "chatbot")
}

// Sentiment handles POST /api/sentiment
func (h *ProxyHandler) Sentiment(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, h.urls.SentimentURL, "sentiment")
}

// Recommendation handles POST /api/recommendation
func (h *ProxyHandler) Recommendation(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, h.urls.RecommendationURL, "recommendation")
}

func (h *ProxyHandler) forward(w http.ResponseWriter, r *http.Request, url, name string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body) == 0 || !json.Valid(body) {
		utils.ResponseError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	raw, status, err := h.relay.Relay(r.Context(), url, body)
	if err != nil {
		h.log.Error("Upstream relay failed",
			zap.Error(err),
			zap.String("upstream", name),
		)
		utils.ResponseError(w, http.StatusInternalServerError, "Failed to reach "+name+" service")
		return
	}

	if raw == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Relay the upstream answer and status verbatim, no envelope.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(raw)
}
