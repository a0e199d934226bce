package wire

import (
	"bank-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProxy(r chi.Router, proxyHandler *adaptor.ProxyHandler) {
	// Straight-through JSON relays to the external services
	r.Post("/api/chatbot", proxyHandler.Chatbot)
	r.Post("/api/sentiment", proxyHandler.Sentiment)
	r.Post("/api/recommendation", proxyHandler.Recommendation)
}
