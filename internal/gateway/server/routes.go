package server

import (
	"net/http"

	"github.com/rabigarip/priceright/internal/gateway/handler"
	"github.com/rabigarip/priceright/internal/gateway/middleware"
)

func NewMux(analyze *handler.AnalyzeHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", analyze.HandleAnalyze)
	return middleware.CORS(mux)
}
