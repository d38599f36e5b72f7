package server

import (
	"net/http"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/handler"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/middleware"
)

func NewMux(svc *handler.Service) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /wbs/", svc.HandleWBS)
	mux.HandleFunc("POST /ask/", svc.HandleAsk)
	mux.HandleFunc("POST /risk/generate/", svc.HandleRisks)
	mux.HandleFunc("POST /gantt/", svc.HandleGantt)
	mux.HandleFunc("POST /plan/full/", svc.HandleFullPlan)

	return middleware.CORS(mux)
}
