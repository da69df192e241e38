package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/httpjson"
)

func (httpserver *HttpServer) evalGet(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireEvaluateScope(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	evalUuidStr := chi.URLParam(r, "evalUuid")
	evalUuid, err := uuid.Parse(evalUuidStr)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eval, err := httpserver.evalSrvc.Get(r.Context(), evalUuid)
	if err != nil {
		httpjson.HandleSrvcError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapEvalResponse(eval))
}
