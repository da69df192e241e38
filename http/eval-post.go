package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/httpjson"
)

type EvalPostResponse struct {
	EvalUUID     string `json:"eval_uuid"`
	Passed       bool   `json:"passed"`
	Category     string `json:"category"`
	Kind         string `json:"kind,omitempty"`
	TypeMismatch bool   `json:"type_mismatch,omitempty"`
	Message      string `json:"message"`
	CasesPassed  int    `json:"cases_passed"`
	CasesTotal   int    `json:"cases_total"`
}

func (httpserver *HttpServer) evalPost(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireEvaluateScope(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	type testCase struct {
		Inputs   []json.RawMessage `json:"inputs"`
		Expected json.RawMessage   `json:"expected"`
	}
	type request struct {
		SrcCode    string     `json:"src_code"`
		TargetName string     `json:"target_name"`
		TestCases  []testCase `json:"test_cases"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cases := make([]evalsrvc.TestCase, len(req.TestCases))
	for i, tc := range req.TestCases {
		inputs := make([]any, len(tc.Inputs))
		for j, raw := range tc.Inputs {
			v, err := decodeJsonValue(raw)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			inputs[j] = v
		}
		expected, err := decodeJsonValue(tc.Expected)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		cases[i] = evalsrvc.TestCase{Inputs: inputs, Expected: expected}
	}

	eval, err := httpserver.evalSrvc.Evaluate(r.Context(), evalsrvc.Submission{
		SrcCode:    req.SrcCode,
		TargetName: req.TargetName,
	}, cases)
	if err != nil {
		httpjson.HandleSrvcError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapEvalResponse(eval))
}

func mapEvalResponse(eval evalsrvc.Evaluation) EvalPostResponse {
	return EvalPostResponse{
		EvalUUID:     eval.UUID.String(),
		Passed:       eval.Verdict.Passed,
		Category:     string(eval.Verdict.Category),
		Kind:         string(eval.Verdict.Kind),
		TypeMismatch: eval.Verdict.TypeMismatch,
		Message:      eval.Verdict.Message,
		CasesPassed:  eval.CasesPassed,
		CasesTotal:   eval.CasesTotal,
	}
}
