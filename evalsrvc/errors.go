package evalsrvc

import (
	"net/http"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/srvcerror"
)

const ErrCodeEmptySubmission = "empty_submission"

func ErrEmptySubmission() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmptySubmission,
		"Submission source code is empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmissionTooLarge = "submission_too_large"

func ErrSubmissionTooLarge() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionTooLarge,
		"Submission source code too large",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidTargetName = "invalid_target_name"

func ErrInvalidTargetName() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidTargetName,
		"Target function name is not a valid identifier",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNoTestCases = "no_test_cases"

func ErrNoTestCases() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoTestCases,
		"At least one test case is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTooManyTestCases = "too_many_test_cases"

func ErrTooManyTestCases() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTooManyTestCases,
		"Too many test cases",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidTestCase = "invalid_test_case"

func ErrInvalidTestCase() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidTestCase,
		"Test case contains an unsupported value",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEvalNotFound = "eval_not_found"

func ErrEvalNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEvalNotFound,
		"Evaluation not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
