package evalsrvc

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/outcome"
)

// EvalRow is the DynamoDB shape of one stored evaluation.
type EvalRow struct {
	Uuid         string    `dynamo:"uuid,hash"` // primary key
	TargetName   string    `dynamo:"target_name"`
	SrcSha256    string    `dynamo:"src_sha256"`
	CacheKey     string    `dynamo:"cache_key"`
	Passed       bool      `dynamo:"passed"`
	Category     string    `dynamo:"category"`
	Kind         string    `dynamo:"kind,omitempty"`
	TypeMismatch bool      `dynamo:"type_mismatch"`
	Message      string    `dynamo:"message"`
	CasesPassed  int       `dynamo:"cases_passed"`
	CasesTotal   int       `dynamo:"cases_total"`
	CreatedAt    time.Time `dynamo:"created_at"`
}

// DdbEvalRepo stores evaluations in a DynamoDB table keyed by uuid.
type DdbEvalRepo struct {
	table dynamo.Table
}

func NewDdbEvalRepo(ddbClient *dynamodb.Client, tableName string) *DdbEvalRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbEvalRepo{table: db.Table(tableName)}
}

func (r *DdbEvalRepo) Save(ctx context.Context, eval Evaluation) error {
	row := EvalRow{
		Uuid:         eval.UUID.String(),
		TargetName:   eval.TargetName,
		SrcSha256:    eval.SrcSha256,
		CacheKey:     eval.CacheKey,
		Passed:       eval.Verdict.Passed,
		Category:     string(eval.Verdict.Category),
		Kind:         string(eval.Verdict.Kind),
		TypeMismatch: eval.Verdict.TypeMismatch,
		Message:      eval.Verdict.Message,
		CasesPassed:  eval.CasesPassed,
		CasesTotal:   eval.CasesTotal,
		CreatedAt:    eval.CreatedAt,
	}
	return r.table.Put(row).Run(ctx)
}

func (r *DdbEvalRepo) Get(ctx context.Context, id uuid.UUID) (Evaluation, error) {
	var row EvalRow
	err := r.table.Get("uuid", id.String()).One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return Evaluation{}, ErrEvalNotFound()
		}
		return Evaluation{}, err
	}

	parsed, err := uuid.Parse(row.Uuid)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		UUID:       parsed,
		TargetName: row.TargetName,
		SrcSha256:  row.SrcSha256,
		CacheKey:   row.CacheKey,
		Verdict: Verdict{
			Passed:       row.Passed,
			Category:     Category(row.Category),
			Kind:         outcome.FailureKind(row.Kind),
			TypeMismatch: row.TypeMismatch,
			Message:      row.Message,
		},
		CasesPassed: row.CasesPassed,
		CasesTotal:  row.CasesTotal,
		CreatedAt:   row.CreatedAt,
	}, nil
}
