package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/conf"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	cfg := conf.Load()

	var repo evalsrvc.EvalRepo
	switch cfg.RepoBackend {
	case "mem":
		repo = evalsrvc.NewInMemEvalRepo()
	case "s3":
		if cfg.S3Bucket == "" {
			slog.Error("EVAL_S3_BUCKET is not set")
			os.Exit(1)
		}
		repo = evalsrvc.NewS3EvalRepo(conf.GetS3Client(cfg.AWSRegion), cfg.S3Bucket)
	case "ddb":
		if cfg.DdbTable == "" {
			slog.Error("EVAL_DDB_TABLE is not set")
			os.Exit(1)
		}
		repo = evalsrvc.NewDdbEvalRepo(conf.GetDdbClient(cfg.AWSRegion), cfg.DdbTable)
	default:
		slog.Error("unknown EVAL_REPO_BACKEND", "backend", cfg.RepoBackend)
		os.Exit(1)
	}

	evalSrvc := evalsrvc.NewCustomEvalSrvc(
		slog.Default().With("module", "eval"),
		repo,
		evalsrvc.NewInMemVerdictCache(),
		cfg.CaseDeadline,
	)

	httpServer := http.NewHttpServer(evalSrvc, cfg.JWTKey, cfg.APIKeyBcrypt, cfg.CorsOrigins)

	log.Printf("Starting server on %s", cfg.HTTPAddress)
	err := httpServer.Start(cfg.HTTPAddress)
	log.Printf("Server stopped with error: %v", err)
}
