package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/risk-pool-lending/pkg/audit"
	"github.com/chris/risk-pool-lending/pkg/config"
	"github.com/chris/risk-pool-lending/pkg/events"
	"github.com/chris/risk-pool-lending/pkg/handlers/auditlog"
	"github.com/chris/risk-pool-lending/pkg/handlers/loans"
	"github.com/chris/risk-pool-lending/pkg/handlers/pools"
	"github.com/chris/risk-pool-lending/pkg/handlers/scores"
	"github.com/chris/risk-pool-lending/pkg/ledger/memory"
	appmiddleware "github.com/chris/risk-pool-lending/pkg/middleware"
	"github.com/chris/risk-pool-lending/pkg/transfer"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The funds-transfer collaborator. Local runs use the in-memory bank; a
	// real payment rail would implement transfer.Transferer instead.
	bank := transfer.NewMemoryBank()

	// Event delivery: the websocket hub is always on; SQS fan-out and the
	// DynamoDB audit index are enabled by configuration.
	hub := events.NewHub(logger)
	publishers := []events.Publisher{hub}

	var auditReader audit.Reader
	if cfg.EventsQueueURL != "" || cfg.EventsTable != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		if cfg.EventsQueueURL != "" {
			publishers = append(publishers, events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.EventsQueueURL))
		}
		if cfg.EventsTable != "" {
			store := audit.New(dynamodb.NewFromConfig(awsCfg), cfg.EventsTable)
			auditReader = store
			// When no queue is configured, index events synchronously.
			if cfg.EventsQueueURL == "" {
				publishers = append(publishers, store)
			}
		}
	}

	ldgr := memory.New(cfg.AdminID, bank, events.NewMultiPublisher(publishers...), logger)

	poolsHandler := pools.NewPoolsHandler(ldgr)
	loansHandler := loans.NewLoansHandler(ldgr)
	scoresHandler := scores.NewScoresHandler(ldgr)
	auditHandler := auditlog.NewAuditHandler(auditReader, hub)

	router := chi.NewRouter()
	router.Use(appmiddleware.NewStructuredLogger(logger))

	// The event stream is unauthenticated; everything else carries a caller
	// identity token.
	router.Get("/events/ws", auditHandler.StreamEvents)

	router.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(cfg.JWTSecret))

		r.Post("/pools", poolsHandler.CreatePool)
		r.Get("/pools", poolsHandler.ListPools)
		r.Get("/pools/{poolID}", poolsHandler.GetPool)
		r.Post("/pools/{poolID}/deposits", poolsHandler.AddFunds)

		r.Post("/loans", loansHandler.RequestLoan)
		r.Get("/loans", loansHandler.ListLoans)
		r.Get("/loans/{loanID}", loansHandler.GetLoan)
		r.Post("/loans/{loanID}/repayments", loansHandler.RepayLoan)

		r.Get("/scores/{identity}", scoresHandler.GetCreditScore)

		r.Get("/events", auditHandler.ListEvents)
	})

	log.Printf("Starting server on port %s", cfg.HTTPPort)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
