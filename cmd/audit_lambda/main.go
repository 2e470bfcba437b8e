package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/risk-pool-lending/pkg/audit"
	"github.com/chris/risk-pool-lending/pkg/models"
	"github.com/joho/godotenv"
)

var store *audit.Store

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	eventsTable := os.Getenv("DYNAMODB_EVENTS_TABLE_NAME")
	if eventsTable == "" {
		log.Fatal("DYNAMODB_EVENTS_TABLE_NAME environment variable is not set")
	}

	store = audit.New(dynamodb.NewFromConfig(cfg), eventsTable)
}

// HandleRequest processes SQS messages and indexes the ledger events they
// carry. Event ids key the index, so SQS redeliveries are harmless.
func HandleRequest(ctx context.Context, sqsEvent lambdaevents.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event models.Event
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message.
			return err
		}

		if err := store.Publish(ctx, event); err != nil {
			log.Printf("ERROR: failed to index event %s: %v", event.Id, err)
			return err
		}

		log.Printf("Successfully indexed event %s (%s)", event.Id, event.Type)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
