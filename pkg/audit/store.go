// Package audit persists the ledger event stream to DynamoDB so external
// collaborators can index and query it. The in-memory ledger stays
// authoritative; this is a derived record only.
package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/risk-pool-lending/pkg/events"
	"github.com/chris/risk-pool-lending/pkg/models"
)

// DynamoDBAPI captures the subset of the DynamoDB client used by the Store.
// Tests substitute a mock for this interface.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Reader defines the interface for reading indexed events.
type Reader interface {
	// ListEvents retrieves up to limit indexed events.
	ListEvents(ctx context.Context, limit int32) ([]models.Event, error)
}

// Store implements the event index using AWS DynamoDB.
type Store struct {
	Client          DynamoDBAPI
	EventsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, eventsTable string) *Store {
	return &Store{
		Client:          client,
		EventsTableName: eventsTable,
	}
}

// Make sure we conform to the interfaces
var (
	_ events.Publisher = (*Store)(nil)
	_ Reader           = (*Store)(nil)
)

// Publish writes a single event record. The event id is the table key, so
// redelivered events are rejected rather than duplicated.
func (s *Store) Publish(ctx context.Context, event models.Event) error {
	eventAV, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.EventsTableName),
		Item:                eventAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Already indexed; a redelivery is not an error.
			return nil
		}
		return fmt.Errorf("failed to put event to DynamoDB: %w", err)
	}

	return nil
}

// ListEvents retrieves up to limit indexed events.
func (s *Store) ListEvents(ctx context.Context, limit int32) ([]models.Event, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.EventsTableName),
		Limit:     aws.Int32(limit),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events table: %w", err)
	}

	var evs []models.Event
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &evs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	return evs, nil
}
