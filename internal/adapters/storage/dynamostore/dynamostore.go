// Package dynamostore provides a ports.KeyValueStore backed by an Amazon
// DynamoDB table. Each key is one item with a string partition key "PK" and
// the stored document in "Value".
package dynamostore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.KeyValueStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// API is the subset of the DynamoDB client used by Store.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// item is the DynamoDB representation of one key.
type item struct {
	PK        string `dynamodbav:"PK"`
	Value     string `dynamodbav:"Value"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// Store is a DynamoDB-backed key-value store.
type Store struct {
	client API
	table  string
	now    func() time.Time
}

// NewClient builds a DynamoDB client from the default AWS credential chain.
// A non-empty endpoint overrides the service URL, e.g. for DynamoDB Local.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// New creates a Store over table.
func New(client API, table string) *Store {
	return &Store{
		client: client,
		table:  table,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the value under key, or (nil, nil) when there is no item.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb GetItem %q: %w", key, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshaling item %q: %w", key, err)
	}
	return []byte(it.Value), nil
}

// Set replaces the item under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(item{
		PK:        key,
		Value:     string(value),
		UpdatedAt: s.now().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshaling item %q: %w", key, err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("dynamodb PutItem %q: %w", key, err)
	}
	return nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "storage-dynamodb"
}

// HealthCheck verifies the table exists and is active.
func (s *Store) HealthCheck(ctx context.Context) error {
	out, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name(), err)
	}
	if out.Table != nil && out.Table.TableStatus != types.TableStatusActive {
		return fmt.Errorf("%s: table %s is %s", s.Name(), s.table, out.Table.TableStatus)
	}
	return nil
}
