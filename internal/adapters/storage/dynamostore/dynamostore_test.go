package dynamostore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/storage/dynamostore"
)

// fakeDynamo keeps items keyed by their PK attribute.
type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	err    error
	status types.TableStatus
	table  string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		items:  make(map[string]map[string]types.AttributeValue),
		status: types.TableStatusActive,
	}
}

func pk(m map[string]types.AttributeValue) string {
	if s, ok := m["PK"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.table = aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: f.items[pk(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.table = aws.ToString(in.TableName)
	f.items[pk(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableName: in.TableName, TableStatus: f.status},
	}, nil
}

func TestStore_GetMissingItem(t *testing.T) {
	t.Parallel()

	s := dynamostore.New(newFakeDynamo(), "kanban")

	got, err := s.Get(context.Background(), "groups")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %q, want nil", got)
	}
}

func TestStore_SetThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := newFakeDynamo()
	s := dynamostore.New(fake, "kanban")

	if err := s.Set(ctx, "groups", []byte(`[{"name":"A"}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if fake.table != "kanban" {
		t.Errorf("table = %q, want %q", fake.table, "kanban")
	}

	stored := fake.items["groups"]
	if _, ok := stored["UpdatedAt"]; !ok {
		t.Error("stored item missing UpdatedAt attribute")
	}

	got, err := s.Get(ctx, "groups")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[{"name":"A"}]` {
		t.Errorf("Get() = %s, want %s", got, `[{"name":"A"}]`)
	}
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	errThrottled := errors.New("ProvisionedThroughputExceededException")
	fake := newFakeDynamo()
	fake.err = errThrottled
	s := dynamostore.New(fake, "kanban")
	ctx := context.Background()

	if _, err := s.Get(ctx, "todos"); !errors.Is(err, errThrottled) {
		t.Errorf("Get() error = %v, want %v", err, errThrottled)
	}
	if err := s.Set(ctx, "todos", []byte(`[]`)); !errors.Is(err, errThrottled) {
		t.Errorf("Set() error = %v, want %v", err, errThrottled)
	}
	if err := s.HealthCheck(ctx); !errors.Is(err, errThrottled) {
		t.Errorf("HealthCheck() error = %v, want %v", err, errThrottled)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  types.TableStatus
		wantErr bool
	}{
		{name: "active", status: types.TableStatusActive},
		{name: "creating", status: types.TableStatusCreating, wantErr: true},
		{name: "deleting", status: types.TableStatusDeleting, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := newFakeDynamo()
			fake.status = tt.status
			s := dynamostore.New(fake, "kanban")

			err := s.HealthCheck(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("HealthCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
