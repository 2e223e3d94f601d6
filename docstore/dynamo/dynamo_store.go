// Package dynamo provides a DynamoDB implementation of the docstore.Store
// interface.
//
// Documents are stored as single items; DynamoDB's 400KB item limit is ample
// for descriptor documents. Use an object store (s3, minio) if documents can
// grow beyond that.
//
// Table schema:
//   - Partition key: name (string) - the document name
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name piecewise-docs \
//	  --attribute-definitions AttributeName=name,AttributeType=S \
//	  --key-schema AttributeName=name,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package dynamo

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/piecewisego/docstore"
)

const (
	attrName      = "name"
	attrDoc       = "doc"
	attrUpdatedAt = "updated_at"
)

// Client is the subset of the DynamoDB API used by the store.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store implements docstore.Store backed by a DynamoDB table.
type Store struct {
	client Client
	table  string
}

// NewStore creates a new DynamoDB document store.
func NewStore(client Client, table string) *Store {
	return &Store{
		client: client,
		table:  table,
	}
}

func (s *Store) itemKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrName: &types.AttributeValueMemberS{Value: name},
	}
}

// Fetch reads the named document in full.
func (s *Store) Fetch(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            s.itemKey(name),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	if resp.Item == nil {
		return nil, docstore.ErrNotFound
	}

	doc, ok := resp.Item[attrDoc].(*types.AttributeValueMemberB)
	if !ok {
		return nil, docstore.ErrNotFound
	}

	return doc.Value, nil
}

// Put writes a document. DynamoDB PutItem replaces the item atomically.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			attrName:      &types.AttributeValueMemberS{Value: name},
			attrDoc:       &types.AttributeValueMemberB{Value: data},
			attrUpdatedAt: &types.AttributeValueMemberN{Value: strconv.FormatInt(time.Now().Unix(), 10)},
		},
	})
	return err
}

// Delete removes a document. Deleting a missing item is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.itemKey(name),
	})
	return err
}

// List returns all document names with the given prefix, sorted.
// DynamoDB has no prefix query on a hash key, so this scans the table
// projecting only the name attribute.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(s.table),
		ProjectionExpression:     aws.String("#n"),
		ExpressionAttributeNames: map[string]string{"#n": attrName},
	}

	if prefix != "" {
		input.FilterExpression = aws.String("begins_with(#n, :p)")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: prefix},
		}
	}

	var names []string
	for {
		resp, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			if n, ok := item[attrName].(*types.AttributeValueMemberS); ok {
				names = append(names, n.Value)
			}
		}

		if resp.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}
	sort.Strings(names)

	return names, nil
}
