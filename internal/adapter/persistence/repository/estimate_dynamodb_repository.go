package repository

import (
	"context"
	"encoding/json"

	"fren_docs/internal/domain/entities"
	"fren_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

// ledgerItem is the DynamoDB row shape. The full record travels as a JSON
// document; the scalar columns mirror what the spreadsheet ledger shows so
// the table stays scannable without parsing documents.
type ledgerItem struct {
	ID             string `dynamodbav:"id"`
	EstimateNumber string `dynamodbav:"estimate_number"`
	CompanyName    string `dynamodbav:"company_name"`
	ProjectName    string `dynamodbav:"project_name"`
	ContractType   string `dynamodbav:"contract_type"`
	TotalAmount    int64  `dynamodbav:"total_amount"`
	ContractDate   string `dynamodbav:"contract_date"`
	DeliveryDate   string `dynamodbav:"delivery_date"`
	CreatedAt      string `dynamodbav:"created_at"`
	Document       string `dynamodbav:"document"`
}

// EstimateDynamoRepository persists the estimate ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Saves are plain upserts; the ledger keeps exactly one row per record id.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILedgerRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	out := []entities.Estimate{}
	var startKey map[string]types.AttributeValue

	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []ledgerItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			var e entities.Estimate
			if err := json.Unmarshal([]byte(it.Document), &e); err != nil {
				return nil, err
			}
			out = append(out, e)
		}

		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate, totalAmount int64) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(ledgerItem{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		CompanyName:    e.Client.CompanyName,
		ProjectName:    e.Client.ProjectName,
		ContractType:   string(e.ContractType),
		TotalAmount:    totalAmount,
		ContractDate:   e.ContractDate,
		DeliveryDate:   e.DeliveryDate,
		CreatedAt:      e.CreatedAt,
		Document:       string(doc),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
