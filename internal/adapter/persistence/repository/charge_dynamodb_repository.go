package repository

import (
	"context"
	"strconv"
	"time"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChargesTableName    = "charges"
	chargesIdempotencyKeyIndex = "idempotency_key-index"
)

type chargeItem struct {
	ID                 string `dynamodbav:"id"`
	Slug               string `dynamodbav:"slug"`
	InternalCustomerID string `dynamodbav:"customer_id"`
	GatewayCustomerID  string `dynamodbav:"asaas_customer_id"`
	IdempotencyKey     string `dynamodbav:"idempotency_key,omitempty"`
	Method             string `dynamodbav:"method"`
	Amount             string `dynamodbav:"amount"`
	Status             string `dynamodbav:"status"`
	PixPayload         string `dynamodbav:"pix_payload,omitempty"`
	PixQRImage         string `dynamodbav:"pix_qr_image,omitempty"`
	InvoiceURL         string `dynamodbav:"invoice_url,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: idempotency_key-index (PK: idempotency_key)
type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	it := toChargeItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Charge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesIdempotencyKeyIndex),
		KeyConditionExpression: aws.String("idempotency_key = :key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: key},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Items) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ChargeStatus) (entities.Charge, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		ReturnValues:        types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Charge{}, err
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:                 c.ID,
		Slug:               c.Slug,
		InternalCustomerID: c.InternalCustomerID,
		GatewayCustomerID:  c.GatewayCustomerID,
		IdempotencyKey:     c.IdempotencyKey,
		Method:             string(c.Method),
		Amount:             strconv.FormatFloat(c.Amount, 'f', 2, 64),
		Status:             string(c.Status),
		PixPayload:         c.PixPayload,
		PixQRImage:         c.PixQRImage,
		InvoiceURL:         c.InvoiceURL,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Charge{
		ID:                 it.ID,
		Slug:               it.Slug,
		InternalCustomerID: it.InternalCustomerID,
		GatewayCustomerID:  it.GatewayCustomerID,
		IdempotencyKey:     it.IdempotencyKey,
		Method:             entities.PaymentMethod(it.Method),
		Amount:             amount,
		Status:             entities.ChargeStatus(it.Status),
		PixPayload:         it.PixPayload,
		PixQRImage:         it.PixQRImage,
		InvoiceURL:         it.InvoiceURL,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
