package repository

import (
	"context"
	"strconv"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSlugConfigsTableName = "slug_configs"

	// Tenants without tiers store their single config under this sort key.
	defaultPlanSortKey = "-"
)

type slugConfigItem struct {
	Slug               string `dynamodbav:"slug"`
	PlanCode           string `dynamodbav:"plan_code"`
	RecipientName      string `dynamodbav:"recipient_name"`
	ProductDescription string `dynamodbav:"product_description"`
	Amount             string `dynamodbav:"amount"`
	RedirectURL        string `dynamodbav:"redirect_url,omitempty"`
}

// SlugConfigDynamoRepository reads SlugConfig entities from DynamoDB.
//
// Table requirements:
//   - PK: slug (string)
//   - SK: plan_code (string, "-" when the tenant has a single plan)
type SlugConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISlugConfigRepository = (*SlugConfigDynamoRepository)(nil)

func NewSlugConfigDynamoRepository(ddb *dynamodb.Client) *SlugConfigDynamoRepository {
	return &SlugConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SLUG_CONFIGS_TABLE", defaultSlugConfigsTableName),
	}
}

func (r *SlugConfigDynamoRepository) GetBySlugAndPlan(ctx context.Context, slug, planCode string) (entities.SlugConfig, error) {
	if planCode == "" {
		planCode = defaultPlanSortKey
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slug":      &types.AttributeValueMemberS{Value: slug},
			"plan_code": &types.AttributeValueMemberS{Value: planCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SlugConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.SlugConfig{}, nil
	}

	var it slugConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SlugConfig{}, err
	}
	return fromSlugConfigItem(it), nil
}

func fromSlugConfigItem(it slugConfigItem) entities.SlugConfig {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	planCode := it.PlanCode
	if planCode == defaultPlanSortKey {
		planCode = ""
	}
	return entities.SlugConfig{
		Slug:               it.Slug,
		PlanCode:           planCode,
		RecipientName:      it.RecipientName,
		ProductDescription: it.ProductDescription,
		Amount:             amount,
		RedirectURL:        it.RedirectURL,
	}
}
