package repository

import (
	"context"

	"datebook_funnel/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSiteSlugsTableName = "site_slugs"

// SiteSlugDynamoRepository checks site slug reservations in DynamoDB.
// A row with PK site_slug means the slug is taken.
type SiteSlugDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteSlugRepository = (*SiteSlugDynamoRepository)(nil)

func NewSiteSlugDynamoRepository(ddb *dynamodb.Client) *SiteSlugDynamoRepository {
	return &SiteSlugDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITE_SLUGS_TABLE", defaultSiteSlugsTableName),
	}
}

func (r *SiteSlugDynamoRepository) Exists(ctx context.Context, siteSlug string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"site_slug": &types.AttributeValueMemberS{Value: siteSlug},
		},
		ProjectionExpression: aws.String("site_slug"),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}
