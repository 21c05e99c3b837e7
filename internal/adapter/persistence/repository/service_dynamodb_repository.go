package repository

import (
	"context"
	"strconv"
	"time"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceOfferingItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Description      string `dynamodbav:"description,omitempty"`
	Price            string `dynamodbav:"price"`
	EstimatedMinutes int    `dynamodbav:"estimated_minutes"`
	Active           bool   `dynamodbav:"active"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

type ServiceOfferingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceOfferingDynamoRepository)(nil)

func NewServiceOfferingDynamoRepository(ddb *dynamodb.Client) *ServiceOfferingDynamoRepository {
	return &ServiceOfferingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceOfferingDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOffering, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ServiceOffering{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOffering{}, nil
	}

	var it serviceOfferingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOffering{}, err
	}
	return fromServiceOfferingItem(it), nil
}

// ListActive scans the catalog. The table is small and rarely written, a
// filtered scan is fine here.
func (r *ServiceOfferingDynamoRepository) ListActive(ctx context.Context) ([]entities.ServiceOffering, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.ServiceOffering, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOfferingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceOfferingItem(it))
	}
	return services, nil
}

func fromServiceOfferingItem(it serviceOfferingItem) entities.ServiceOffering {
	price, _ := strconv.ParseFloat(it.Price, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceOffering{
		ID:               it.ID,
		Name:             it.Name,
		Description:      it.Description,
		Price:            price,
		EstimatedMinutes: it.EstimatedMinutes,
		Active:           it.Active,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
