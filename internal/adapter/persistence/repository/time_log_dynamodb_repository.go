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

const (
	defaultTimeLogsTableName = "time_logs"
	timeLogsWorkItemIDIndex  = "work_item_id-index"
)

type timeLogItem struct {
	ID          string `dynamodbav:"id"`
	WorkItemID  string `dynamodbav:"work_item_id"`
	Hours       string `dynamodbav:"hours"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type TimeLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeLogRepository = (*TimeLogDynamoRepository)(nil)

func NewTimeLogDynamoRepository(ddb *dynamodb.Client) *TimeLogDynamoRepository {
	return &TimeLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_LOGS_TABLE", defaultTimeLogsTableName),
	}
}

func (r *TimeLogDynamoRepository) Append(ctx context.Context, log entities.TimeLog) (entities.TimeLog, error) {
	it := timeLogItem{
		ID:          log.ID,
		WorkItemID:  log.WorkItemID,
		Hours:       floatToString(log.Hours),
		Description: log.Description,
		CreatedAt:   log.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TimeLog{}, err
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
		return entities.TimeLog{}, err
	}
	return log, nil
}

func (r *TimeLogDynamoRepository) ListByWorkItemID(ctx context.Context, workItemID string) ([]entities.TimeLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(timeLogsWorkItemIDIndex),
		KeyConditionExpression: aws.String("work_item_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workItemID},
		},
	})
	if err != nil {
		return nil, err
	}

	logs := make([]entities.TimeLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it timeLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		hours, _ := strconv.ParseFloat(it.Hours, 64)
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		logs = append(logs, entities.TimeLog{
			ID:          it.ID,
			WorkItemID:  it.WorkItemID,
			Hours:       hours,
			Description: it.Description,
			CreatedAt:   createdAt,
		})
	}
	return logs, nil
}
