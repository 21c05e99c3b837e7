package repository

import (
	"context"
	"time"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProgressUpdatesTableName = "progress_updates"
	progressUpdatesWorkItemIDIndex  = "work_item_id-index"
)

type progressUpdateItem struct {
	ID         string `dynamodbav:"id"`
	WorkItemID string `dynamodbav:"work_item_id"`
	Stage      string `dynamodbav:"stage"`
	Percentage int    `dynamodbav:"percentage"`
	Remarks    string `dynamodbav:"remarks,omitempty"`
	UpdatedBy  string `dynamodbav:"updated_by,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ProgressUpdateDynamoRepository is an append-only store for progress
// history rows, keyed by id with a work_item_id-index GSI for lookups.
type ProgressUpdateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProgressUpdateRepository = (*ProgressUpdateDynamoRepository)(nil)

func NewProgressUpdateDynamoRepository(ddb *dynamodb.Client) *ProgressUpdateDynamoRepository {
	return &ProgressUpdateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRESS_UPDATES_TABLE", defaultProgressUpdatesTableName),
	}
}

func (r *ProgressUpdateDynamoRepository) Append(ctx context.Context, update entities.ProgressUpdate) (entities.ProgressUpdate, error) {
	it := progressUpdateItem{
		ID:         update.ID,
		WorkItemID: update.WorkItemID,
		Stage:      update.Stage,
		Percentage: update.Percentage,
		Remarks:    update.Remarks,
		UpdatedBy:  update.UpdatedBy,
		CreatedAt:  update.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProgressUpdate{}, err
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
		return entities.ProgressUpdate{}, err
	}
	return update, nil
}

func (r *ProgressUpdateDynamoRepository) ListByWorkItemID(ctx context.Context, workItemID string) ([]entities.ProgressUpdate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(progressUpdatesWorkItemIDIndex),
		KeyConditionExpression: aws.String("work_item_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workItemID},
		},
	})
	if err != nil {
		return nil, err
	}

	updates := make([]entities.ProgressUpdate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it progressUpdateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		updates = append(updates, entities.ProgressUpdate{
			ID:         it.ID,
			WorkItemID: it.WorkItemID,
			Stage:      it.Stage,
			Percentage: it.Percentage,
			Remarks:    it.Remarks,
			UpdatedBy:  it.UpdatedBy,
			CreatedAt:  createdAt,
		})
	}
	return updates, nil
}
