package repository

import (
	"context"
	"errors"
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
	defaultWorkItemsTableName = "work_items"
	workItemsCustomerIDIndex  = "customer_id-index"
	workItemsEmployeeIDIndex  = "assigned_employee_id-index"
	workItemsStatusIndex      = "status-index"
)

type workItemItem struct {
	ID                 string `dynamodbav:"id"`
	Kind               string `dynamodbav:"kind"`
	CustomerID         string `dynamodbav:"customer_id"`
	VehicleID          string `dynamodbav:"vehicle_id,omitempty"`
	Title              string `dynamodbav:"title"`
	Description        string `dynamodbav:"description,omitempty"`
	ServiceID          string `dynamodbav:"service_id,omitempty"`
	ServicePrice       string `dynamodbav:"service_price,omitempty"`
	EstimatedMinutes   int    `dynamodbav:"estimated_minutes,omitempty"`
	Date               string `dynamodbav:"date"`
	StartTime          string `dynamodbav:"start_time,omitempty"`
	EndTime            string `dynamodbav:"end_time,omitempty"`
	EndDate            string `dynamodbav:"end_date,omitempty"`
	Status             string `dynamodbav:"status"`
	AssignedEmployeeID string `dynamodbav:"assigned_employee_id,omitempty"`
	ProgressPercentage int    `dynamodbav:"progress_percentage"`
	LoggedHours        string `dynamodbav:"logged_hours"`
	TimerState         string `dynamodbav:"timer_state"`
	TimerStartedAt     string `dynamodbav:"timer_started_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// WorkItemDynamoRepository persists WorkItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: assigned_employee_id-index (PK: assigned_employee_id)
//   - GSI: status-index (PK: status)
//
// Status strings are normalized on the way out, so rows written by the
// legacy system (PENDING, UPCOMING, APPROVED, ONGOING) surface as the
// canonical enum.

type WorkItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkItemRepository = (*WorkItemDynamoRepository)(nil)

func NewWorkItemDynamoRepository(ddb *dynamodb.Client) *WorkItemDynamoRepository {
	return &WorkItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ITEMS_TABLE", defaultWorkItemsTableName),
	}
}

func (r *WorkItemDynamoRepository) Create(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error) {
	it := toWorkItemItem(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkItem{}, err
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
		return entities.WorkItem{}, err
	}
	return item, nil
}

func (r *WorkItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkItem{}, nil
	}

	var it workItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkItem{}, err
	}
	return fromWorkItemItem(it), nil
}

// Update replaces the full item. Last write wins; the only condition is that
// the item still exists.
func (r *WorkItemDynamoRepository) Update(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error) {
	it := toWorkItemItem(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkItem{}, nil
		}
		return entities.WorkItem{}, err
	}
	return item, nil
}

func (r *WorkItemDynamoRepository) ListAll(ctx context.Context) ([]entities.WorkItem, error) {
	var items []entities.WorkItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		decoded, err := decodeWorkItems(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *WorkItemDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkItem, error) {
	return r.queryIndex(ctx, workItemsCustomerIDIndex, "customer_id", customerID)
}

func (r *WorkItemDynamoRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.WorkItem, error) {
	return r.queryIndex(ctx, workItemsEmployeeIDIndex, "assigned_employee_id", employeeID)
}

func (r *WorkItemDynamoRepository) ListByStatus(ctx context.Context, status entities.WorkItemStatus) ([]entities.WorkItem, error) {
	return r.queryIndex(ctx, workItemsStatusIndex, "#status", string(status), withNameAlias("#status", "status"))
}

type queryOpt func(*dynamodb.QueryInput)

func withNameAlias(alias, name string) queryOpt {
	return func(in *dynamodb.QueryInput) {
		if in.ExpressionAttributeNames == nil {
			in.ExpressionAttributeNames = map[string]string{}
		}
		in.ExpressionAttributeNames[alias] = name
	}
}

func (r *WorkItemDynamoRepository) queryIndex(ctx context.Context, index, keyExpr, value string, opts ...queryOpt) ([]entities.WorkItem, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyExpr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	for _, opt := range opts {
		opt(in)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return decodeWorkItems(out.Items)
}

func decodeWorkItems(raw []map[string]types.AttributeValue) ([]entities.WorkItem, error) {
	items := make([]entities.WorkItem, 0, len(raw))
	for _, av := range raw {
		var it workItemItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkItemItem(it))
	}
	return items, nil
}

func toWorkItemItem(item entities.WorkItem) workItemItem {
	it := workItemItem{
		ID:                 item.ID,
		Kind:               string(item.Kind),
		CustomerID:         item.CustomerID,
		VehicleID:          item.VehicleID,
		Title:              item.Title,
		Description:        item.Description,
		ServiceID:          item.ServiceID,
		ServicePrice:       floatToString(item.ServicePrice),
		EstimatedMinutes:   item.EstimatedMinutes,
		Date:               item.Date,
		StartTime:          item.StartTime,
		EndTime:            item.EndTime,
		EndDate:            item.EndDate,
		Status:             string(item.Status),
		AssignedEmployeeID: item.AssignedEmployeeID,
		ProgressPercentage: item.ProgressPercentage,
		LoggedHours:        floatToString(item.LoggedHours),
		TimerState:         string(item.TimerState),
		CreatedAt:          item.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !item.TimerStartedAt.IsZero() {
		it.TimerStartedAt = item.TimerStartedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromWorkItemItem(it workItemItem) entities.WorkItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	servicePrice, _ := strconv.ParseFloat(it.ServicePrice, 64)
	loggedHours, _ := strconv.ParseFloat(it.LoggedHours, 64)

	item := entities.WorkItem{
		ID:                 it.ID,
		Kind:               entities.WorkItemKind(it.Kind),
		CustomerID:         it.CustomerID,
		VehicleID:          it.VehicleID,
		Title:              it.Title,
		Description:        it.Description,
		ServiceID:          it.ServiceID,
		ServicePrice:       servicePrice,
		EstimatedMinutes:   it.EstimatedMinutes,
		Date:               it.Date,
		StartTime:          it.StartTime,
		EndTime:            it.EndTime,
		EndDate:            it.EndDate,
		Status:             entities.NormalizeStatus(it.Status),
		AssignedEmployeeID: it.AssignedEmployeeID,
		ProgressPercentage: it.ProgressPercentage,
		LoggedHours:        loggedHours,
		TimerState:         entities.TimerState(it.TimerState),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.TimerState == "" {
		item.TimerState = entities.TimerStopped
	}
	if it.TimerStartedAt != "" {
		item.TimerStartedAt, _ = time.Parse(time.RFC3339Nano, it.TimerStartedAt)
	}
	return item
}
