package repository

import (
	"context"
	"os"
	"time"

	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "gateway_notifications"
	notificationsPSPIndex         = "psp_reference-index"
)

// DynamoAPI is the part of the DynamoDB client the repository uses.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type notificationItem struct {
	ID                string `dynamodbav:"id"`
	EventCode         string `dynamodbav:"event_code"`
	PSPReference      string `dynamodbav:"psp_reference"`
	OriginalReference string `dynamodbav:"original_reference,omitempty"`
	MerchantReference string `dynamodbav:"merchant_reference,omitempty"`
	MerchantAccount   string `dynamodbav:"merchant_account,omitempty"`
	Currency          string `dynamodbav:"currency,omitempty"`
	Value             *int64 `dynamodbav:"value,omitempty"`
	Success           bool   `dynamodbav:"success"`
	Reason            string `dynamodbav:"reason,omitempty"`
	PaymentMethod     string `dynamodbav:"payment_method,omitempty"`
	Live              bool   `dynamodbav:"live"`
	EventDate         string `dynamodbav:"event_date,omitempty"`
	ReceivedAt        string `dynamodbav:"received_at"`
}

// NotificationDynamoRepository persists gateway notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: psp_reference-index (PK: psp_reference, SK: received_at)
type NotificationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoAPI) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

// ListByPSPReference returns notifications oldest first, following every
// result page.
func (r *NotificationDynamoRepository) ListByPSPReference(ctx context.Context, pspReference string) ([]entities.Notification, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsPSPIndex),
		KeyConditionExpression: aws.String("psp_reference = :psp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":psp": &types.AttributeValueMemberS{Value: pspReference},
		},
		ScanIndexForward: aws.Bool(true),
	})

	items := make([]entities.Notification, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			items = append(items, fromNotificationItem(it))
		}
	}
	return items, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	it := notificationItem{
		ID:                n.ID,
		EventCode:         n.EventCode,
		PSPReference:      n.PSPReference,
		OriginalReference: n.OriginalReference,
		MerchantReference: n.MerchantReference,
		MerchantAccount:   n.MerchantAccount,
		Success:           n.Success,
		Reason:            n.Reason,
		PaymentMethod:     n.PaymentMethod,
		Live:              n.Live,
		ReceivedAt:        n.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
	if n.Amount != nil {
		v := n.Amount.Value
		it.Currency = n.Amount.Currency
		it.Value = &v
	}
	if !n.EventDate.IsZero() {
		it.EventDate = n.EventDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromNotificationItem(it notificationItem) entities.Notification {
	n := entities.Notification{
		ID:                it.ID,
		EventCode:         it.EventCode,
		PSPReference:      it.PSPReference,
		OriginalReference: it.OriginalReference,
		MerchantReference: it.MerchantReference,
		MerchantAccount:   it.MerchantAccount,
		Success:           it.Success,
		Reason:            it.Reason,
		PaymentMethod:     it.PaymentMethod,
		Live:              it.Live,
	}
	if it.Value != nil {
		n.Amount = &entities.Amount{Currency: it.Currency, Value: *it.Value}
	}
	n.EventDate, _ = time.Parse(time.RFC3339Nano, it.EventDate)
	n.ReceivedAt, _ = time.Parse(time.RFC3339Nano, it.ReceivedAt)
	return n
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
