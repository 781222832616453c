package repository

import (
	"context"
	"time"

	"caterlane/internal/domain/entities"
	"caterlane/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "booking_payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type bookingPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	InvoiceID    string                 `dynamodbav:"invoice_id"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BookingPaymentDynamoRepository persists BookingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type BookingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingPaymentRepository = (*BookingPaymentDynamoRepository)(nil)

func NewBookingPaymentDynamoRepository(ddb *dynamodb.Client) *BookingPaymentDynamoRepository {
	return &BookingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKING_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *BookingPaymentDynamoRepository) Create(ctx context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
	it := toBookingPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookingPayment{}, err
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
		return entities.BookingPayment{}, err
	}
	return p, nil
}

func (r *BookingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingPayment{}, nil
	}

	var it bookingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingPayment{}, err
	}
	return fromBookingPaymentItem(it), nil
}

func (r *BookingPaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.BookingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BookingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingPaymentItem(it))
	}
	return items, nil
}

func toBookingPaymentItem(p entities.BookingPayment) bookingPaymentItem {
	return bookingPaymentItem{
		ID:           p.ID,
		InvoiceID:    p.InvoiceID,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromBookingPaymentItem(it bookingPaymentItem) entities.BookingPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.BookingPayment{
		ID:           it.ID,
		InvoiceID:    it.InvoiceID,
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
