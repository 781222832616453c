package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"caterlane/internal/domain/entities"
	"caterlane/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesBookingEmailIdx  = "booking_email-index"
)

type invoiceItem struct {
	ID           string `dynamodbav:"id"`
	Status       string `dynamodbav:"status"`
	BookingEmail string `dynamodbav:"booking_email"`
	GrandTotal   string `dynamodbav:"grand_total"`
	Payload      string `dynamodbav:"payload"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_email-index (PK: booking_email)
//
// The assembled invoice body is stored as a JSON payload attribute; status and
// the queryable fields are lifted to top-level attributes so status changes
// never rewrite the payload.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it, err := toInvoiceItem(inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it)
}

func (r *InvoiceDynamoRepository) ListByBookingEmail(ctx context.Context, email string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesBookingEmailIdx),
		KeyConditionExpression: aws.String("booking_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		inv, err := fromInvoiceItem(it)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it)
}

func toInvoiceItem(inv entities.Invoice) (invoiceItem, error) {
	payload, err := json.Marshal(inv)
	if err != nil {
		return invoiceItem{}, err
	}
	return invoiceItem{
		ID:           inv.ID,
		Status:       string(inv.Status),
		BookingEmail: inv.Booking.EmailAddress,
		GrandTotal:   strconv.FormatFloat(inv.GrandTotal, 'f', -1, 64),
		Payload:      string(payload),
		CreatedAt:    inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromInvoiceItem(it invoiceItem) (entities.Invoice, error) {
	var inv entities.Invoice
	if it.Payload != "" {
		if err := json.Unmarshal([]byte(it.Payload), &inv); err != nil {
			return entities.Invoice{}, err
		}
	}
	inv.ID = it.ID
	inv.Status = entities.InvoiceStatus(it.Status)
	inv.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	inv.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return inv, nil
}
