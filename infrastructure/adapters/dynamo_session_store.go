package adapters

import (
	"context"
	"encoding/json"
	"time"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/config"
	"ads-video-pipeline/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// dynamoSessionItem holds the whole session as one JSON payload. Every save
// replaces the document; last write wins.
type dynamoSessionItem struct {
	SessionKey string `dynamodbav:"session_key"`
	Payload    string `dynamodbav:"payload"`
	UpdatedAt  int64  `dynamodbav:"updated_at"`
}

type dynamoSessionStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoSessionStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.SessionStorePort {
	return &dynamoSessionStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoSessionStore) Load(ctx context.Context, sessionKey string) (*domain.WorkingSession, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			"session_key": {S: aws.String(sessionKey)},
		},
	}

	out, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to load session item", map[string]interface{}{
			"sessionKey": sessionKey,
		})
		return nil, err
	}
	if out.Item == nil {
		return nil, outbound.ErrSessionNotFound
	}

	var item dynamoSessionItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal session item", map[string]interface{}{
			"sessionKey": sessionKey,
		})
		return nil, err
	}

	var session domain.WorkingSession
	if err := json.Unmarshal([]byte(item.Payload), &session); err != nil {
		s.logger.ErrorWithFields(err, "Failed to decode session payload", map[string]interface{}{
			"sessionKey": sessionKey,
		})
		return nil, err
	}
	return &session, nil
}

func (s *dynamoSessionStore) Save(ctx context.Context, session *domain.WorkingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	item := dynamoSessionItem{
		SessionKey: session.Key,
		Payload:    string(payload),
		UpdatedAt:  time.Now().Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal session item", map[string]interface{}{
			"sessionKey": session.Key,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.TableName),
	}

	_, err = s.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to save session item", map[string]interface{}{
			"sessionKey": session.Key,
		})
		return err
	}
	return nil
}
