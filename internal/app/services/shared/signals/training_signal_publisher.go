package signals

import (
	"context"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/app/models"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type trainingSignalPublisher struct {
	conn      *amqp091.Connection
	queueName string
	log       *zap.Logger
}

// trainingSignalEvent mirrors the knowledge entry minus the storage id so
// downstream training consumers are decoupled from the database layout.
type trainingSignalEvent struct {
	EventID    string   `json:"eventId"`
	EventType  string   `json:"eventType"`
	Symptoms   []string `json:"symptoms"`
	AgeGroup   string   `json:"ageGroup"`
	Gender     string   `json:"gender"`
	Diagnosis  string   `json:"diagnosis"`
	Confidence int      `json:"confidence"`
	EmittedAt  string   `json:"emittedAt"`
}

func NewTrainingSignalPublisher(conn *amqp091.Connection, internalConfig *config.InternalConfig, log *zap.Logger) contracts.TrainingSignalPublisher {
	return &trainingSignalPublisher{
		conn:      conn,
		queueName: internalConfig.Signals.TrainingQueue,
		log:       log,
	}
}

func (p *trainingSignalPublisher) PublishKnowledgeEntry(ctx context.Context, entry *models.KnowledgeBaseEntry) error {
	channel, err := p.conn.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	event := trainingSignalEvent{
		EventID:    uuid.NewString(),
		EventType:  constvars.TrainingSignalEventType,
		Symptoms:   entry.Symptoms,
		AgeGroup:   entry.AgeGroup,
		Gender:     entry.Gender,
		Diagnosis:  entry.Diagnosis,
		Confidence: entry.Confidence,
		EmittedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Debug("published training signal",
		zap.String("event_id", event.EventID),
		zap.String("queue", p.queueName),
	)
	return nil
}
