package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier is whatever tells the staff about a new lead. In production
// it is the SMTP sender; tests plug in a fake.
type LeadNotifier interface {
	SendLeadNotification(payload LeadCapturedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	log.Printf("[worker] waiting for messages on %q", queueName)

	for d := range msgs {
		var payload LeadCapturedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("[worker] malformed message, rejecting: %s", err)
			// Poison message: reject without requeue so it lands in the DLQ.
			d.Nack(false, false)
			continue
		}

		if err := w.Notifier.SendLeadNotification(payload); err != nil {
			log.Printf("[worker] notification for lead %s failed: %s", payload.LeadID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("[worker] staff notified about lead %s (%s)", payload.LeadID, payload.Name)
		d.Ack(false)
	}
}
