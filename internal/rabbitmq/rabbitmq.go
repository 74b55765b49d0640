package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	BLOG_CREATED_QUEUE      = "blog.created"
	USER_CREATED_QUEUE      = "user.created"
	USER_INFO_UPDATED_QUEUE = "user.info-updated"
)

type MQConn struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func New(connString string) (*MQConn, error) {
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &MQConn{
		conn: conn,
		ch:   ch,
	}, nil
}

func (mq *MQConn) declareQueue(name string) (amqp.Queue, error) {
	return mq.ch.QueueDeclare(name, true, false, false, false, nil)
}

func (mq *MQConn) PublishJSON(ctx context.Context, queue string, body interface{}) error {
	q, err := mq.declareQueue(queue)
	if err != nil {
		return err
	}

	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return err
	}

	return mq.ch.PublishWithContext(
		ctx,
		"",
		q.Name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         bodyJSON,
		},
	)
}

func (mq *MQConn) Consume(queue string) (<-chan amqp.Delivery, error) {
	q, err := mq.declareQueue(queue)
	if err != nil {
		return nil, err
	}

	return mq.ch.Consume(q.Name, "", false, false, false, false, nil)
}

func (mq *MQConn) Close() {
	if mq.ch != nil {
		mq.ch.Close()
	}
	if mq.conn != nil {
		mq.conn.Close()
	}
}
