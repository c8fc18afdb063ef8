package query

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

const createNotificationJob = `INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

type RecordGatewayEventParams struct {
	EventID          string
	Kind             string
	AuthorizationRef pgtype.Text
	Outcome          string
	Detail           pgtype.Text
}

const recordGatewayEvent = `INSERT INTO gateway_events (event_id, kind, authorization_ref, outcome, detail)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (event_id) DO NOTHING`

func (q *Queries) RecordGatewayEvent(ctx context.Context, db DBTX, arg RecordGatewayEventParams) error {
	_, err := db.Exec(ctx, recordGatewayEvent, arg.EventID, arg.Kind, arg.AuthorizationRef, arg.Outcome, arg.Detail)
	return err
}
