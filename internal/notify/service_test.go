package notify

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anygymuk/anygymAPI/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func TestEnqueue(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@anygym.uk", "AnyGym")

	mock.Regexp().ExpectLPush("notifications", `.*pass_issued.*`).SetVal(1)

	err := svc.Enqueue(context.Background(), Job{
		Type:    "pass_issued",
		To:      "sam@test.com",
		Name:    "Sam",
		Subject: "Your AnyGym Pass",
		Body:    "Pass code: GP-ABC123DE",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPassIssued(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@anygym.uk", "AnyGym")

	var captured []byte
	mock.CustomMatch(func(expected, actual []interface{}) error {
		captured = []byte(actual[2].(string))
		return nil
	}).ExpectLPush("notifications", "ignored").SetVal(1)

	validUntil := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	err := svc.SendPassIssued(context.Background(), "sam@test.com", "Sam", "North Gym", "North Street", "GP-ABC123DE", validUntil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	var job Job
	require.NoError(t, json.Unmarshal(captured, &job))
	assert.Equal(t, "pass_issued", job.Type)
	assert.Equal(t, "sam@test.com", job.To)
	assert.Equal(t, "Your AnyGym Pass - North Gym", job.Subject)
	assert.Contains(t, job.Body, "GP-ABC123DE")
	assert.Contains(t, job.Body, "North Street")
}

func TestQueueLength(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@anygym.uk", "AnyGym")

	mock.ExpectLLen("notifications").SetVal(3)

	length := svc.QueueLength(context.Background())
	assert.Equal(t, int64(3), length)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@anygym.uk", "AnyGym")

	mock.ExpectLLen("notifications").SetErr(assert.AnError)

	length := svc.QueueLength(context.Background())
	assert.Equal(t, int64(0), length)
}
