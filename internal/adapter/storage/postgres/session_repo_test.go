package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(clientID uuid.UUID) *domain.PaymentSession {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PaymentSession{
		SessionID:   uuid.New().String(),
		ClientID:    clientID,
		AmountCents: 4000,
		Token6:      "007123",
		Status:      domain.SessionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func sessionCols() []string {
	return []string{"session_id", "client_id", "amount_cents", "token6", "status", "created_at", "updated_at"}
}

func sessionRow(s *domain.PaymentSession) *pgxmock.Rows {
	return pgxmock.NewRows(sessionCols()).AddRow(
		s.SessionID, s.ClientID, s.AmountCents, s.Token6,
		s.Status, s.CreatedAt, s.UpdatedAt,
	)
}

func TestSessionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestSession(uuid.New())

	mock.ExpectExec("INSERT INTO payment_sessions").
		WithArgs(s.SessionID, s.ClientID, s.AmountCents, s.Token6,
			s.Status, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetBySessionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestSession(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM payment_sessions WHERE session_id").
		WithArgs(s.SessionID).
		WillReturnRows(sessionRow(s))

	result, err := repo.GetBySessionID(context.Background(), s.SessionID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.Token6, result.Token6)
	assert.Equal(t, domain.SessionStatusPending, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetBySessionID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_sessions WHERE session_id").
		WithArgs("missing-session").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetBySessionID(context.Background(), "missing-session")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Transition(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestSession(uuid.New())
	confirmed := *s
	confirmed.Status = domain.SessionStatusConfirmed

	mock.ExpectQuery("UPDATE payment_sessions SET status").
		WithArgs(domain.SessionStatusConfirmed, s.SessionID, domain.SessionStatusPending).
		WillReturnRows(sessionRow(&confirmed))

	result, err := repo.Transition(context.Background(), s.SessionID,
		domain.SessionStatusPending, domain.SessionStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusConfirmed, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Transition_StateConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	sessionID := uuid.New().String()

	// A concurrent caller already moved the session away from PENDING, so the
	// compare-and-set matches no row.
	mock.ExpectQuery("UPDATE payment_sessions SET status").
		WithArgs(domain.SessionStatusConfirmed, sessionID, domain.SessionStatusPending).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.Transition(context.Background(), sessionID,
		domain.SessionStatusPending, domain.SessionStatusConfirmed)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ports.ErrStateConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_ListByClient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	clientID := uuid.New()
	s1 := newTestSession(clientID)
	s2 := newTestSession(clientID)
	s2.Status = domain.SessionStatusConfirmed

	rows := pgxmock.NewRows(sessionCols()).
		AddRow(s2.SessionID, s2.ClientID, s2.AmountCents, s2.Token6, s2.Status, s2.CreatedAt, s2.UpdatedAt).
		AddRow(s1.SessionID, s1.ClientID, s1.AmountCents, s1.Token6, s1.Status, s1.CreatedAt, s1.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM payment_sessions WHERE client_id").
		WithArgs(clientID).
		WillReturnRows(rows)

	result, err := repo.ListByClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, s2.SessionID, result[0].SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
