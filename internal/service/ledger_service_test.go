package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc         *LedgerServiceImpl
	clientRepo  *mocks.MockClientRepository
	sessionRepo *mocks.MockSessionRepository
	cache       *mocks.MockClientLookupCache
	notifier    *mocks.MockTokenNotifier
	ctrl        *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		clientRepo:  mocks.NewMockClientRepository(ctrl),
		sessionRepo: mocks.NewMockSessionRepository(ctrl),
		cache:       mocks.NewMockClientLookupCache(ctrl),
		notifier:    mocks.NewMockTokenNotifier(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewLedgerService(
		d.clientRepo, d.sessionRepo, d.cache, d.notifier,
		15*time.Minute, zerolog.Nop(),
	)
	return d
}

func testClient(balance int64) *domain.Client {
	now := time.Now().UTC()
	return &domain.Client{
		ID:           uuid.New(),
		Document:     "CC-1002003000",
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Phone:        "3001234567",
		BalanceCents: balance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testSession(clientID uuid.UUID, amount int64) *domain.PaymentSession {
	now := time.Now().UTC()
	return &domain.PaymentSession{
		SessionID:   uuid.New().String(),
		ClientID:    clientID,
		AmountCents: amount,
		Token6:      "007123",
		Status:      domain.SessionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// expectResolve wires the cache-miss lookup path for a client.
func expectResolve(d *ledgerTestDeps, c *domain.Client) {
	d.cache.EXPECT().GetClientID(gomock.Any(), c.Document, c.Phone).Return(uuid.Nil, false, nil)
	d.clientRepo.EXPECT().GetByDocumentAndPhone(gomock.Any(), c.Document, c.Phone).Return(c, nil)
	d.cache.EXPECT().SetClientID(gomock.Any(), c.Document, c.Phone, c.ID, clientLookupTTL).Return(nil)
}

func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

// ==================== RegisterClient ====================

func TestLedgerService_RegisterClient_Success(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	in := ports.RegisterClientInput{
		Document: "CC-1002003000",
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "3001234567",
	}

	d.clientRepo.EXPECT().FindByDocumentOrEmail(ctx, in.Document, in.Email).Return(nil, nil)
	d.clientRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Client) error {
			assert.Equal(t, int64(0), c.BalanceCents)
			assert.Equal(t, in.Document, c.Document)
			return nil
		})

	id, err := d.svc.RegisterClient(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestLedgerService_RegisterClient_Duplicate(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	existing := testClient(0)
	in := ports.RegisterClientInput{
		Document: existing.Document,
		Name:     "Someone Else",
		Email:    "other@example.com",
		Phone:    "3000000000",
	}

	d.clientRepo.EXPECT().FindByDocumentOrEmail(ctx, in.Document, in.Email).Return(existing, nil)

	_, err := d.svc.RegisterClient(ctx, in)
	assertAppCode(t, err, "CLI_001")
}

func TestLedgerService_RegisterClient_DuplicateRace(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	in := ports.RegisterClientInput{
		Document: "CC-1002003000",
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "3001234567",
	}

	// Pre-check passes, but a concurrent insert wins and the unique index fires.
	d.clientRepo.EXPECT().FindByDocumentOrEmail(ctx, in.Document, in.Email).Return(nil, nil)
	d.clientRepo.EXPECT().Create(ctx, gomock.Any()).Return(ports.ErrDuplicate)

	_, err := d.svc.RegisterClient(ctx, in)
	assertAppCode(t, err, "CLI_001")
}

func TestLedgerService_RegisterClient_MissingFields(t *testing.T) {
	d := setupLedgerService(t)

	_, err := d.svc.RegisterClient(context.Background(), ports.RegisterClientInput{
		Document: "CC-1002003000",
		Name:     "  ",
		Email:    "ada@example.com",
		Phone:    "3001234567",
	})
	assertAppCode(t, err, "VAL_001")
}

// ==================== TopUp ====================

func TestLedgerService_TopUp_Success(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(1000)
	credited := *c
	credited.BalanceCents = 6000

	expectResolve(d, c)
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(5000)).Return(&credited, nil)

	balance, err := d.svc.TopUp(ctx, c.Document, c.Phone, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), balance)
}

func TestLedgerService_TopUp_CacheHit(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(0)
	credited := *c
	credited.BalanceCents = 2500

	d.cache.EXPECT().GetClientID(gomock.Any(), c.Document, c.Phone).Return(c.ID, true, nil)
	d.clientRepo.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(2500)).Return(&credited, nil)

	balance, err := d.svc.TopUp(ctx, c.Document, c.Phone, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), balance)
}

func TestLedgerService_TopUp_NonPositiveAmount(t *testing.T) {
	d := setupLedgerService(t)

	_, err := d.svc.TopUp(context.Background(), "CC-1002003000", "3001234567", 0)
	assertAppCode(t, err, "VAL_001")

	_, err = d.svc.TopUp(context.Background(), "CC-1002003000", "3001234567", -100)
	assertAppCode(t, err, "VAL_001")
}

func TestLedgerService_TopUp_ClientNotFound(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	d.cache.EXPECT().GetClientID(gomock.Any(), "CC-9", "300").Return(uuid.Nil, false, nil)
	d.clientRepo.EXPECT().GetByDocumentAndPhone(gomock.Any(), "CC-9", "300").Return(nil, nil)

	_, err := d.svc.TopUp(ctx, "CC-9", "300", 1000)
	assertAppCode(t, err, "CLI_002")
}

// ==================== InitiatePayment ====================

func TestLedgerService_InitiatePayment_Success(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	var createdToken string

	expectResolve(d, c)
	d.sessionRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *domain.PaymentSession) error {
			assert.Equal(t, c.ID, s.ClientID)
			assert.Equal(t, int64(4000), s.AmountCents)
			assert.Equal(t, domain.SessionStatusPending, s.Status)
			assert.Len(t, s.Token6, 6)
			createdToken = s.Token6
			return nil
		})
	d.notifier.EXPECT().DeliverToken(ctx, c.Email, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, token6 string) error {
			assert.Equal(t, createdToken, token6)
			return nil
		})

	sessionID, err := d.svc.InitiatePayment(ctx, c.Document, c.Phone, 4000)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
}

func TestLedgerService_InitiatePayment_InsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(3999)
	expectResolve(d, c)

	_, err := d.svc.InitiatePayment(ctx, c.Document, c.Phone, 4000)
	assertAppCode(t, err, "PAY_001")
}

func TestLedgerService_InitiatePayment_NotifierFailureIsNotFatal(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	expectResolve(d, c)
	d.sessionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().DeliverToken(ctx, c.Email, gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: connection refused"))

	sessionID, err := d.svc.InitiatePayment(ctx, c.Document, c.Phone, 4000)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
}

// ==================== ConfirmPayment ====================

func TestLedgerService_ConfirmPayment_Success(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	s := testSession(c.ID, 4000)
	debited := *c
	debited.BalanceCents = 6000
	confirmed := *s
	confirmed.Status = domain.SessionStatusConfirmed

	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(-4000)).Return(&debited, nil)
	d.sessionRepo.EXPECT().Transition(ctx, s.SessionID,
		domain.SessionStatusPending, domain.SessionStatusConfirmed).Return(&confirmed, nil)

	balance, err := d.svc.ConfirmPayment(ctx, s.SessionID, s.Token6)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), balance)
}

func TestLedgerService_ConfirmPayment_SessionNotFound(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	d.sessionRepo.EXPECT().GetBySessionID(ctx, "missing").Return(nil, nil)

	_, err := d.svc.ConfirmPayment(ctx, "missing", "007123")
	assertAppCode(t, err, "SES_001")
}

func TestLedgerService_ConfirmPayment_InvalidToken(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	s := testSession(c.ID, 4000)

	// No transition and no debit: the session stays PENDING and retryable.
	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)

	_, err := d.svc.ConfirmPayment(ctx, s.SessionID, "999999")
	assertAppCode(t, err, "SES_003")
}

func TestLedgerService_ConfirmPayment_InsufficientAtConfirmation(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(1000)
	s := testSession(c.ID, 4000)
	cancelled := *s
	cancelled.Status = domain.SessionStatusCancelled

	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(-4000)).
		Return(nil, ports.ErrInsufficientBalance)
	d.sessionRepo.EXPECT().Transition(ctx, s.SessionID,
		domain.SessionStatusPending, domain.SessionStatusCancelled).Return(&cancelled, nil)

	_, err := d.svc.ConfirmPayment(ctx, s.SessionID, s.Token6)
	assertAppCode(t, err, "PAY_002")
}

func TestLedgerService_ConfirmPayment_LostRaceCompensates(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	s := testSession(c.ID, 4000)
	debited := *c
	debited.BalanceCents = 6000
	settled := *s
	settled.Status = domain.SessionStatusConfirmed
	restored := *c

	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(-4000)).Return(&debited, nil)
	d.sessionRepo.EXPECT().Transition(ctx, s.SessionID,
		domain.SessionStatusPending, domain.SessionStatusConfirmed).
		Return(nil, ports.ErrStateConflict)
	// Mandatory compensation credit after losing the settlement race.
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(4000)).Return(&restored, nil)
	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(&settled, nil)

	_, err := d.svc.ConfirmPayment(ctx, s.SessionID, s.Token6)
	assertAppCode(t, err, "SES_002")
}

func TestLedgerService_ConfirmPayment_AlreadySettled(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	s := testSession(c.ID, 4000)
	s.Status = domain.SessionStatusConfirmed

	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)

	_, err := d.svc.ConfirmPayment(ctx, s.SessionID, s.Token6)
	assertAppCode(t, err, "SES_002")
}

func TestLedgerService_ConfirmPayment_LazyExpiry(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(10000)
	s := testSession(c.ID, 4000)
	s.CreatedAt = time.Now().UTC().Add(-20 * time.Minute)
	expired := *s
	expired.Status = domain.SessionStatusExpired

	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)
	d.sessionRepo.EXPECT().Transition(ctx, s.SessionID,
		domain.SessionStatusPending, domain.SessionStatusExpired).Return(&expired, nil)

	_, err := d.svc.ConfirmPayment(ctx, s.SessionID, s.Token6)
	assertAppCode(t, err, "SES_002")
}

func TestLedgerService_ConfirmPayment_ExpiryDisabled(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	// Zero TTL means sessions never expire.
	d.svc = NewLedgerService(d.clientRepo, d.sessionRepo, d.cache, d.notifier, 0, zerolog.Nop())

	c := testClient(10000)
	s := testSession(c.ID, 4000)
	s.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	debited := *c
	debited.BalanceCents = 6000
	confirmed := *s
	confirmed.Status = domain.SessionStatusConfirmed

	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)
	d.clientRepo.EXPECT().AdjustBalance(ctx, c.ID, int64(-4000)).Return(&debited, nil)
	d.sessionRepo.EXPECT().Transition(ctx, s.SessionID,
		domain.SessionStatusPending, domain.SessionStatusConfirmed).Return(&confirmed, nil)

	_, err := d.svc.ConfirmPayment(ctx, s.SessionID, s.Token6)
	assert.NoError(t, err)
}

// ==================== Balance / listings ====================

func TestLedgerService_Balance(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(7500)
	expectResolve(d, c)

	balance, err := d.svc.Balance(ctx, c.Document, c.Phone)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), balance)
}

func TestLedgerService_Balance_CacheFailureFallsThrough(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(7500)
	d.cache.EXPECT().GetClientID(gomock.Any(), c.Document, c.Phone).
		Return(uuid.Nil, false, errors.New("redis down"))
	d.clientRepo.EXPECT().GetByDocumentAndPhone(gomock.Any(), c.Document, c.Phone).Return(c, nil)
	d.cache.EXPECT().SetClientID(gomock.Any(), c.Document, c.Phone, c.ID, clientLookupTTL).
		Return(errors.New("redis down"))

	balance, err := d.svc.Balance(ctx, c.Document, c.Phone)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), balance)
}

func TestLedgerService_ListSessions(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	c := testClient(0)
	sessions := []domain.PaymentSession{*testSession(c.ID, 4000), *testSession(c.ID, 2000)}

	expectResolve(d, c)
	d.sessionRepo.EXPECT().ListByClient(ctx, c.ID).Return(sessions, nil)

	result, err := d.svc.ListSessions(ctx, c.Document, c.Phone)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestLedgerService_RevealToken(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	s := testSession(uuid.New(), 4000)
	d.sessionRepo.EXPECT().GetBySessionID(ctx, s.SessionID).Return(s, nil)

	token, err := d.svc.RevealToken(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, s.Token6, token)
}

func TestLedgerService_RevealToken_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	ctx := context.Background()

	d.sessionRepo.EXPECT().GetBySessionID(ctx, "missing").Return(nil, nil)

	_, err := d.svc.RevealToken(ctx, "missing")
	assertAppCode(t, err, "SES_001")
}
