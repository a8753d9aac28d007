package commands_test

import (
	"testing"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/payment"
	"freightbid/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAgedPendingTransaction(t *testing.T, customerID kernel.UUID, age time.Duration) *payment.Transaction {
	t.Helper()
	created := time.Now().UTC().Add(-age)
	tx, err := payment.RestoreTransaction(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		420, payment.MethodTelebirr, payment.StatusPending, "",
		created, created, 1,
	)
	require.NoError(t, err)
	return tx
}

func TestReconcilePaymentsCommandHandler_Handle_ExpiresStaleTransactions(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewReconcilePaymentsCommand(30 * time.Minute)
	require.NoError(t, err)

	stale := newAgedPendingTransaction(t, customerID, 2*time.Hour)
	fresh := newAgedPendingTransaction(t, kernel.NewUUID(), 5*time.Minute)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetAllPending", mock.Anything).
		Return([]*payment.Transaction{stale, fresh}, nil).Once()
	paymentRepo.On("Update", mock.Anything, stale).Return(nil).Once()

	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Send", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationStatusUpdate && n.RecipientID.IsEqual(customerID)
	})).Return(nil).Once()

	h := commands.NewReconcilePaymentsCommandHandler(factory, sink, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, payment.StatusFailed, stale.Status())
	assert.Equal(t, payment.StatusPending, fresh.Status())
	paymentRepo.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestReconcilePaymentsCommandHandler_Handle_NothingExpired_NoCommit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcilePaymentsCommand(30 * time.Minute)
	require.NoError(t, err)

	fresh := newAgedPendingTransaction(t, kernel.NewUUID(), time.Minute)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetAllPending", mock.Anything).
		Return([]*payment.Transaction{fresh}, nil).Once()

	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)

	h := commands.NewReconcilePaymentsCommandHandler(factory, sink, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNewReconcilePaymentsCommand_NonPositiveCutoff_Fails(t *testing.T) {
	_, err := commands.NewReconcilePaymentsCommand(0)
	require.Error(t, err)
}
