package interactor

import (
	"context"
	"fmt"

	"github.com/instapay/transaction-service/internal/domain/gateways"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
)

// SuspiciousTransaction flags a transaction after an admin report: the
// sender gets an email report and the record moves to Suspicious, which
// accepts no further automated transition.
func (i *TransactionInteractor) SuspiciousTransaction(ctx context.Context, transactionID string) error {
	transaction, err := i.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if transaction.Status == models.StatusSuspicious {
		return apperrors.NewConflictError("transaction already reported before")
	}
	if !models.CanTransition(transaction.Status, models.StatusSuspicious) {
		return apperrors.NewConflictError("This transaction can't be reported")
	}

	senderAccount, err := i.accounts.GetAccount(ctx, transaction.SenderAccountID)
	if err != nil {
		return err
	}
	receiverAccount, err := i.accounts.GetAccount(ctx, transaction.ReceiverAccountID)
	if err != nil {
		return err
	}

	sender, err := i.users.FindUser(ctx, gateways.FindUserQuery{ID: senderAccount.UserID})
	if err != nil {
		return err
	}
	receiver, err := i.users.FindUser(ctx, gateways.FindUserQuery{ID: receiverAccount.UserID})
	if err != nil {
		return err
	}

	report := suspiciousReportHTML(receiver.Email, transaction)
	if err = i.mail.SendEmail(ctx, sender.Email, "Suspicious Transaction", report); err != nil {
		return err
	}

	return i.setStatus(ctx, transaction, models.StatusSuspicious)
}

func suspiciousReportHTML(receiverEmail string, transaction *models.Transaction) string {
	return fmt.Sprintf(`
<h1>ADMIN REPORT</h1>
<p>Your transaction with this information was reported as <b>suspicious</b>:</p>
<p><b>Send to:</b> %s</p>
<p><b>Amount:</b> %s EGP</p>
<p><b>Send time:</b> %s</p>
`, receiverEmail, transaction.Amount.String(), transaction.CreatedAt.Format("2006-01-02 15:04:05"))
}
