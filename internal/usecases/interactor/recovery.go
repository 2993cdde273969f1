package interactor

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/instapay/transaction-service/internal/domain/models"
	apperrors "github.com/instapay/transaction-service/internal/errors"
)

const (
	maxWrongPinCount    = 5
	recoveryTokenTTL    = 10 * time.Minute
	recoveryMailSubject = "Reset PIN trys"
)

// CheckNoOfTries blocks every PIN-gated operation once the account has
// accumulated five wrong PIN entries. The user gets a time-boxed recovery
// link by email; an unexpired token already on the user suppresses a
// re-send, an expired one is refreshed.
func (i *TransactionInteractor) CheckNoOfTries(ctx context.Context, account *models.Account, user *models.User) error {
	if account.WrongPinCount < maxWrongPinCount {
		return nil
	}

	token, err := i.signRecoveryToken(account.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	send := true

	challenge, exists := user.Challenges[models.PurposeInvalidPIN]
	switch {
	case exists && challenge.Kind == models.ChallengeToken && challenge.ExpiresAt.After(now):
		send = false
	case exists && challenge.Kind == models.ChallengeToken:
		challenge.Value = token
		challenge.ExpiresAt = now.Add(recoveryTokenTTL)
		user.Challenges[models.PurposeInvalidPIN] = challenge
		if err = i.users.UpdateUser(ctx, user); err != nil {
			return err
		}
	default:
		if user.Challenges == nil {
			user.Challenges = make(map[models.ChallengePurpose]models.Challenge)
		}
		user.Challenges[models.PurposeInvalidPIN] = models.Challenge{
			Kind:      models.ChallengeToken,
			Value:     token,
			ExpiresAt: now.Add(recoveryTokenTTL),
		}
		if err = i.users.UpdateUser(ctx, user); err != nil {
			return err
		}
	}

	if send {
		if err = i.sendRecoveryMail(ctx, token, user.Email); err != nil {
			return err
		}
	}

	return apperrors.NewTooManyAttemptsError()
}

func (i *TransactionInteractor) signRecoveryToken(accountID string) (string, error) {
	claims := jwt.MapClaims{
		"accountId": accountID,
		"exp":       time.Now().Add(recoveryTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.auth.ExceedTriesSecret))
	if err != nil {
		return "", fmt.Errorf("sign recovery token: %w", err)
	}
	return token, nil
}

func (i *TransactionInteractor) sendRecoveryMail(ctx context.Context, token, email string) error {
	url := fmt.Sprintf("%s/%s", i.auth.ResetBaseURL, token)
	html := fmt.Sprintf(`
<h1> You entered PIN wrong many times on instapay </h1>
<h2> we want to ensure that the account owner was trying.</h2>
to continue to try enter the PIN <a href='%s'> click this link </a>
`, url)
	return i.mail.SendEmail(ctx, email, recoveryMailSubject, html)
}
