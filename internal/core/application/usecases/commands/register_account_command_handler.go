package commands

import (
	"context"

	"farmfreight/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles account registration. Username
// uniqueness is enforced by the repository, which surfaces a DuplicateKey
// error for a taken name.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account
// registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command inside a transaction.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, command RegisterAccountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newAccount, err := account.NewAccount(
		command.AccountID(), command.Name(), command.Username(),
		command.PasswordHash(), command.Mobile(), command.Role())
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
