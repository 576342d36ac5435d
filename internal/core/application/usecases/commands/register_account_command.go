package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand represents a request to register a new account. The
// password arrives already hashed; the engine never sees plaintext
// credentials.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	name         string
	username     string
	passwordHash string
	mobile       string
	role         auth.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a validated registration command.
func NewRegisterAccountCommand(
	accountID kernel.UUID, name string, username string, passwordHash string, mobile string, role auth.Role,
) (RegisterAccountCommand, error) {
	command := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setName(name),
		command.setUsername(username),
		command.setPasswordHash(passwordHash),
		command.setMobile(mobile),
		command.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Username returns the unique login name.
func (c RegisterAccountCommand) Username() string {
	return c.username
}

// PasswordHash returns the bcrypt hash of the password.
func (c RegisterAccountCommand) PasswordHash() string {
	return c.passwordHash
}

// Mobile returns the contact number.
func (c RegisterAccountCommand) Mobile() string {
	return c.mobile
}

// Role returns the requested role.
func (c RegisterAccountCommand) Role() auth.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterAccountCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	c.passwordHash = passwordHash
	return nil
}

func (c *RegisterAccountCommand) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	c.mobile = mobile
	return nil
}

func (c *RegisterAccountCommand) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
