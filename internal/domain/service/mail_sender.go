package service

import "context"

// MailSender delivers signup validation emails. Implementations are thin I/O
// wrappers; the engine only depends on this boundary shape.
type MailSender interface {
	// SendValidationMail sends the validation link to the address.
	SendValidationMail(ctx context.Context, to string, validationURL string) error
}
