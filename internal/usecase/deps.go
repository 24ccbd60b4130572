package usecase

import "context"

// Notifier delivers reset codes and account mail. Implemented by notify.Notifier.
type Notifier interface {
	SendPasswordResetEmail(ctx context.Context, email, token string) error
	SendPasswordResetSMS(ctx context.Context, phone, token string) error
	SendUserCreatedEmail(ctx context.Context, email, password string) error
	SendLatestUpdatesEmail(ctx context.Context, email, title, message string) error
}

type CredentialHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, digest string) bool
}

// FileStorage removes uploaded files by their public URL
type FileStorage interface {
	Delete(ctx context.Context, fileURL string) error
}
