package assistant

// SendEmailInput is the input of UseCase.SendEmail.
type SendEmailInput struct {
	To      string
	Subject string
	Body    string
}

// EmailDigestOutput is the output of UseCase.EmailDigest.
type EmailDigestOutput struct {
	Count int
	Text  string
}
