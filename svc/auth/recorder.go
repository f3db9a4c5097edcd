package auth

// Login outcomes passed to Recorder.LoginAttempt.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// Token rejection reasons passed to Recorder.TokenRejected.
const (
	ReasonMissing        = "missing"
	ReasonMalformed      = "malformed"
	ReasonExpired        = "expired"
	ReasonUnknownSubject = "unknown_subject"
)

// Recorder receives authentication events, typically to export them as metrics.
type Recorder interface {
	LoginAttempt(outcome string)
	TokenRejected(reason string)
}

type noopRecorder struct{}

func (noopRecorder) LoginAttempt(string)  {}
func (noopRecorder) TokenRejected(string) {}
