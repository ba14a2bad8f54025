package users

// Code identifies the business outcome of an account operation.
type Code int

const (
	CodeOK Code = iota
	CodeInvalidEmail
	CodeWeakPassword
	CodeDuplicateEmail
	CodeNotFound
	CodeInvalidCredentials
)

// Outcome messages shown to users. The exact wording is a stable contract:
// callers branch on Result.OK(), but tests and UIs rely on these strings.
const (
	MsgRegistrationSuccessful   = "Registration successful"
	MsgUserActivated            = "User activated"
	MsgAuthenticationSuccessful = "Authentication successful"
	MsgPasswordReset            = "Password reset successfully"

	MsgInvalidEmail       = "Invalid email format"
	MsgWeakPassword       = "Password should contain at least one digit and one special character."
	MsgDuplicateEmail     = "Email already registered"
	MsgUserNotFound       = "User not found"
	MsgInvalidCredentials = "Invalid credentials or account not activated"
)

// Result is the outcome of a single account operation: a machine-checkable
// code plus the human-readable message. Business failures are Results, not
// errors; only storage failures travel on the error return of Service methods.
type Result struct {
	Code    Code
	Message string
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Code == CodeOK
}

func success(msg string) Result {
	return Result{Code: CodeOK, Message: msg}
}

func failure(code Code) Result {
	var msg string
	switch code {
	case CodeInvalidEmail:
		msg = MsgInvalidEmail
	case CodeWeakPassword:
		msg = MsgWeakPassword
	case CodeDuplicateEmail:
		msg = MsgDuplicateEmail
	case CodeNotFound:
		msg = MsgUserNotFound
	case CodeInvalidCredentials:
		msg = MsgInvalidCredentials
	}
	return Result{Code: code, Message: msg}
}
