// Package validator checks input at the client boundary before a request is
// sent. Rules are values; Apply runs them and returns ValidationErrors, which
// callers treat like any other request failure:
//
//	err := validator.Apply(
//		validator.Required("email", creds.Email),
//		validator.Email("email", creds.Email),
//		validator.Required("password", creds.Password),
//	)
package validator
