// Package requestid generates and propagates correlation ids.
//
// The API client stamps every outbound call with an X-Request-ID header taken
// from the call context (Ensure creates one when missing), so a failed call
// can be matched with server-side logs. LoggerExtractor puts the same id into
// log records. Middleware is the inbound counterpart for programs that put
// their own net/http handlers in front of the client.
package requestid
