// Package apiclient is the outbound HTTP channel to the Learnzone API.
//
// A Client resolves paths against a base URL, sends JSON with a fixed
// timeout (10s by default) and runs two ordered hook chains around every
// call. BeforeSend hooks decorate the request (BearerToken, RequestID,
// LogRequest); AfterReceive hooks observe the outcome (AuthFailure,
// NotifyFailures, LogResponse). Hooks never swallow errors: the caller
// always receives the error the hooks saw.
//
// Errors are tagged. *TransportError means no response arrived,
// *ServerError carries the status and the message the server put in its
// body. Message turns any error, including validator.ValidationErrors,
// into display text.
//
//	client, err := apiclient.New(cfg,
//		apiclient.WithBeforeSend(apiclient.RequestID(), apiclient.BearerToken(sess, nil)),
//		apiclient.WithAfterReceive(
//			apiclient.AuthFailure(sess, nav, apiclient.LoginPath),
//			apiclient.NotifyFailures(notifier),
//		),
//	)
package apiclient
