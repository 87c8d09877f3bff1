// Package api implements the domain clients of the Learnzone admin API:
// authentication, teacher applications, accounts, tags, content types, course
// video review and the separate statistics service.
//
// Every call runs on an apiclient pipeline, so credentials, request ids and
// failure notifications are handled there. The package adds input validation
// and the propagation policy documented on Client.
//
// Routes live in an Endpoints table. The server API is versioned, so a YAML
// file can override any entry:
//
//	reject_teacher:
//	  method: DELETE
//	  path: /authentication/teacherRequest/{id}
//
// Entries not named in the file keep their defaults.
package api
