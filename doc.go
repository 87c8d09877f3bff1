// Package learnzone assembles the Learnzone admin client.
//
// New wires a session store (file, memory or Redis backed), the session
// manager, the request pipeline with its credential, logging, forced-logout
// and notification hooks, the domain clients, the query cache and the route
// guard:
//
//	cfg, err := learnzone.LoadConfig()
//	if err != nil {
//		return err
//	}
//	lz, err := learnzone.New(ctx, cfg, learnzone.WithNotifier(notify.NewWriterNotifier(os.Stderr)))
//	if err != nil {
//		return err
//	}
//	defer lz.Close()
//
//	res, _ := lz.Dashboard().Login(ctx, session.Credentials{Email: email, Password: password})
//	requests, err := lz.Dashboard().TeacherRequests(ctx)
//
// Configuration comes from LEARNZONE_* environment variables; see Config.
package learnzone
