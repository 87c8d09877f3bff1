package dashboard

import (
	"context"

	"github.com/hajar-aswad/Learnzone/pkg/logger"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// Login signs in through the session manager and caches the user under
// KeyAuthUser. Failures not already shown by a lower layer are notified.
func (s *Service) Login(ctx context.Context, creds session.Credentials) (session.Result, error) {
	if s.session == nil {
		return session.Result{}, ErrNoSession
	}

	res := s.session.Login(ctx, creds)
	if !res.Success {
		if !reported(res.Cause) {
			notify.Error(ctx, s.notifier, res.Error)
		}
		return res, nil
	}

	s.cache.SetData(KeyAuthUser, *res.User)
	notify.Success(ctx, s.notifier, "Login successful!")
	return res, nil
}

// Logout ends the session and drops every cached query.
func (s *Service) Logout(ctx context.Context) error {
	if s.session == nil {
		return ErrNoSession
	}
	s.session.Logout(ctx)
	s.cache.Clear()
	s.log.DebugContext(ctx, "cache cleared on logout", logger.Event("logout"))
	return nil
}
