package newsletter

import "context"

type ContactWriter interface {
	AddContact(ctx context.Context, email string) error
}

type Service struct {
	contacts ContactWriter
	loggerf  func(format string, args ...interface{})
}

func NewService(contacts ContactWriter, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{contacts: contacts, loggerf: loggerf}
}

// Subscribe adds the email to the marketing audience. The provider treats
// duplicate adds as already-subscribed, so this is safe to repeat.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	if err := s.contacts.AddContact(ctx, email); err != nil {
		s.loggerf("level=error msg=newsletter subscribe failed email=%s err=%v", email, err)
		return err
	}
	return nil
}
