package browser

import (
	"fmt"
	"strings"
)

// Credentials of the UI user.
type Credentials struct {
	Username string
	Password string
}

// Or returns c when both fields are set, fallback otherwise.
func (c Credentials) Or(fallback Credentials) Credentials {
	if c.Username != "" && c.Password != "" {
		return c
	}
	return fallback
}

// Login opens the application and signs in when the login form is shown.
// It reports whether the form was submitted, and fails when the landing page
// is not reached.
func (s *Session) Login(appURL string, creds Credentials) (bool, error) {
	if err := s.Visit(appURL); err != nil {
		return false, err
	}
	if err := s.pause(s.opts.LoginPause); err != nil {
		return false, err
	}

	heading, err := s.HeadingText()
	if err != nil {
		return false, err
	}

	performed := false
	if strings.TrimSpace(heading) == LoginHeading {
		s.log.Infow("signing in", "user", creds.Username)
		if err := s.InputText(UserNameInput, creds.Username); err != nil {
			return false, err
		}
		if err := s.InputText(UserPasswordInput, creds.Password); err != nil {
			return false, err
		}
		if err := s.Click(LoginButton); err != nil {
			return false, err
		}
		performed = true
	}

	for _, text := range []string{LandingTitle, LandingSubtitle} {
		if err := s.ContainsText(text); err != nil {
			return performed, fmt.Errorf("landing page not reached: %w", err)
		}
	}

	return performed, nil
}
