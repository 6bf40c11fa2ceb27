package account

// LoginFunc exchanges credentials for a token.
type LoginFunc func(username, password string) (string, error)

// Account holds the token of a successful login.
type Account struct {
	token string
}

// New logs in with login and returns the resulting Account.
// An error from login is returned as is.
func New(username, password string, login LoginFunc) (*Account, error) {
	if login == nil {
		return nil, ErrLoginNil
	}
	token, err := login(username, password)
	if err != nil {
		return nil, err
	}
	return &Account{token: token}, nil
}

func (a *Account) Token() string {
	return a.token
}

// OnlyAlice accepts alice/hunter2 and nobody else.
func OnlyAlice(username, password string) (string, error) {
	if username != "alice" {
		return "", ErrInvalidUser
	}
	if password != "hunter2" {
		return "", ErrInvalidPassword
	}
	return "AUTH_TOKEN", nil
}
