package client

import "net/http"

type authPayload struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// authEnvelope covers the sign-up/sign-in responses, which carry the user at
// the top level next to the envelope fields.
type authEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

func (c *Client) SignUp(name, username, password string) (*User, error) {
	var out authEnvelope

	if err := c.doInto(http.MethodPost, "/sign-up", authPayload{Name: name, Username: username, Password: password}, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

func (c *Client) SignIn(username, password string) (*User, error) {
	var out authEnvelope

	if err := c.doInto(http.MethodPost, "/sign-in", authPayload{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

func (c *Client) SignOut() error {
	_, err := c.do(http.MethodPost, "/sign-out", nil, nil)
	return err
}

// ValidateSession asks the server whether the jar's session cookie is still
// live. Used before state-mutating UI actions.
func (c *Client) ValidateSession() (bool, error) {
	env, err := c.do(http.MethodPost, "/validate-session", nil, nil)

	if err != nil {
		return false, err
	}

	return env.Success, nil
}
