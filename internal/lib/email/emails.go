package email

// SendWelcomeEmail greets a new newsletter subscriber.
func (c *Client) SendWelcomeEmail(to, userGroup string) error {
	return c.SendEmail(
		to,
		"Welcome to the V1 newsletter",
		TemplateWelcome,
		map[string]string{
			"UserGroup": userGroup,
		},
	)
}
