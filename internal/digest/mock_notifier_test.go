package digest

type sentDigest struct {
	email   string
	name    string
	pending []string
}

type mockNotifier struct {
	sent []sentDigest
	err  error
}

func (m *mockNotifier) SendDigest(email, name string, pending []string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentDigest{email: email, name: name, pending: pending})
	return nil
}
