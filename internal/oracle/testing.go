package oracle

// NewTestConfig returns config used for testing purposes.
func NewTestConfig() (Config, error) {
	return NewConfig("127.0.0.1", 1521, "oracenter", "oracenter_fixtures")
}

// NewTestConnect returns connection to test Oracle instance.
// The instance has to be up and running on the default port.
func NewTestConnect() (*DB, error) {
	config, err := NewTestConfig()
	if err != nil {
		return nil, err
	}
	config.Password = "oracenter"
	return Connect(config)
}
