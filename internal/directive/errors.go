package directive

import "fmt"

// ConfigError reports a directive or option value that cannot be used.
// Received holds the offending input verbatim.
type ConfigError struct {
	Option   string
	Expected string
	Received string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Invalid %s value. Expected %s, but received \"%s\".", e.Option, e.Expected, e.Received)
}

func thresholdError(received, expected string) error {
	return &ConfigError{Option: WrapThresholdOption, Expected: expected, Received: received}
}

func perLineError(received string) error {
	return &ConfigError{Option: ElementsPerLineOption, Expected: "a positive integer", Received: received}
}
