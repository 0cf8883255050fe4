package ports

// Reporter prints user facing progress lines such as
// "    Updating git repository <url>".
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Status prints a right aligned verb followed by a message.
	Status(verb, msg string)
	// Warn prints a warning line.
	Warn(msg string)
	// Error prints an error line.
	Error(err error)
}
