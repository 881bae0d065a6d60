package netframe

// Default configuration values.
const (
	// defaultMaxMessageSize is the default maximum declared body length of
	// a single message (1MB).
	defaultMaxMessageSize = 1024 * 1024
	// defaultReadBufferSize is the default size of the scratch buffer a
	// MessageReader uses for stream reads.
	defaultReadBufferSize = 4096
)

// options holds the configuration for a decoder.
type options struct {
	logger Logger

	// validateHeader is called for every parsed header before its body is
	// collected. Returning an error rejects the stream with
	// ErrInvalidHeader.
	validateHeader func(Header) error

	maxMessageSize int // maximum declared body length of a single message
	readBufferSize int // scratch read size, used by MessageReader only
}

// Option is a function that configures decoder options.
type Option func(*options)

// MessageMaxSize returns an Option that caps the declared body length of a
// single message. Headers declaring a larger body are rejected with
// ErrMessageTooLarge, which keeps a corrupted or adversarial length field
// from growing the decoder's buffers without bound.
func MessageMaxSize(size int) Option {
	return func(o *options) {
		o.maxMessageSize = size
	}
}

// HeaderValidatorOption returns an Option that sets a header validation
// callback, invoked for every parsed header before its body is collected.
// An error return rejects the stream with ErrInvalidHeader.
func HeaderValidatorOption(cb func(Header) error) Option {
	return func(o *options) {
		o.validateHeader = cb
	}
}

// ReadBufferSizeOption returns an Option that sets the size of the scratch
// buffer a MessageReader uses when reading from the stream. It has no
// effect on a bare Decoder.
func ReadBufferSizeOption(size int) Option {
	return func(o *options) {
		o.readBufferSize = size
	}
}

// LoggerOption returns an Option that sets the logger.
// If not set, the default slog logger will be used.
func LoggerOption(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// checkOptions sets default values for unset options.
func checkOptions(opts *options) {
	if opts.maxMessageSize <= 0 {
		opts.maxMessageSize = defaultMaxMessageSize
	}

	if opts.readBufferSize <= 0 {
		opts.readBufferSize = defaultReadBufferSize
	}

	if opts.logger == nil {
		opts.logger = defaultLogger()
	}
}
