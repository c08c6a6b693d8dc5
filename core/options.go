package core

type exchangeBuilder struct {
	client         ProviderClient
	logger         Logger
	loggerProvider LoggerProvider
}

type Option func(*exchangeBuilder)

func WithProviderClient(client ProviderClient) Option {
	return func(b *exchangeBuilder) {
		b.client = client
	}
}

func WithLogger(logger Logger) Option {
	return func(b *exchangeBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider LoggerProvider) Option {
	return func(b *exchangeBuilder) {
		b.loggerProvider = provider
	}
}
