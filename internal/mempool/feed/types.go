package feed

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Subscriber receives multipart messages from a publisher.
	// Receive returns ErrReceiveTimeout when nothing arrived in time.
	Subscriber interface {
		Receive() ([][]byte, error)
		Close() error
	}

	// Metrics records feed message statuses.
	Metrics interface {
		ObserveMessage(topic, status string)
	}
)
