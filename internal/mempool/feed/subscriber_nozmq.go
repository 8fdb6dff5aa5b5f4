//go:build !zmq

package feed

import "errors"

// Dial reports that the binary was built without the zmq tag.
func Dial(_, _ string) (Subscriber, error) {
	return nil, errors.New("feed: built without zmq support, rebuild with -tags zmq")
}
