//go:build zmq

package feed

import (
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
)

const receiveTimeout = time.Second

type zmqSubscriber struct {
	sock *zmq4.Socket
}

// Dial connects a ZMQ SUB socket to addr and subscribes to topic.
func Dial(addr, topic string) (Subscriber, error) {
	sock, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, fmt.Errorf("create zmq socket: %w", err)
	}

	if err := sock.SetRcvtimeo(receiveTimeout); err != nil {
		sock.Close()
		return nil, fmt.Errorf("set zmq receive timeout: %w", err)
	}
	if err := sock.SetSubscribe(topic); err != nil {
		sock.Close()
		return nil, fmt.Errorf("subscribe %q: %w", topic, err)
	}
	if err := sock.Connect(addr); err != nil {
		sock.Close()
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}
	return &zmqSubscriber{sock: sock}, nil
}

func (s *zmqSubscriber) Receive() ([][]byte, error) {
	parts, err := s.sock.RecvMessageBytes(0)
	if err != nil {
		if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
			return nil, ErrReceiveTimeout
		}
		return nil, err
	}
	return parts, nil
}

func (s *zmqSubscriber) Close() error {
	return s.sock.Close()
}
