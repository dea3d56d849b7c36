package discovery

import (
	"errors"
	"net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFindsBufferedEntry(t *testing.T) {
	// The query pushes into the buffered channel and returns right
	// away; the result must still be seen even though the forwarding
	// goroutine has not run yet.
	url, err := lookup(func(entries chan<- *mdns.ServiceEntry) error {
		entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(192, 168, 1, 20), Port: 8080}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ws://192.168.1.20:8080/ws", url)
}

func TestLookupFirstUsableEntryWins(t *testing.T) {
	url, err := lookup(func(entries chan<- *mdns.ServiceEntry) error {
		entries <- &mdns.ServiceEntry{AddrV4: nil, Port: 8080}
		entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 7), Port: 0}
		entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 7), Port: 9000}
		entries <- &mdns.ServiceEntry{AddrV4: net.IPv4(10, 0, 0, 8), Port: 9001}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ws://10.0.0.7:9000/ws", url)
}

func TestLookupNoEntries(t *testing.T) {
	_, err := lookup(func(entries chan<- *mdns.ServiceEntry) error {
		return nil
	})
	require.ErrorIs(t, err, ErrNoServer)
}

func TestLookupQueryError(t *testing.T) {
	queryErr := errors.New("network down")
	_, err := lookup(func(entries chan<- *mdns.ServiceEntry) error {
		return queryErr
	})
	require.ErrorIs(t, err, queryErr)
}
