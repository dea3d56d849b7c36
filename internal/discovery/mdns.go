// Package discovery finds a pixel server advertised on the local
// network, for setups where no server URL is configured.
package discovery

import (
	"errors"
	"fmt"

	"github.com/hashicorp/mdns"
)

const serviceType = "_pixelgrid._tcp"

var ErrNoServer = errors.New("discovery: no pixel server found on the local network")

// Lookup browses for a server and returns its websocket URL. It blocks
// for the duration of one mDNS query round.
func Lookup() (string, error) {
	return lookup(func(entries chan<- *mdns.ServiceEntry) error {
		return mdns.Lookup(serviceType, entries)
	})
}

func lookup(query func(chan<- *mdns.ServiceEntry) error) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	drained := make(chan struct{})

	go func() {
		defer close(drained)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("ws://%s:%d/ws", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()

	err := query(entries)

	// Entries may still sit in the channel buffer when the query
	// returns; wait until the forwarder has seen them all before
	// concluding nothing was found.
	close(entries)
	<-drained

	if err != nil {
		return "", fmt.Errorf("discovery: lookup: %w", err)
	}

	select {
	case url := <-found:
		return url, nil
	default:
		return "", ErrNoServer
	}
}
