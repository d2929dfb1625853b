package api

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	SpectatePattern = "GET /battleship/spectate"

	readHeaderTimeout = time.Second * 5
)

func NewSpectatorServer(port int, sp SpectatorProcessor) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(SpectatePattern, sp)

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// ServerIpNet returns the first non-loopback IPv4 network of an
// interface that is up. Analytics rows are keyed by it.
func ServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ipnet.IP.To4() != nil && !ipnet.IP.IsLoopback() {
				return *ipnet, nil
			}
		}
	}

	return net.IPNet{}, errors.New("ipnet could not be found")
}
