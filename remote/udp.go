package remote

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
)

// UDPServer accepts the legacy datagram protocol: plain-text "x y"
// positions, one per packet, fed to the handler as mouse overrides.
// Kept for compatibility with existing senders.
type UDPServer struct {
	handler Handler
	port    int

	conn   net.PacketConn
	stopCh chan struct{}
}

func NewUDPServer(port int, handler Handler) *UDPServer {
	return &UDPServer{
		handler: handler,
		port:    port,
		stopCh:  make(chan struct{}),
	}
}

// Start binds the UDP port and reads datagrams in the background.
func (u *UDPServer) Start() error {
	conn, err := net.ListenPacket("udp", fmt.Sprintf(":%d", u.port))
	if err != nil {
		return fmt.Errorf("udp listen on port %d: %w", u.port, err)
	}
	u.conn = conn

	go u.readLoop()

	log.Printf("[remote] udp listening on %s", conn.LocalAddr())
	return nil
}

// Addr returns a dialable bound address, useful when the port was 0.
func (u *UDPServer) Addr() string {
	if u.conn == nil {
		return ""
	}
	if addr, ok := u.conn.LocalAddr().(*net.UDPAddr); ok && addr.IP.IsUnspecified() {
		return fmt.Sprintf("127.0.0.1:%d", addr.Port)
	}
	return u.conn.LocalAddr().String()
}

// Stop closes the socket and ends the read loop.
func (u *UDPServer) Stop() {
	close(u.stopCh)
	if u.conn != nil {
		_ = u.conn.Close()
	}
}

func (u *UDPServer) readLoop() {
	buf := make([]byte, 1024)
	for {
		n, _, err := u.conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-u.stopCh:
			default:
				log.Printf("[remote] udp read error: %v", err)
			}
			return
		}

		if x, y, ok := parsePosition(string(buf[:n])); ok {
			u.handler.SetMousePosition(x, y)
		}
	}
}

// parsePosition parses a "x y" datagram. Malformed packets are
// silently dropped.
func parsePosition(s string) (float64, float64, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 2 {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}
