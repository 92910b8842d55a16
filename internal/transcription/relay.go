package transcription

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	relayWriteWait = 10 * time.Second
	maxFrameSize   = 512 * 1024
)

var relayUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Relay bridges a browser websocket to the AssemblyAI realtime endpoint so
// the server-side API key never reaches the client. Audio frames flow up,
// transcript frames flow down, and either side closing tears down both.
type Relay struct {
	wsURL  string
	apiKey string
	dialer *websocket.Dialer
	logger *slog.Logger
}

// NewRelay returns a relay for the given key, or nil when the key is blank.
func NewRelay(apiKey string, logger *slog.Logger) *Relay {
	if apiKey == "" {
		return nil
	}
	return &Relay{
		wsURL:  "wss://api.assemblyai.com/v2/realtime/ws",
		apiKey: apiKey,
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		logger: logger,
	}
}

// Serve upgrades the request and pumps frames between the client and the
// vendor until one of them goes away.
func (r *Relay) Serve(c echo.Context) error {
	sampleRate, _ := strconv.Atoi(c.QueryParam("sample_rate"))
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}

	client, err := relayUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		r.logger.Error("websocket upgrade failed", "error", err)
		return err
	}
	defer client.Close()
	client.SetReadLimit(maxFrameSize)

	header := http.Header{"Authorization": []string{r.apiKey}}
	vendor, resp, err := r.dialer.Dial(fmt.Sprintf("%s?sample_rate=%d", r.wsURL, sampleRate), header)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		r.logger.Error("failed to dial assemblyai", "error", err, "status", status)
		deadline := time.Now().Add(relayWriteWait)
		_ = client.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "transcription upstream unavailable"),
			deadline)
		return nil
	}
	defer vendor.Close()

	errc := make(chan error, 2)
	go func() { errc <- copyFrames(vendor, client) }()
	go func() { errc <- copyFrames(client, vendor) }()

	// The first pump to fail wins; closing both sockets unblocks the other.
	err = <-errc
	if websocket.IsUnexpectedCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived) {
		r.logger.Warn("transcription relay ended", "error", err)
	}
	return nil
}

func copyFrames(dst, src *websocket.Conn) error {
	for {
		messageType, data, err := src.ReadMessage()
		if err != nil {
			return err
		}
		_ = dst.SetWriteDeadline(time.Now().Add(relayWriteWait))
		if err := dst.WriteMessage(messageType, data); err != nil {
			return err
		}
	}
}
