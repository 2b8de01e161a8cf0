package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// MQTTNotifier pushes due notifications to devices over MQTT. Each device
// subscribes to its own topic; delivery is fire-and-forget with logged
// failures.
type MQTTNotifier struct {
	*registry
	client mqtt.Client
}

var _ Notifier = (*MQTTNotifier)(nil)

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// NewMQTT connects to the broker and returns a ready notifier.
func NewMQTT(brokerURL, clientID string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	n := &MQTTNotifier{client: client}
	n.registry = newRegistry(n.publish)
	return n, nil
}

// DeviceTopic is the per-device delivery topic.
func DeviceTopic(deviceID string) string {
	return fmt.Sprintf("device/%s/notifications", deviceID)
}

func (n *MQTTNotifier) publish(deviceID string, s Scheduled) {
	payload, err := json.Marshal(map[string]any{
		"id":    s.ID,
		"title": s.Request.Title,
		"body":  s.Request.Body,
		"data":  s.Request.Data,
	})
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("notification encode failed")
		return
	}

	token := n.client.Publish(DeviceTopic(deviceID), 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).
			Str("device_id", deviceID).
			Str("kind", string(s.Request.Kind)).
			Msg("notification publish failed")
		return
	}

	log.Info().
		Str("device_id", deviceID).
		Str("kind", string(s.Request.Kind)).
		Msg("notification delivered")
}

// Close stops pending timers and disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.registry.Close()
	n.client.Disconnect(250)
}
