// Package tjpegmqtt publishes decoded JPEG tiles to an MQTT broker, one
// QoS 0 PUBLISH per MCU, under topic/<row>/<col> -- useful for piping a
// decode running on one constrained board out to a dashboard subscribed
// on the broker.
//
// Built on github.com/soypat/natiu-mqtt for its synchronous,
// allocation-light client, which matches Decompress's single-threaded
// execution contract better than a goroutine-per-connection MQTT client
// would (see DESIGN.md).
package tjpegmqtt

import (
	"strconv"

	mqtt "github.com/soypat/natiu-mqtt"
	"tinygo.org/x/tjpeg"
)

// Sink returns a tjpeg.OutputFunc that publishes each decoded tile as a
// retained-false, QoS 0 message on topicPrefix + "/" + row + "/" + col,
// where row and col are the tile's MCU grid coordinates (rect.Top/8 and
// rect.Left/8 for unscaled decodes). A publish error aborts decoding.
func Sink(client *mqtt.Client, topicPrefix string) tjpeg.OutputFunc {
	return func(d *tjpeg.Decoder, pixels []byte, rect *tjpeg.Rectangle) (bool, error) {
		topic := topicPrefix + "/" + strconv.Itoa(int(rect.Top/8)) + "/" + strconv.Itoa(int(rect.Left/8))

		header := mqtt.Header{}
		header.SetQoS(0)
		if err := client.PublishPayload(header, topic, pixels); err != nil {
			return false, err
		}
		return true, nil
	}
}
