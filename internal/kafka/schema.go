package kafka

// Headers set on every outbound hook message.
const (
	HeaderRoutingKey  = "routing_key"
	HeaderContentType = "content_type"
)

const ContentTypeJSON = "application/json"
