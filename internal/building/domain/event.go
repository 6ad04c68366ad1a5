package domain

type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// ConfigEvent 描述一次配置变更，推送给在线面板。
type ConfigEvent struct {
	Kind          EventKind     `json:"kind"`
	Configuration Configuration `json:"configuration"`
}

// Name 是推送消息名，例如 configuration.created。
func (e ConfigEvent) Name() string {
	return "configuration." + string(e.Kind)
}
