package respond

// Flash 一次性提示消息，在下一次页面渲染时展示
type Flash struct {
	Level   string `json:"level"` // success / warning / error
	Message string `json:"message"`
}
