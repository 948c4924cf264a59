package transport

// Envelope wraps every API response. Success responses carry Data and
// optionally Meta; error responses carry Code and Error.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// DeferredMeta marks a response whose mutation is applied in memory but not
// yet flushed to storage. Clients show it as a "save pending" notice.
func DeferredMeta() map[string]string {
	return map[string]string{"persistence": "deferred"}
}
