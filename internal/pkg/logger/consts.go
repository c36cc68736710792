package logger

const (
	ComponentNameServer     = "server"
	ComponentNameHTTPServer = "http_server"
	ComponentNameState      = "state"
)
