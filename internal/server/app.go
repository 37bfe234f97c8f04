package server

import (
	"fsr/internal/config"
	"fsr/internal/websocket"
)

// App holds shared dependencies for the application.
type App struct {
	Cfg config.Config
	Hub *websocket.Hub
}
